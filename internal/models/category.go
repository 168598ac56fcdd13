package models

import "github.com/julianstephens/dawg/internal/constants"

// DefaultCategoryColors is the category to color table new tasks are tagged from.
func DefaultCategoryColors() map[string]string {
	return map[string]string{
		constants.CategoryPhysical:   constants.ColorGreen,
		constants.CategoryMental:     constants.ColorAmber,
		constants.CategoryDiscipline: constants.ColorRed,
		constants.CategorySocial:     constants.ColorGreen,
		constants.CategoryIntellect:  constants.ColorAmber,
		constants.CategoryAmbition:   constants.ColorRed,
	}
}

// ColorName maps a category color to the name used by renderers.
func ColorName(color string) string {
	switch color {
	case constants.ColorGreen:
		return "green"
	case constants.ColorRed:
		return "red"
	case constants.ColorAmber:
		return "yellow"
	default:
		return "green"
	}
}
