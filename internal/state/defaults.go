package state

import (
	"github.com/julianstephens/dawg/internal/constants"
	"github.com/julianstephens/dawg/internal/ladder"
	"github.com/julianstephens/dawg/internal/models"
)

// Defaults returns the first-run state. Every call builds a fresh value.
func Defaults() *models.State {
	colors := models.DefaultCategoryColors()
	task := func(id int, text, category string, points int) models.Task {
		return models.Task{
			ID:        id,
			Number:    models.FormatNumber(id),
			Text:      text,
			Category:  category,
			Points:    points,
			Color:     colors[category],
			IsDefault: true,
		}
	}

	l := ladder.Default()
	beagle, _ := l.EntryForLevel(2)

	s := &models.State{
		Level:    models.RankFromEntry(beagle),
		Progress: models.Progress{Current: 0, Total: 5},
		Skills: []models.Skill{
			{Name: constants.CategoryPhysical, Level: 45, Color: constants.ColorGreen, Angle: 0},
			{Name: constants.CategorySocial, Level: 25, Color: constants.ColorAmber, Angle: 60},
			{Name: constants.CategoryDiscipline, Level: 55, Color: constants.ColorRed, Angle: 120},
			{Name: constants.CategoryMental, Level: 30, Color: constants.ColorGreen, Angle: 180},
			{Name: constants.CategoryIntellect, Level: 35, Color: constants.ColorAmber, Angle: 240},
			{Name: constants.CategoryAmbition, Level: 20, Color: constants.ColorRed, Angle: 300},
		},
		AnimalLevels: l.Entries(),
		Tasks: []models.Task{
			task(1, "EXERCISE FOR 25+ MIN", constants.CategoryPhysical, 12),
			task(2, "SLEEP 7+ HOURS", constants.CategoryPhysical, 12),
			task(3, "WAKE UP EARLY", constants.CategoryDiscipline, 6),
			task(4, "MEDITATE 15+ MINS", constants.CategoryMental, 6),
			task(5, "2 LEET CODE QUESTIONS", constants.CategoryIntellect, 12),
		},
		UserProfile: models.Profile{
			Name:           beagle.Title,
			Avatar:         beagle.Emoji,
			CurrentLevel:   beagle.Level,
			TotalXP:        420,
			CompletionRate: 85,
			LongestStreak:  12,
			CurrentStreak:  7,
		},
		Calendar: models.Calendar{
			CurrentMonth:      "JUL",
			CurrentDate:       27,
			CompletedDays:     []int{22, 23, 26},
			ConsecutiveDays:   7,
			CompletionHistory: map[string]bool{},
		},
		TaskCategories: colors,
		NextTaskID:     6,
	}
	return s
}
