package models

import "maps"

// RankEntry is one rung of the animal ladder.
type RankEntry struct {
	Level        int    `json:"level" yaml:"level"`
	Name         string `json:"name" yaml:"name"`
	Emoji        string `json:"emoji" yaml:"emoji"`
	Title        string `json:"title" yaml:"title"`
	DaysRequired int    `json:"daysRequired" yaml:"days_required"`
}

// Rank is the current rank as persisted under the "level" key.
type Rank struct {
	Number int    `json:"number"`
	Animal string `json:"animal"`
	Emoji  string `json:"emoji"`
	Title  string `json:"title"`
}

// RankFromEntry projects a ladder entry onto the persisted rank shape.
func RankFromEntry(e RankEntry) Rank {
	return Rank{
		Number: e.Level,
		Animal: e.Name,
		Emoji:  e.Emoji,
		Title:  e.Title,
	}
}

type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type Calendar struct {
	CurrentMonth      string          `json:"currentMonth"`
	CurrentDate       int             `json:"currentDate"`
	CompletedDays     []int           `json:"completedDays"`
	ConsecutiveDays   int             `json:"consecutiveDays"`
	CompletionHistory map[string]bool `json:"completionHistory"` // YYYY-MM-DD -> day completed

	// ResetPending is set when a day's completion has been credited and cleared by the
	// daily reset that follows it.
	ResetPending bool `json:"resetPending,omitempty"`
}

// MarkCompleted records a fully completed day. It never touches the streak.
func (c *Calendar) MarkCompleted(day int, date string) {
	found := false
	for _, d := range c.CompletedDays {
		if d == day {
			found = true
			break
		}
	}
	if !found {
		c.CompletedDays = append(c.CompletedDays, day)
	}
	if c.CompletionHistory == nil {
		c.CompletionHistory = make(map[string]bool)
	}
	c.CompletionHistory[date] = true
}

// Profile fields Name, Avatar, CurrentLevel and CurrentStreak mirror the rank and the
// calendar streak. They are derived by State.SyncProfile and never set on their own.
type Profile struct {
	Name           string `json:"name"`
	Avatar         string `json:"avatar"`
	CurrentLevel   int    `json:"currentLevel"`
	TotalXP        int    `json:"totalXP"`
	CompletionRate int    `json:"completionRate"`
	LongestStreak  int    `json:"longestStreak"`
	CurrentStreak  int    `json:"currentStreak"`
}

// State is the whole application state. It is persisted as a single record.
type State struct {
	Level          Rank              `json:"level"`
	Progress       Progress          `json:"progress"`
	Skills         []Skill           `json:"skills"`
	AnimalLevels   []RankEntry       `json:"animalLevels"`
	Tasks          []Task            `json:"tasks"`
	UserProfile    Profile           `json:"userProfile"`
	Calendar       Calendar          `json:"calendar"`
	TaskCategories map[string]string `json:"taskCategories"`
	NextTaskID     int               `json:"nextTaskId"`
}

// FindTask returns the index of the task with the given id, or -1.
func (s *State) FindTask(id int) int {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// FindSkill returns the skill whose name matches category exactly, or nil.
func (s *State) FindSkill(category string) *Skill {
	for i := range s.Skills {
		if s.Skills[i].Name == category {
			return &s.Skills[i]
		}
	}
	return nil
}

// CompletedCount counts tasks currently marked completed.
func (s *State) CompletedCount() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// RecountProgress makes the progress counters agree with the task list.
func (s *State) RecountProgress() {
	s.Progress.Total = len(s.Tasks)
	s.Progress.Current = s.CompletedCount()
}

// MaxTaskID is the highest task id in use, or 0 with no tasks.
func (s *State) MaxTaskID() int {
	highest := 0
	for _, t := range s.Tasks {
		highest = max(highest, t.ID)
	}
	return highest
}

// SyncProfile rewrites the profile mirrors from the rank and the streak.
func (s *State) SyncProfile() {
	s.UserProfile.Avatar = s.Level.Emoji
	s.UserProfile.Name = s.Level.Title
	s.UserProfile.CurrentLevel = s.Level.Number
	s.UserProfile.CurrentStreak = s.Calendar.ConsecutiveDays
}

// Clone returns a deep copy safe to hand to renderers.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	c := *s
	c.Skills = append([]Skill(nil), s.Skills...)
	c.AnimalLevels = append([]RankEntry(nil), s.AnimalLevels...)
	c.Tasks = append([]Task(nil), s.Tasks...)
	c.Calendar.CompletedDays = append([]int(nil), s.Calendar.CompletedDays...)
	c.Calendar.CompletionHistory = maps.Clone(s.Calendar.CompletionHistory)
	c.TaskCategories = maps.Clone(s.TaskCategories)
	return &c
}
