// Package engine applies task completion, streak and rank rules to the application state.
package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/dawg/internal/constants"
	"github.com/julianstephens/dawg/internal/ladder"
	"github.com/julianstephens/dawg/internal/logger"
	"github.com/julianstephens/dawg/internal/models"
	"github.com/julianstephens/dawg/internal/scheduler"
)

// Saver persists the whole state. It must not fail loudly.
type Saver interface {
	Save(*models.State)
}

type Options struct {
	Saver     Saver
	Ladder    *ladder.Ladder
	Scheduler scheduler.Scheduler
	Sinks     []Sink
	Now       func() time.Time

	DayCompletionDelay time.Duration
	DailyResetDelay    time.Duration
}

// Engine owns the state. Every operation runs under one lock, so callers may use
// it from the UI loop and from timer callbacks at the same time.
type Engine struct {
	mu    sync.Mutex
	state *models.State

	saver  Saver
	ladder *ladder.Ladder
	sched  scheduler.Scheduler
	sinks  []Sink
	now    func() time.Time

	dayDelay   time.Duration
	resetDelay time.Duration

	// set from the moment Day Completion is scheduled until the Daily Reset has run
	dayPending bool
}

// CompleteResult reports what a completion changed. OK is false when nothing did.
type CompleteResult struct {
	OK            bool
	XPDelta       int
	SkillCategory string
	SkillDelta    int
	DayCompleted  bool
}

type nopSaver struct{}

func (nopSaver) Save(*models.State) {}

// New takes ownership of st and reconciles its rank with the streak.
func New(st *models.State, opts Options) *Engine {
	e := &Engine{
		state:      st,
		saver:      opts.Saver,
		ladder:     opts.Ladder,
		sched:      opts.Scheduler,
		sinks:      opts.Sinks,
		now:        opts.Now,
		dayDelay:   opts.DayCompletionDelay,
		resetDelay: opts.DailyResetDelay,
	}
	if e.saver == nil {
		e.saver = nopSaver{}
	}
	if e.ladder == nil {
		e.ladder = ladderFromState(st)
	}
	if e.sched == nil {
		e.sched = scheduler.New()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.dayDelay == 0 {
		e.dayDelay = constants.DefaultDayCompletionDelay
	}
	if e.resetDelay == 0 {
		e.resetDelay = constants.DefaultDailyResetDelay
	}

	e.state.AnimalLevels = e.ladder.Entries()
	if e.state.TaskCategories == nil {
		e.state.TaskCategories = models.DefaultCategoryColors()
	}
	e.Reconcile()
	e.resumeDay()
	return e
}

// resumeDay finishes a day whose transitions were cut short by an exit. A credited day
// only needs its reset; a fully completed day that was not credited is completed now.
func (e *Engine) resumeDay() {
	e.mu.Lock()
	credited := e.state.Calendar.ResetPending
	p := e.state.Progress
	if e.dayPending || (!credited && (p.Total == 0 || p.Current < p.Total)) {
		e.mu.Unlock()
		return
	}
	e.dayPending = true
	e.mu.Unlock()

	logger.Info("Resuming an unfinished day", "credited", credited)
	if credited {
		e.sched.Schedule(e.resetDelay, e.dailyReset)
		return
	}
	e.sched.Schedule(e.dayDelay, e.completeDay)
}

// ladderFromState uses the persisted ladder when it is well formed.
func ladderFromState(st *models.State) *ladder.Ladder {
	if len(st.AnimalLevels) > 0 {
		l, err := ladder.New(st.AnimalLevels)
		if err == nil {
			return l
		}
		logger.Warn("Persisted rank ladder is invalid, using the built-in one", "error", err)
	}
	return ladder.Default()
}

// AddSink registers another notification consumer.
func (e *Engine) AddSink(s Sink) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sinks = append(e.sinks, s)
}

func (e *Engine) Ladder() *ladder.Ladder {
	return e.ladder
}

// Snapshot returns a deep copy of the state for rendering.
func (e *Engine) Snapshot() *models.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Reconcile moves the rank to the highest one the current streak justifies.
func (e *Engine) Reconcile() {
	e.mu.Lock()
	changed := e.applyRankRule()
	e.state.SyncProfile()
	if changed {
		e.saver.Save(e.state)
	}
	e.mu.Unlock()
}

// applyRankRule replaces the rank wholesale when the downward ladder scan picks a
// different level. Must be called with mu held.
func (e *Engine) applyRankRule() bool {
	target, ok := e.ladder.HighestSatisfied(e.state.Calendar.ConsecutiveDays)
	if !ok || target.Level == e.state.Level.Number {
		return false
	}
	logger.Info("Rank changed", "from", e.state.Level.Animal, "to", target.Name, "streak", e.state.Calendar.ConsecutiveDays)
	e.state.Level = models.RankFromEntry(target)
	return true
}

// CompleteTask marks a task done and awards its XP and skill gain. A missing or
// already completed task is a no-op.
func (e *Engine) CompleteTask(id int) CompleteResult {
	e.mu.Lock()
	i := e.state.FindTask(id)
	if i == -1 || e.state.Tasks[i].Completed {
		e.mu.Unlock()
		logger.Debug("Ignoring completion", "task", id, "found", i != -1)
		return CompleteResult{}
	}

	task := &e.state.Tasks[i]
	task.Completed = true
	e.state.Progress.Current++
	e.state.UserProfile.TotalXP += task.Points

	res := CompleteResult{OK: true, XPDelta: task.Points}
	if skill := e.state.FindSkill(task.Category); skill != nil {
		res.SkillCategory = skill.Name
		res.SkillDelta = skill.Raise(models.SkillDelta(task.Points))
	}
	e.state.SyncProfile()
	e.saver.Save(e.state)

	notes := []Notification{{
		ID:         uuid.New(),
		Kind:       KindTaskCompleted,
		Points:     task.Points,
		Color:      task.Color,
		DisplayFor: constants.TaskCompletedDisplay,
	}}

	if e.state.Progress.Current >= e.state.Progress.Total && !e.dayPending {
		e.dayPending = true
		res.DayCompleted = true
	}
	e.mu.Unlock()

	logger.Debug("Task completed", "task", id, "xp", res.XPDelta, "skill", res.SkillCategory)
	e.emit(notes)
	if res.DayCompleted {
		e.sched.Schedule(e.dayDelay, e.completeDay)
	}
	return res
}

// completeDay extends the streak, applies the rank rule and schedules the reset.
func (e *Engine) completeDay() {
	e.mu.Lock()
	cal := &e.state.Calendar
	cal.ConsecutiveDays++
	cal.ResetPending = true

	now := e.now()
	cal.MarkCompleted(now.Day(), now.Format(constants.DateFormat))

	next, hasNext := e.ladder.Next(e.state.Level.Number)
	levelUp := hasNext && next.DaysRequired <= cal.ConsecutiveDays
	e.applyRankRule()
	e.state.SyncProfile()
	e.saver.Save(e.state)

	var n Notification
	if levelUp {
		n = Notification{
			ID:         uuid.New(),
			Kind:       KindLevelUp,
			Emoji:      e.state.Level.Emoji,
			AnimalName: e.state.Level.Animal,
			Title:      e.state.Level.Title,
			DisplayFor: constants.LevelUpDisplay,
		}
	} else {
		n = Notification{
			ID:         uuid.New(),
			Kind:       KindDayComplete,
			Streak:     cal.ConsecutiveDays,
			DisplayFor: constants.DayCompleteDisplay,
		}
	}
	streak := cal.ConsecutiveDays
	e.mu.Unlock()

	logger.Info("Day completed", "streak", streak, "levelUp", levelUp)
	e.emit([]Notification{n})
	e.sched.Schedule(e.resetDelay, e.dailyReset)
}

// dailyReset is the only place completed flags are cleared.
func (e *Engine) dailyReset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.state.Tasks {
		e.state.Tasks[i].Completed = false
	}
	e.state.Progress.Current = 0
	e.state.Calendar.ResetPending = false
	e.dayPending = false
	e.state.SyncProfile()
	e.saver.Save(e.state)
	logger.Debug("Daily reset", "tasks", len(e.state.Tasks))
}

func (e *Engine) emit(notes []Notification) {
	e.mu.Lock()
	sinks := append([]Sink(nil), e.sinks...)
	e.mu.Unlock()

	for _, n := range notes {
		for _, s := range sinks {
			s.Notify(n)
		}
	}
}

// Close cancels pending day transitions and waits for running ones.
func (e *Engine) Close() {
	e.sched.Close()
}
