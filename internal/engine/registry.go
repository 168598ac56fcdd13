package engine

import (
	"slices"
	"strings"

	"github.com/julianstephens/dawg/internal/logger"
	"github.com/julianstephens/dawg/internal/models"
)

// TaskInput carries the editable task fields. A nil ID creates a new task.
type TaskInput struct {
	ID       *int
	Text     string
	Category string
	Points   int
}

func (e *Engine) validate(op string, in TaskInput) (string, error) {
	text := strings.TrimSpace(in.Text)
	var detail string
	switch {
	case text == "":
		detail = "text is empty"
	case in.Category == "":
		detail = "category is missing"
	case e.state.TaskCategories[in.Category] == "":
		detail = "unknown category " + in.Category
	case in.Points <= 0:
		detail = "points must be positive"
	default:
		return strings.ToUpper(text), nil
	}
	id := 0
	if in.ID != nil {
		id = *in.ID
	}
	return "", &Error{Op: op, TaskID: id, Detail: detail, Err: ErrInvalidInput}
}

// UpsertTask creates a custom task or edits one in place. Default tasks cannot be edited.
func (e *Engine) UpsertTask(in TaskInput) (models.Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if in.ID == nil {
		return e.createTask(in)
	}
	return e.editTask(*in.ID, in)
}

func (e *Engine) createTask(in TaskInput) (models.Task, error) {
	text, err := e.validate("create", in)
	if err != nil {
		return models.Task{}, err
	}

	id := max(e.state.NextTaskID, e.state.MaxTaskID()+1)
	e.state.NextTaskID = id + 1

	task := models.Task{
		ID:        id,
		Number:    models.FormatNumber(len(e.state.Tasks) + 1),
		Text:      text,
		Category:  in.Category,
		Points:    in.Points,
		Color:     e.state.TaskCategories[in.Category],
		Completed: false,
		IsDefault: false,
	}
	e.state.Tasks = append(e.state.Tasks, task)
	e.state.Progress.Total = len(e.state.Tasks)
	e.saver.Save(e.state)

	logger.Debug("Task created", "task", task.ID, "category", task.Category, "points", task.Points)
	return task, nil
}

func (e *Engine) editTask(id int, in TaskInput) (models.Task, error) {
	i := e.state.FindTask(id)
	if i == -1 {
		return models.Task{}, &Error{Op: "edit", TaskID: id, Err: ErrNotFound}
	}
	if e.state.Tasks[i].IsDefault {
		return models.Task{}, &Error{Op: "edit", TaskID: id, Err: ErrImmutable}
	}
	text, err := e.validate("edit", in)
	if err != nil {
		return models.Task{}, err
	}

	task := &e.state.Tasks[i]
	task.Text = text
	task.Category = in.Category
	task.Points = in.Points
	task.Color = e.state.TaskCategories[in.Category]
	e.saver.Save(e.state)

	logger.Debug("Task edited", "task", id)
	return *task, nil
}

// DeleteTask removes a custom task and recounts progress.
func (e *Engine) DeleteTask(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.state.FindTask(id)
	if i == -1 {
		return &Error{Op: "delete", TaskID: id, Err: ErrNotFound}
	}
	if e.state.Tasks[i].IsDefault {
		return &Error{Op: "delete", TaskID: id, Err: ErrImmutable}
	}

	e.state.Tasks = slices.Delete(e.state.Tasks, i, i+1)
	e.state.RecountProgress()
	e.saver.Save(e.state)

	logger.Debug("Task deleted", "task", id)
	return nil
}
