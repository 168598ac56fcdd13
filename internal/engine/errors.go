package engine

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("task not found")
	ErrInvalidInput = errors.New("invalid task")
	ErrImmutable    = errors.New("default tasks cannot be changed")
)

// Error describes a rejected registry operation. The state is untouched whenever one is returned.
type Error struct {
	Op     string
	TaskID int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.TaskID != 0 {
		msg += fmt.Sprintf(" task %d", e.TaskID)
	}
	msg += ": " + e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
