package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/dawg/internal/engine"
	"github.com/julianstephens/dawg/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Describe turns an engine rejection into the short message shown to the user.
// Errors that are not engine rejections are formatted as-is.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, engine.ErrImmutable):
		return "Default tasks cannot be edited or deleted"
	case stderrors.Is(err, engine.ErrNotFound):
		return "No such task"
	case stderrors.Is(err, engine.ErrInvalidInput):
		var e *engine.Error
		if stderrors.As(err, &e) && e.Detail != "" {
			return "Invalid task: " + e.Detail
		}
		return "Invalid task"
	default:
		return err.Error()
	}
}

// Fatal logs an error, prints its short description and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Formatf("%s", Describe(err)))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
