package calendar

import (
	"strings"
	"testing"

	"github.com/julianstephens/dawg/internal/models"
)

func TestGrid(t *testing.T) {
	cal := models.Calendar{
		CurrentMonth:      "JUL",
		CurrentDate:       27,
		CompletedDays:     []int{22, 23, 26},
		ConsecutiveDays:   7,
		CompletionHistory: map[string]bool{"2025-07-26": true},
	}
	out := Grid(cal, 31)

	for _, want := range []string{"JUL", "22✓", "23✓", "26✓", "7 day streak", "3 days completed this month, 1 recorded in total"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected grid to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "27✓") {
		t.Error("today is not completed and must not be marked")
	}
	if strings.Contains(out, "32") {
		t.Error("grid rendered past the end of the month")
	}
}
