package cli

import (
	"fmt"

	"github.com/julianstephens/dawg/internal/constants"
	"github.com/julianstephens/dawg/internal/notifier"
)

// NotifyCmd sends a one-off message to the tray app. It is hidden and exists for
// checking the tray connection by hand.
type NotifyCmd struct {
	Message    string `arg:"" help:"Notification text."`
	DurationMs uint32 `help:"How long the tray shows the message, in milliseconds."`
}

func (c *NotifyCmd) Run(ctx *Context) error {
	duration := c.DurationMs
	if duration == 0 {
		duration = constants.NotificationDurationMs
	}
	if err := notifier.New().Send(c.Message, duration); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	fmt.Println("✓ Notification sent")
	return nil
}
