package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/dawg/internal/logger"
)

type Kind string

const (
	KindTaskCompleted Kind = "taskCompleted"
	KindDayComplete   Kind = "dayComplete"
	KindLevelUp       Kind = "levelUp"
)

// Notification is a display-only event. Renderers dismiss it after DisplayFor.
type Notification struct {
	ID   uuid.UUID
	Kind Kind

	// taskCompleted
	Points int
	Color  string

	// dayComplete
	Streak int

	// levelUp
	Emoji      string
	AnimalName string
	Title      string

	DisplayFor time.Duration
}

type Sink interface {
	Notify(Notification)
}

type SinkFunc func(Notification)

func (f SinkFunc) Notify(n Notification) { f(n) }

// ChannelSink hands notifications to a consumer such as the TUI event loop.
// Notifications are dropped when the buffer is full.
type ChannelSink struct {
	C chan Notification
}

func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{C: make(chan Notification, buffer)}
}

func (s *ChannelSink) Notify(n Notification) {
	select {
	case s.C <- n:
	default:
		logger.Debug("Dropped notification, consumer is behind", "kind", n.Kind)
	}
}
