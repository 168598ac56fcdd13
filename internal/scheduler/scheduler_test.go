package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTimerSchedulerFires(t *testing.T) {
	s := New()
	defer s.Close()

	done := make(chan struct{})
	s.Schedule(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled call never ran")
	}
}

func TestTimerSchedulerCancel(t *testing.T) {
	s := New()
	var ran atomic.Bool

	cancel := s.Schedule(20*time.Millisecond, func() { ran.Store(true) })
	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", s.Pending())
	}
	cancel()
	cancel()
	if s.Pending() != 0 {
		t.Errorf("Pending() after cancel = %d, want 0", s.Pending())
	}

	time.Sleep(40 * time.Millisecond)
	s.Close()
	if ran.Load() {
		t.Error("cancelled call ran")
	}
}

func TestTimerSchedulerCloseStopsPending(t *testing.T) {
	s := New()
	var ran atomic.Int32
	for range 3 {
		s.Schedule(time.Hour, func() { ran.Add(1) })
	}
	s.Close()

	if ran.Load() != 0 {
		t.Errorf("%d calls ran after Close", ran.Load())
	}
	s.Schedule(time.Millisecond, func() { ran.Add(1) })
	time.Sleep(10 * time.Millisecond)
	if ran.Load() != 0 {
		t.Error("Schedule after Close should be a no-op")
	}
}

func TestImmediate(t *testing.T) {
	ran := false
	Immediate{}.Schedule(time.Hour, func() { ran = true })
	if !ran {
		t.Error("Immediate should run the call synchronously")
	}
}

func TestManualAdvance(t *testing.T) {
	m := NewManual()
	var order []string

	m.Schedule(3*time.Second, func() { order = append(order, "reset") })
	m.Schedule(2500*time.Millisecond, func() { order = append(order, "day") })

	m.Advance(2 * time.Second)
	if len(order) != 0 {
		t.Fatalf("calls ran early: %v", order)
	}

	m.Advance(time.Second)
	if len(order) != 2 || order[0] != "day" || order[1] != "reset" {
		t.Errorf("order = %v, want [day reset]", order)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", m.Pending())
	}
}

func TestManualChainedCalls(t *testing.T) {
	m := NewManual()
	var order []string

	m.Schedule(2500*time.Millisecond, func() {
		order = append(order, "day")
		m.Schedule(3*time.Second, func() { order = append(order, "reset") })
	})

	m.Advance(5 * time.Second)
	if len(order) != 1 {
		t.Fatalf("order = %v, want only the first call", order)
	}
	m.Advance(500 * time.Millisecond)
	if len(order) != 2 {
		t.Errorf("order = %v, want the chained call at 5.5s", order)
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	ran := false
	cancel := m.Schedule(time.Second, func() { ran = true })
	cancel()
	m.Advance(time.Minute)
	if ran {
		t.Error("cancelled call ran")
	}
}
