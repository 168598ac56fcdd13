// Package scheduler runs deferred state transitions after a pacing delay.
package scheduler

import (
	"slices"
	"sync"
	"time"
)

// Scheduler runs fn once after delay unless cancelled first.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
	// Close cancels everything still pending and waits for running callbacks.
	Close()
}

// TimerScheduler backs each scheduled call with a time.AfterFunc timer.
type TimerScheduler struct {
	mu      sync.Mutex
	next    uint64
	timers  map[uint64]*time.Timer
	running sync.WaitGroup
	closed  bool
}

func New() *TimerScheduler {
	return &TimerScheduler{timers: make(map[uint64]*time.Timer)}
}

func (s *TimerScheduler) Schedule(delay time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return func() {}
	}

	id := s.next
	s.next++
	s.running.Add(1)
	s.timers[id] = time.AfterFunc(delay, func() {
		defer s.running.Done()
		s.mu.Lock()
		_, live := s.timers[id]
		delete(s.timers, id)
		s.mu.Unlock()
		if live {
			fn()
		}
	})

	return func() { s.cancel(id) }
}

func (s *TimerScheduler) cancel(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.timers[id]
	if !ok {
		return
	}
	delete(s.timers, id)
	if t.Stop() {
		s.running.Done()
	}
}

// Pending counts scheduled calls that have not fired or been cancelled.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *TimerScheduler) Close() {
	s.mu.Lock()
	s.closed = true
	for id, t := range s.timers {
		delete(s.timers, id)
		if t.Stop() {
			s.running.Done()
		}
	}
	s.mu.Unlock()
	s.running.Wait()
}

// Immediate runs every call synchronously, ignoring the delay. Commands that exit
// right after acting use it so deferred transitions are not lost.
type Immediate struct{}

func (Immediate) Schedule(_ time.Duration, fn func()) func() {
	fn()
	return func() {}
}

func (Immediate) Close() {}

// Manual is a fake clock for tests: calls fire only when Advance moves time past them.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	queue []manualCall
}

type manualCall struct {
	at  time.Duration
	seq uint64
	fn  func()
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(delay time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	seq := m.seq
	m.seq++
	m.queue = append(m.queue, manualCall{at: m.now + delay, seq: seq, fn: fn})
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.queue = slices.DeleteFunc(m.queue, func(c manualCall) bool { return c.seq == seq })
	}
}

// Advance moves the clock forward by d and runs every call that came due, in
// deadline order. Calls scheduled by a callback run too if they fall due in the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		idx := -1
		for i, c := range m.queue {
			if c.at > target {
				continue
			}
			if idx == -1 || c.at < m.queue[idx].at || (c.at == m.queue[idx].at && c.seq < m.queue[idx].seq) {
				idx = i
			}
		}
		if idx == -1 {
			m.now = target
			m.mu.Unlock()
			return
		}
		call := m.queue[idx]
		m.queue = slices.Delete(m.queue, idx, idx+1)
		m.now = call.at
		m.mu.Unlock()

		call.fn()
	}
}

func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

func (m *Manual) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = nil
}
