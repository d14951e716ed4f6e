// Package tui provides the Bubble Tea host for Click Dash.
// It handles the terminal UI loop, mouse mapping, and drives game time
// through Bubble Tea messages so every callback runs on the program's loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clickdash/internal/clock"
)

// TickMsg is delivered when a scheduled callback comes due.
type TickMsg struct {
	ID uint64
}

// scheduler implements clock.Scheduler on top of tea.Tick. After only
// queues a command; the owner must hand Drain's result back to Bubble Tea.
type scheduler struct {
	next    uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

var _ clock.Scheduler = (*scheduler)(nil)

func newScheduler() *scheduler {
	return &scheduler{pending: make(map[uint64]func())}
}

// After schedules fn to run when the matching TickMsg arrives.
func (s *scheduler) After(d time.Duration, fn func()) clock.Cancel {
	s.next++
	id := s.next
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	}))
	return func() { delete(s.pending, id) }
}

// Fire runs the callback for msg unless it was cancelled.
// Reports whether a callback ran.
func (s *scheduler) Fire(msg TickMsg) bool {
	fn, ok := s.pending[msg.ID]
	if !ok {
		return false
	}
	delete(s.pending, msg.ID)
	fn()
	return true
}

// Drain returns the commands queued since the last call.
func (s *scheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of live callbacks.
func (s *scheduler) Pending() int {
	return len(s.pending)
}
