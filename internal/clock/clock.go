// Package clock abstracts "run this later" so game timing can be driven by a
// UI event loop in production and by virtual time in tests.
package clock

import (
	"sort"
	"time"
)

// Cancel revokes a scheduled callback. Calling it after the callback ran,
// or more than once, does nothing.
type Cancel func()

// Scheduler runs callbacks after a delay on the caller's event loop.
// Implementations must never invoke fn concurrently with other callbacks
// from the same scheduler.
type Scheduler interface {
	After(d time.Duration, fn func()) Cancel
}

// Manual is a deterministic Scheduler driven by Advance. Nothing fires on
// its own; virtual time only moves when the owner advances it.
// Manual is not safe for concurrent use.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending []*entry
}

type entry struct {
	due       time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

// NewManual creates a manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// After schedules fn to run once virtual time reaches now+d.
// Negative delays are treated as zero.
func (m *Manual) After(d time.Duration, fn func()) Cancel {
	if d < 0 {
		d = 0
	}
	m.seq++
	e := &entry{due: m.now + d, seq: m.seq, fn: fn}
	m.pending = append(m.pending, e)
	return func() { e.cancelled = true }
}

// Advance moves virtual time forward by d and runs every callback that
// becomes due, in due-time order (ties in scheduling order). Callbacks
// scheduled while advancing run too if they fall inside the window.
// Returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + d
	fired := 0

	for {
		e := m.nextDue(target)
		if e == nil {
			break
		}
		m.now = e.due
		e.fn()
		fired++
	}

	m.now = target
	return fired
}

// nextDue removes and returns the earliest live entry due at or before
// target, or nil.
func (m *Manual) nextDue(target time.Duration) *entry {
	m.compact()
	if len(m.pending) == 0 {
		return nil
	}

	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].due != m.pending[j].due {
			return m.pending[i].due < m.pending[j].due
		}
		return m.pending[i].seq < m.pending[j].seq
	})

	e := m.pending[0]
	if e.due > target {
		return nil
	}
	m.pending = m.pending[1:]
	return e
}

// compact drops cancelled entries.
func (m *Manual) compact() {
	live := m.pending[:0]
	for _, e := range m.pending {
		if !e.cancelled {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(m.pending); i++ {
		m.pending[i] = nil
	}
	m.pending = live
}

// Pending returns the number of live scheduled callbacks.
func (m *Manual) Pending() int {
	m.compact()
	return len(m.pending)
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}
