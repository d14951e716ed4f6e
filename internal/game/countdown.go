package game

import (
	"time"

	"github.com/vovakirdan/clickdash/internal/clock"
)

// Countdown is a repeating one-step-per-interval timer that counts a number
// of seconds down to zero and then fires its expiry callback once.
type Countdown struct {
	sched     clock.Scheduler
	interval  time.Duration
	remaining int
	state     TimerState
	cancel    clock.Cancel

	// OnTick receives the remaining count after every tick, including the
	// final one that reaches zero.
	OnTick func(remaining int)

	// OnExpire runs once when the count reaches zero.
	OnExpire func()
}

// NewCountdown creates a stopped countdown that schedules its ticks on sched.
func NewCountdown(sched clock.Scheduler, interval time.Duration) *Countdown {
	return &Countdown{
		sched:    sched,
		interval: interval,
		state:    TimerStopped,
	}
}

// Start arms the countdown with the given number of seconds and schedules
// the first tick. Any tick pending from an earlier start is cancelled.
func (c *Countdown) Start(seconds int) {
	c.cancelPending()
	c.remaining = max(seconds, 0)
	c.state = TimerRunning
	if c.remaining == 0 {
		c.expire()
		return
	}
	c.schedule()
}

// Tick advances the countdown by one step. It does nothing unless the
// countdown is running.
func (c *Countdown) Tick() {
	if c.state != TimerRunning {
		return
	}

	// A manual tick replaces the scheduled one.
	c.cancelPending()
	c.remaining--

	if c.OnTick != nil {
		c.OnTick(c.remaining)
	}
	// OnTick may have stopped us.
	if c.state != TimerRunning {
		return
	}

	if c.remaining > 0 {
		c.schedule()
		return
	}
	c.expire()
}

// Stop halts the countdown from any state and drops the pending tick.
func (c *Countdown) Stop() {
	c.cancelPending()
	c.state = TimerStopped
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// State returns the current timer state.
func (c *Countdown) State() TimerState {
	return c.state
}

func (c *Countdown) schedule() {
	c.cancel = c.sched.After(c.interval, c.Tick)
}

func (c *Countdown) expire() {
	c.state = TimerExpired
	if c.OnExpire != nil {
		c.OnExpire()
	}
}

func (c *Countdown) cancelPending() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
