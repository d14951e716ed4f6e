package game

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/clickdash/internal/clock"
	"github.com/vovakirdan/clickdash/internal/core"
)

// recorder is a Presenter that remembers every call in order.
type recorder struct {
	calls   []string
	score   int
	time    int
	target  core.Point
	visible bool
	overlay bool
	prompt  int
}

func (r *recorder) RenderScore(v int) {
	r.score = v
	r.calls = append(r.calls, fmt.Sprintf("score %d", v))
}

func (r *recorder) RenderTime(s int) {
	r.time = s
	r.calls = append(r.calls, fmt.Sprintf("time %d", s))
}

func (r *recorder) ShowTargetAt(x, y int) {
	r.target = core.Point{X: x, Y: y}
	r.visible = true
	r.calls = append(r.calls, "target")
}

func (r *recorder) HideTarget() {
	r.visible = false
	r.calls = append(r.calls, "hide target")
}

func (r *recorder) ShowStartOverlay() {
	r.overlay = true
	r.calls = append(r.calls, "show overlay")
}

func (r *recorder) HideStartOverlay() {
	r.overlay = false
	r.calls = append(r.calls, "hide overlay")
}

func (r *recorder) PromptForName(score int) {
	r.prompt = score
	r.calls = append(r.calls, fmt.Sprintf("prompt %d", score))
}

type fixture struct {
	session *Session
	sched   *clock.Manual
	view    *recorder
	records []Submission
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		sched: clock.NewManual(),
		view:  &recorder{overlay: true},
	}
	cfg := DefaultConfig()
	cfg.Seed = 2024

	f.session = NewSession(cfg, Deps{
		Scheduler: f.sched,
		Presenter: f.view,
		Sink: SinkFunc(func(sub Submission) error {
			f.records = append(f.records, sub)
			return nil
		}),
	})
	f.session.SetPlayArea(core.Size{W: 560, H: 500})
	return f
}

func (f *fixture) assertTargetInBounds(t *testing.T) {
	t.Helper()
	pos, ok := f.session.Target()
	require.True(t, ok)
	assert.GreaterOrEqual(t, pos.X, 10)
	assert.GreaterOrEqual(t, pos.Y, 10)
	assert.LessOrEqual(t, pos.X, 560-100)
	assert.LessOrEqual(t, pos.Y, 500-50)
	assert.Equal(t, pos, f.view.target)
}

func TestSessionFullRound(t *testing.T) {
	f := newFixture(t)
	s := f.session

	require.NoError(t, s.StartRound())
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, 30, s.TimeRemaining())
	assert.Equal(t, 0, s.Score())
	assert.False(t, f.view.overlay)
	assert.True(t, f.view.visible)
	f.assertTargetInBounds(t)

	for i := 1; i <= 5; i++ {
		s.HandleClick()
		assert.Equal(t, i, s.Score())
		assert.Equal(t, i, f.view.score)
		f.assertTargetInBounds(t)
	}

	f.sched.Advance(29 * time.Second)
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, 1, s.TimeRemaining())
	assert.Equal(t, 1, f.view.time)

	f.sched.Advance(time.Second)
	assert.Equal(t, StateEnded, s.State())
	assert.Equal(t, 5, s.Score())
	assert.Equal(t, 0, s.TimeRemaining())
	assert.False(t, f.view.visible)
	assert.Equal(t, 5, f.view.prompt)
	assert.Equal(t, 0, f.sched.Pending(), "no tick survives the round")
	assert.Equal(t, TimerExpired, s.timer.State())

	require.NoError(t, s.SubmitScore("Ava"))
	require.Len(t, f.records, 1)
	assert.Equal(t, "Ava | 5", f.records[0].Record())
	assert.Equal(t, StateIdle, s.State())
	assert.True(t, f.view.overlay)
}

func TestSessionNotificationOrder(t *testing.T) {
	f := newFixture(t)
	s := f.session
	s.cfg.RoundSeconds = 2
	s.remaining = 2

	require.NoError(t, s.StartRound())
	s.HandleClick()
	f.sched.Advance(2 * time.Second)
	require.NoError(t, s.SubmitScore("x"))

	assert.Equal(t, []string{
		"hide overlay", "score 0", "time 2", "target",
		"score 1", "target",
		"time 1",
		"time 0", "hide target", "prompt 1",
		"show overlay",
	}, f.view.calls)
}

func TestSessionClickIsNoOpOutsideRound(t *testing.T) {
	f := newFixture(t)
	s := f.session

	// Idle
	s.HandleClick()
	assert.Equal(t, 0, s.Score())
	_, ok := s.Target()
	assert.False(t, ok)
	assert.Empty(t, f.view.calls)

	// Ended
	require.NoError(t, s.StartRound())
	s.HandleClick()
	f.sched.Advance(30 * time.Second)
	require.Equal(t, StateEnded, s.State())

	before := s.Snapshot()
	calls := len(f.view.calls)
	s.HandleClick()
	assert.Equal(t, before, s.Snapshot())
	assert.Len(t, f.view.calls, calls)
}

func TestSessionSubmitTwiceRecordsOnce(t *testing.T) {
	f := newFixture(t)
	s := f.session

	require.NoError(t, s.StartRound())
	f.sched.Advance(30 * time.Second)

	require.NoError(t, s.SubmitScore("Ava"))
	err := s.SubmitScore("Ava")

	assert.ErrorIs(t, err, ErrNoRoundToSubmit)
	assert.Len(t, f.records, 1)
	assert.Equal(t, StateIdle, s.State())
}

func TestSessionSubmitRequiresEndedRound(t *testing.T) {
	f := newFixture(t)
	s := f.session

	assert.ErrorIs(t, s.SubmitScore("early"), ErrNoRoundToSubmit)

	require.NoError(t, s.StartRound())
	assert.ErrorIs(t, s.SubmitScore("mid"), ErrNoRoundToSubmit)
	assert.Equal(t, StateRunning, s.State())
	assert.Empty(t, f.records)
}

func TestSessionStartRoundRejectedOutsideIdle(t *testing.T) {
	f := newFixture(t)
	s := f.session

	require.NoError(t, s.StartRound())
	s.HandleClick()
	f.sched.Advance(3 * time.Second)

	assert.ErrorIs(t, s.StartRound(), ErrRoundInProgress)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 27, s.TimeRemaining())
	assert.Equal(t, 1, f.sched.Pending(), "no duplicate timer")

	f.sched.Advance(27 * time.Second)
	assert.ErrorIs(t, s.StartRound(), ErrAwaitingSubmission)
	assert.Equal(t, StateEnded, s.State())
}

func TestSessionSecondRoundStartsFresh(t *testing.T) {
	f := newFixture(t)
	s := f.session

	require.NoError(t, s.StartRound())
	first := s.Snapshot().RoundID
	s.HandleClick()
	s.HandleClick()
	f.sched.Advance(30 * time.Second)
	require.NoError(t, s.SubmitScore(""))

	require.NoError(t, s.StartRound())
	assert.NotEqual(t, first, s.Snapshot().RoundID)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 30, s.TimeRemaining())

	f.sched.Advance(time.Second)
	assert.Equal(t, 29, s.TimeRemaining(), "exactly one timer drives the new round")

	require.Len(t, f.records, 1)
	assert.Equal(t, " | 2", f.records[0].Record(), "empty names are accepted")
}

func TestSessionCloseCancelsTick(t *testing.T) {
	f := newFixture(t)
	s := f.session

	require.NoError(t, s.StartRound())
	s.Close()

	assert.Equal(t, 0, f.sched.Pending())
	f.sched.Advance(time.Minute)
	assert.Equal(t, 30, s.TimeRemaining())
	assert.Equal(t, StateRunning, s.State())
}

func TestSessionOnTickDelegatesToCountdown(t *testing.T) {
	f := newFixture(t)
	s := f.session

	s.OnTick()
	assert.Equal(t, 30, s.TimeRemaining(), "ignored while idle")

	require.NoError(t, s.StartRound())
	s.OnTick()
	assert.Equal(t, 29, s.TimeRemaining())
	assert.Equal(t, 29, f.view.time)
	assert.Equal(t, 1, f.sched.Pending(), "manual tick replaces the scheduled one")

	f.sched.Advance(time.Second)
	assert.Equal(t, 28, s.TimeRemaining())
}

func TestSessionOnTimeExpiredIgnoredUnlessRunning(t *testing.T) {
	f := newFixture(t)
	s := f.session

	s.OnTimeExpired()
	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, f.view.calls)

	require.NoError(t, s.StartRound())
	s.OnTimeExpired()
	assert.Equal(t, StateEnded, s.State())
	assert.Equal(t, 0, f.sched.Pending(), "early expiry cancels the countdown")
	assert.Equal(t, TimerStopped, s.timer.State())
}

func TestSessionManualTicksLeaveTimerExpired(t *testing.T) {
	f := newFixture(t)
	s := f.session

	require.NoError(t, s.StartRound())
	for i := 0; i < 30; i++ {
		s.OnTick()
	}

	assert.Equal(t, StateEnded, s.State())
	assert.Equal(t, TimerExpired, s.timer.State())
	assert.Equal(t, 0, f.sched.Pending())

	// The next round re-arms the same countdown
	require.NoError(t, s.SubmitScore("Ava"))
	require.NoError(t, s.StartRound())
	assert.Equal(t, TimerRunning, s.timer.State())
	assert.Equal(t, 1, f.sched.Pending())
}

func TestSessionSetPlayAreaMovesTargetThatNoLongerFits(t *testing.T) {
	f := newFixture(t)
	s := f.session

	require.NoError(t, s.StartRound())
	s.SetPlayArea(core.Size{W: 120, H: 70})

	pos, ok := s.Target()
	require.True(t, ok)
	assert.LessOrEqual(t, pos.X, 20)
	assert.LessOrEqual(t, pos.Y, 20)
	assert.Equal(t, pos, f.view.target)
}

func TestSessionUsesFallbackBeforeMeasurement(t *testing.T) {
	sched := clock.NewManual()
	s := NewSession(DefaultConfig(), Deps{Scheduler: sched})

	require.NoError(t, s.StartRound())
	pos, ok := s.Target()
	require.True(t, ok)
	assert.LessOrEqual(t, pos.X, 460)
	assert.LessOrEqual(t, pos.Y, 450)
}

func TestSessionSinkFailureStillReturnsToIdle(t *testing.T) {
	sched := clock.NewManual()
	boom := errors.New("disk full")
	s := NewSession(DefaultConfig(), Deps{
		Scheduler: sched,
		Sink:      SinkFunc(func(Submission) error { return boom }),
	})

	require.NoError(t, s.StartRound())
	sched.Advance(30 * time.Second)

	err := s.SubmitScore("Ava")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateIdle, s.State())
}

func TestNewSessionRequiresScheduler(t *testing.T) {
	assert.Panics(t, func() { NewSession(DefaultConfig(), Deps{}) })
}

func TestSinks(t *testing.T) {
	sub := Submission{RoundID: "r1", Name: "Ava", Score: 5}

	t.Run("writer prints saved line", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriterSink{W: &buf}.Record(sub))
		assert.Equal(t, "SAVED: Ava | 5\n", buf.String())
	})

	t.Run("log sink includes record", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf)
		require.NoError(t, LogSink{Logger: logger}.Record(sub))
		assert.Contains(t, buf.String(), "score submitted")
		assert.Contains(t, buf.String(), "Ava | 5")
	})

	t.Run("multi sink reaches every sink", func(t *testing.T) {
		var a, b bytes.Buffer
		fail := SinkFunc(func(Submission) error { return errors.New("nope") })
		err := MultiSink{WriterSink{W: &a}, fail, WriterSink{W: &b}}.Record(sub)

		assert.Error(t, err)
		assert.True(t, strings.HasPrefix(a.String(), "SAVED"))
		assert.True(t, strings.HasPrefix(b.String(), "SAVED"))
	})
}
