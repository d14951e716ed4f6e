package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/clickdash/internal/clock"
	"github.com/vovakirdan/clickdash/internal/core"
)

// Errors returned by the session for requests that make no sense in the
// current state. The session is left untouched when they are returned.
var (
	ErrRoundInProgress    = errors.New("game: round already in progress")
	ErrAwaitingSubmission = errors.New("game: previous round awaits a name")
	ErrNoRoundToSubmit    = errors.New("game: no finished round to submit")
)

// Config holds the round rules and target geometry, in play-area units.
type Config struct {
	RoundSeconds int           // Countdown length
	TickInterval time.Duration // Wall time per countdown step
	Target       core.Size     // Target button size
	Margin       int           // Minimum distance from the top-left edges
	Fallback     core.Size     // Play area used until the host measures one
	Seed         int64         // Placement RNG seed
}

// DefaultConfig returns the classic round: 30 one-second ticks, a 100x50
// target and a 560x500 fallback area.
func DefaultConfig() Config {
	return Config{
		RoundSeconds: 30,
		TickInterval: time.Second,
		Target:       core.Size{W: 100, H: 50},
		Margin:       10,
		Fallback:     core.Size{W: 560, H: 500},
		Seed:         1,
	}
}

// Deps are the collaborators a session talks to. Scheduler is required;
// the rest default to no-ops.
type Deps struct {
	Scheduler clock.Scheduler
	Presenter Presenter
	Sink      RecordSink
	Logger    *log.Logger
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	State         State
	Score         int
	TimeRemaining int
	Target        core.Point
	TargetVisible bool
	PlayArea      core.Size
	RoundID       string
}

// Session is the round orchestrator. It owns the score, the countdown and
// the target position, and is the only thing that changes them.
// A Session must only be used from one event loop.
type Session struct {
	cfg    Config
	view   Presenter
	sink   RecordSink
	logger *log.Logger
	now    func() time.Time

	state     State
	score     ScoreTracker
	timer     *Countdown
	placer    *Placer
	remaining int
	target    core.Point
	playArea  core.Size
	roundID   string
	startedAt time.Time
}

// NewSession creates an idle session.
func NewSession(cfg Config, deps Deps) *Session {
	if deps.Scheduler == nil {
		panic("game: NewSession requires a scheduler")
	}
	if deps.Presenter == nil {
		deps.Presenter = NopPresenter{}
	}
	if deps.Sink == nil {
		deps.Sink = SinkFunc(func(Submission) error { return nil })
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:       cfg,
		view:      deps.Presenter,
		sink:      deps.Sink,
		logger:    deps.Logger,
		now:       time.Now,
		state:     StateIdle,
		placer:    NewPlacer(cfg.Seed, cfg.Margin, cfg.Fallback),
		remaining: cfg.RoundSeconds,
	}

	s.timer = NewCountdown(deps.Scheduler, cfg.TickInterval)
	s.timer.OnTick = s.handleTick
	s.timer.OnExpire = s.OnTimeExpired

	return s
}

// StartRound begins a new round from Idle.
func (s *Session) StartRound() error {
	switch s.state {
	case StateRunning:
		return ErrRoundInProgress
	case StateEnded:
		return ErrAwaitingSubmission
	}

	s.score.Reset()
	s.remaining = s.cfg.RoundSeconds
	s.target = s.placer.Place(s.playArea, s.cfg.Target)
	s.roundID = uuid.NewString()
	s.startedAt = s.now()
	s.state = StateRunning

	s.logger.Debug("round started",
		"round", s.roundID,
		"seconds", s.cfg.RoundSeconds,
		"x", s.target.X,
		"y", s.target.Y,
	)

	s.view.HideStartOverlay()
	s.view.RenderScore(0)
	s.view.RenderTime(s.remaining)
	s.view.ShowTargetAt(s.target.X, s.target.Y)

	s.timer.Start(s.cfg.RoundSeconds)
	return nil
}

// HandleClick registers a hit on the target. Ignored unless running.
func (s *Session) HandleClick() {
	if s.state != StateRunning {
		s.logger.Debug("click ignored", "state", s.state)
		return
	}

	score := s.score.Increment()
	s.target = s.placer.Place(s.playArea, s.cfg.Target)

	s.view.RenderScore(score)
	s.view.ShowTargetAt(s.target.X, s.target.Y)
}

// OnTick advances the countdown by one step. Hosts normally never call this
// directly since the countdown schedules itself, but it is safe to do so.
func (s *Session) OnTick() {
	s.timer.Tick()
}

func (s *Session) handleTick(remaining int) {
	s.remaining = remaining
	s.view.RenderTime(remaining)
}

// OnTimeExpired ends the running round and asks for the player's name.
// Ignored unless running.
func (s *Session) OnTimeExpired() {
	if s.state != StateRunning {
		return
	}

	// Called by the countdown itself on expiry; an early call stops it.
	if s.timer.State() != TimerExpired {
		s.timer.Stop()
	}
	s.state = StateEnded

	s.logger.Debug("round ended",
		"round", s.roundID,
		"score", s.score.Value(),
		"elapsed", s.now().Sub(s.startedAt).Round(time.Millisecond),
	)

	s.view.HideTarget()
	s.view.PromptForName(s.score.Value())
}

// SubmitScore records the finished round under name and returns to Idle.
// Any name is accepted, including the empty string. The state changes
// even if the sink fails; the sink error is returned wrapped.
func (s *Session) SubmitScore(name string) error {
	if s.state != StateEnded {
		return ErrNoRoundToSubmit
	}

	sub := Submission{
		RoundID:     s.roundID,
		Name:        name,
		Score:       s.score.Value(),
		SubmittedAt: s.now(),
	}
	s.state = StateIdle

	err := s.sink.Record(sub)
	s.view.ShowStartOverlay()

	if err != nil {
		s.logger.Error("record submission failed", "round", sub.RoundID, "error", err)
		return fmt.Errorf("game: record submission: %w", err)
	}
	return nil
}

// SetPlayArea updates the play area size measured by the host. A running
// target that no longer fits is moved.
func (s *Session) SetPlayArea(bounds core.Size) {
	s.playArea = bounds
	if s.state != StateRunning || !bounds.Known() {
		return
	}

	area := core.NewRect(0, 0, bounds.W, bounds.H)
	if area.ContainsRect(core.RectAt(s.target, s.cfg.Target)) {
		return
	}
	s.target = s.placer.Place(s.playArea, s.cfg.Target)
	s.view.ShowTargetAt(s.target.X, s.target.Y)
}

// Close cancels any pending tick. The session stays usable.
func (s *Session) Close() {
	s.timer.Stop()
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score.Value()
}

// TimeRemaining returns the seconds left in the round.
func (s *Session) TimeRemaining() int {
	return s.remaining
}

// Target returns the live target position; ok is false unless running.
func (s *Session) Target() (p core.Point, ok bool) {
	return s.target, s.state == StateRunning
}

// Config returns the session's rules.
func (s *Session) Config() Config {
	return s.cfg
}

// Snapshot returns the session state in one value.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:         s.state,
		Score:         s.score.Value(),
		TimeRemaining: s.remaining,
		Target:        s.target,
		TargetVisible: s.state == StateRunning,
		PlayArea:      s.playArea,
		RoundID:       s.roundID,
	}
}
