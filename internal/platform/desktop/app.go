// Package desktop provides the windowed Click Dash host built on Ebitengine.
//
// App holds everything the window does that is not drawing or polling:
// it owns the session, advances a manual clock by one frame per update and
// edits the player's name. Game adapts it to ebiten.Game.
package desktop

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clickdash/internal/clock"
	"github.com/vovakirdan/clickdash/internal/config"
	"github.com/vovakirdan/clickdash/internal/game"
	"github.com/vovakirdan/clickdash/internal/platform/view"
)

const maxNameLen = 32

// Options configure a desktop game.
type Options struct {
	Config config.Config
	Sink   game.RecordSink
	Logger *log.Logger
}

// App is one windowed player.
type App struct {
	session *game.Session
	board   *view.Board
	clock   *clock.Manual
	layout  layout
	logger  *log.Logger

	defName string
	name    []rune
	editing bool
}

// NewApp creates an app with an idle session.
func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clk := clock.NewManual()
	board := view.NewBoard(cfg.Round.Seconds)
	l := computeLayout(cfg.Desktop)

	session := game.NewSession(cfg.Session(cfg.Desktop.Placement), game.Deps{
		Scheduler: clk,
		Presenter: board,
		Sink:      opts.Sink,
		Logger:    logger,
	})
	session.SetPlayArea(l.Area.Size())

	return &App{
		session: session,
		board:   board,
		clock:   clk,
		layout:  l,
		logger:  logger,
		defName: cfg.Player.DefaultName,
	}
}

// Advance moves game time forward by d.
func (a *App) Advance(d time.Duration) {
	a.clock.Advance(d)
	a.syncPrompt()
}

// Press handles a left click at window coordinates (x, y).
func (a *App) Press(x, y int) {
	switch a.board.HitTest(a.layout.Layout, x, y) {
	case view.HitStart:
		if err := a.session.StartRound(); err != nil {
			a.logger.Debug("start ignored", "error", err)
		}
	case view.HitTarget:
		a.session.HandleClick()
	case view.HitSubmit:
		a.Submit()
	}
	a.syncPrompt()
}

// Type appends printable runes to the name being entered.
func (a *App) Type(runes []rune) {
	if !a.editing {
		return
	}
	for _, r := range runes {
		if len(a.name) >= maxNameLen {
			return
		}
		if r < ' ' || r == 0x7f {
			continue
		}
		a.name = append(a.name, r)
	}
}

// Backspace deletes the last rune of the name.
func (a *App) Backspace() {
	if a.editing && len(a.name) > 0 {
		a.name = a.name[:len(a.name)-1]
	}
}

// Submit records the entered name for the finished round.
func (a *App) Submit() {
	if !a.editing {
		return
	}
	name := string(a.name)
	a.name = a.name[:0]
	a.editing = false

	if err := a.session.SubmitScore(name); err != nil && !errors.Is(err, game.ErrNoRoundToSubmit) {
		a.logger.Error("submit failed", "error", err)
	}
}

// Prompting reports whether the name entry is open.
func (a *App) Prompting() bool {
	return a.editing
}

// Name returns the name as currently typed.
func (a *App) Name() string {
	return string(a.name)
}

// Session exposes the underlying game session.
func (a *App) Session() *game.Session {
	return a.session
}

// Close stops the countdown.
func (a *App) Close() {
	a.session.Close()
}

// syncPrompt opens the editor, pre-filled, when the session asks for a name.
func (a *App) syncPrompt() {
	if a.board.Prompting && !a.editing {
		a.name = append(a.name[:0], []rune(a.defName)...)
		a.editing = true
	}
}
