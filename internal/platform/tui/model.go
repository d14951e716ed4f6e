package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clickdash/internal/config"
	"github.com/vovakirdan/clickdash/internal/core"
	"github.com/vovakirdan/clickdash/internal/game"
	"github.com/vovakirdan/clickdash/internal/platform/view"
)

// Options configure a terminal game.
type Options struct {
	Config config.Config
	Sink   game.RecordSink
	Logger *log.Logger
	Width  int // Initial terminal size; a WindowSizeMsg replaces it
	Height int
	Player string // Shown in logs, e.g. the SSH user
}

// Model is the Bubble Tea model for one Click Dash player.
type Model struct {
	session   *game.Session
	board     *view.Board
	sched     *scheduler
	screen    *core.Screen
	layout    layout
	input     textinput.Model
	inputMap  *InputMapper
	logger    *log.Logger
	defName   string
	screenDir string
	quitting  bool
}

// NewModel creates a model with a fresh idle session.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Player != "" {
		logger = logger.With("player", opts.Player)
	}

	sched := newScheduler()
	board := view.NewBoard(cfg.Round.Seconds)
	session := game.NewSession(cfg.Session(cfg.Terminal.Placement), game.Deps{
		Scheduler: sched,
		Presenter: board,
		Sink:      opts.Sink,
		Logger:    logger,
	})

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 32

	m := Model{
		session:   session,
		board:     board,
		sched:     sched,
		screen:    core.NewScreen(opts.Width, opts.Height),
		input:     input,
		inputMap:  NewInputMapper(),
		logger:    logger,
		defName:   cfg.Player.DefaultName,
		screenDir: config.UserPath("screenshots"),
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the program. Nothing is scheduled until the player presses
// the start button.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case TickMsg:
		m.sched.Fire(msg)
	}

	if m.quitting {
		return m, tea.Quit
	}

	// Open the prompt editor the moment the session asks for a name.
	if m.board.Prompting && !m.input.Focused() {
		m.input.SetValue(m.defName)
		m.input.CursorEnd()
		cmd = tea.Batch(cmd, m.input.Focus())
	}

	return m, tea.Batch(cmd, m.sched.Drain())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.inputMap.MapKey(msg, m.board.Prompting) {
	case KeyQuit:
		m.session.Close()
		m.quitting = true
	case KeyScreenshot:
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
	case KeySubmit:
		m.submit()
	case KeyEdit:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse dispatches a press to whatever it landed on.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y, ok := m.inputMap.MapMouse(msg)
	if !ok || m.layout.tooSmall() {
		return
	}

	switch m.board.HitTest(m.layout.Layout, x, y) {
	case view.HitStart:
		if err := m.session.StartRound(); err != nil {
			m.logger.Debug("start ignored", "error", err)
		}
	case view.HitTarget:
		m.session.HandleClick()
	case view.HitSubmit:
		m.submit()
	}
}

func (m *Model) submit() {
	name := m.input.Value()
	m.input.Blur()
	m.input.Reset()

	if err := m.session.SubmitScore(name); err != nil && !errors.Is(err, game.ErrNoRoundToSubmit) {
		m.logger.Error("submit failed", "error", err)
	}
}

// resize recomputes the layout and reports the new play area.
func (m *Model) resize(width, height int) {
	m.screen.Resize(width, height)
	m.layout = computeLayout(width, height, m.session.Config().Target)
	m.session.SetPlayArea(m.layout.playArea())
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() error {
	m.layout.draw(m.screen, m.board, m.nameField())

	if err := os.MkdirAll(m.screenDir, 0o755); err != nil {
		return fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	filename := fmt.Sprintf("clickdash_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

func (m Model) nameField() nameField {
	return nameField{value: m.input.Value(), cursor: m.input.Position()}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.layout.draw(m.screen, m.board, m.nameField())
	return RenderScreen(m.screen)
}

// Session exposes the underlying game session.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts a Bubble Tea program for a single local player.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
