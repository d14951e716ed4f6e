package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/clickdash/internal/config"
	"github.com/vovakirdan/clickdash/internal/game"
	"github.com/vovakirdan/clickdash/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Click Dash in the terminal. Your terminal must report mouse clicks.

Controls:
  Left click  - Start the round, hit the target, submit your name
  Enter       - Submit your name
  Ctrl+S      - Save a text screenshot to ~/.clickdash/screenshots
  Q/Ctrl+C    - Quit (Q types a letter while entering your name)

Logs go to the file set by terminal.log_file so they do not disturb the
screen. Saved records are printed again after the game exits.

Examples:
  clickdash play
  clickdash play --seed 42
  clickdash play --config ./clickdash.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs the terminal game. It returns instead of exiting so the log
// file is closed on every path.
func play(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logOut, closeLog, err := openLogFile(cfg.Terminal.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()

	logger := newLogger(logOut, cfg, "clickdash")

	// The alt screen hides anything printed while playing, so records are
	// echoed once the program has restored the terminal.
	var echo bytes.Buffer
	runErr := tui.Run(tui.Options{
		Config: cfg,
		Sink:   game.MultiSink{game.LogSink{Logger: logger}, game.WriterSink{W: &echo}},
		Logger: logger,
		Width:  width,
		Height: height,
	})

	_, _ = echo.WriteTo(os.Stdout)

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// openLogFile opens path for appending. An empty path, or one that cannot
// be opened, discards logs.
func openLogFile(path string) (io.Writer, func(), error) {
	noop := func() {}
	if path == "" {
		return io.Discard, noop, nil
	}

	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, noop, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, noop, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
