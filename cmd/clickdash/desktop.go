package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clickdash/internal/game"
	"github.com/vovakirdan/clickdash/internal/platform/desktop"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a desktop window",
	Long: `Open Click Dash in a 600x650 window (see the desktop section of the config).

Controls:
  Left click  - Start the round, hit the target, submit your name
  Enter       - Submit your name
  Backspace   - Delete the last letter of your name
  Esc         - Quit (outside the name prompt)

Saved records are printed to stdout as "SAVED: name | score".`,
	Args: cobra.NoArgs,
	Run:  runDesktop,
}

func runDesktop(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg, "clickdash")

	err = desktop.Run(desktop.Options{
		Config: cfg,
		Sink:   game.MultiSink{game.WriterSink{W: os.Stdout}, game.LogSink{Logger: logger}},
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
