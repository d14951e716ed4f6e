// clickdash is a reflex game: click the target as many times as you can
// before the 30 second countdown runs out, then sign your score.
//
// Usage:
//
//	clickdash play      - Play in the terminal (mouse required)
//	clickdash desktop   - Play in a desktop window
//	clickdash serve     - Start SSH server for remote play
//	clickdash config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.clickdash/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible target placement
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/clickdash/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clickdash",
	Short: "Click Dash - a 30 second click-the-target reflex game",
	Long: `Click Dash puts a target somewhere in the play area. Click it to score
a point and it jumps somewhere else. When the 30 second countdown runs out,
enter your name and your record is saved as "name | score".

Available commands:
  play     - Play in the terminal
  desktop  - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  clickdash play
  clickdash play --seed 42
  clickdash desktop
  clickdash serve --ssh :2222
  clickdash config --default > ~/.clickdash/config.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration, applies global flag overrides and
// then validates the result.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Read(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger creates the structured logger every command writes through.
func newLogger(w io.Writer, cfg config.Config, prefix string) *log.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}
