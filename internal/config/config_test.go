package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/clickdash/internal/core"
)

// isolate points HOME at an empty directory and clears overrides so tests
// never read the developer's own config.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{EnvConfigPath, EnvRoundSeconds, EnvLogLevel, EnvSeed} {
		t.Setenv(k, "")
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30, cfg.Round.Seconds)
	assert.Equal(t, time.Second, cfg.Round.TickInterval)
	assert.Equal(t, "Your Name", cfg.Player.DefaultName)
	assert.Equal(t, core.Size{W: 100, H: 50}, cfg.Desktop.Target.Size())
	assert.Equal(t, core.Size{W: 560, H: 500}, cfg.Desktop.Fallback.Size())
	assert.Equal(t, 10, cfg.Desktop.Margin)
	assert.Equal(t, Dimensions{Width: 600, Height: 650}, cfg.Desktop.Window)
	assert.Equal(t, ":23234", cfg.Server.Address)
	assert.Equal(t, 30*time.Minute, cfg.Server.IdleTimeout)
}

func TestSessionConfig(t *testing.T) {
	cfg := Default()
	cfg.Seed = 77

	gc := cfg.Session(cfg.Desktop.Placement)
	assert.Equal(t, 30, gc.RoundSeconds)
	assert.Equal(t, time.Second, gc.TickInterval)
	assert.Equal(t, core.Size{W: 100, H: 50}, gc.Target)
	assert.Equal(t, 10, gc.Margin)
	assert.Equal(t, int64(77), gc.Seed)

	tc := cfg.Session(cfg.Terminal.Placement)
	assert.Equal(t, core.Size{W: 11, H: 3}, tc.Target)
	assert.Equal(t, 1, tc.Margin)
}

func TestLoadWithoutFilesUsesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPathLayersOverDefault(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "round:\n  seconds: 10\nplayer:\n  default_name: Ava\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Round.Seconds)
	assert.Equal(t, "Ava", cfg.Player.DefaultName)
	assert.Equal(t, time.Second, cfg.Round.TickInterval, "unset fields keep defaults")
	assert.Equal(t, 100, cfg.Desktop.Target.Width)
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".clickdash", "config.yaml"), "terminal:\n  margin: 2\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Terminal.Margin)
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "env.yaml")
	writeFile(t, path, "log:\n  level: debug\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvRoundSeconds, "45")
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.Round.Seconds)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing custom file", func(t *testing.T) {
		dir := isolate(t)
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.ErrorContains(t, err, "config: read")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "round: [unclosed\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "config: parse")
	})

	t.Run("bad env number", func(t *testing.T) {
		isolate(t)
		t.Setenv(EnvRoundSeconds, "thirty")
		_, err := Load("")
		assert.ErrorContains(t, err, EnvRoundSeconds)
	})

	t.Run("invalid values", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "zero.yaml")
		writeFile(t, path, "round:\n  seconds: 0\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "round.seconds")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero tick", func(c *Config) { c.Round.TickInterval = 0 }, "round.tick_interval"},
		{"zero target", func(c *Config) { c.Terminal.Target.Width = 0 }, "terminal.target"},
		{"negative margin", func(c *Config) { c.Desktop.Margin = -1 }, "desktop.margin"},
		{"unknown fallback", func(c *Config) { c.Desktop.Fallback = Dimensions{Width: 1, Height: 1} }, "desktop.fallback"},
		{"zero window", func(c *Config) { c.Desktop.Window.Height = 0 }, "desktop.window"},
		{"negative idle", func(c *Config) { c.Server.IdleTimeout = -time.Second }, "server.idle_timeout"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.want)
		})
	}
}

func TestMarshalIsLoadable(t *testing.T) {
	dir := isolate(t)
	cfg := Default()
	cfg.Round.Seconds = 12

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick_interval: 1s")

	path := filepath.Join(dir, "dump.yaml")
	writeFile(t, path, string(data))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)

	assert.Equal(t, filepath.Join(home, "x", "y.db"), ExpandHome("~/x/y.db"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "~user/path", ExpandHome("~user/path"))
	assert.Equal(t, filepath.Join(home, ".clickdash", "config.yaml"), UserPath("config.yaml"))
}

func TestReadLeavesValidationToCaller(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "loud.yaml")
	writeFile(t, path, "log:\n  level: loud\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "log level")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.Log.Level)

	cfg.Log.Level = "debug"
	require.NoError(t, cfg.Validate())
}
