package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigPath   = "CLICKDASH_CONFIG"
	EnvRoundSeconds = "CLICKDASH_ROUND_SECONDS"
	EnvLogLevel     = "CLICKDASH_LOG_LEVEL"
	EnvSeed         = "CLICKDASH_SEED"
)

// Load builds the configuration with Read and validates it.
func Load(customPath string) (Config, error) {
	cfg, err := Read(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Read builds the configuration without validating it, so callers can
// apply their own overrides first.
// Search order: customPath -> $CLICKDASH_CONFIG -> ~/.clickdash/config.yaml ->
// ./configs/clickdash.yaml -> embedded default. The file found is layered
// over the embedded default, so it only needs the fields it changes.
// A .env file in the working directory is loaded first if present, and
// CLICKDASH_* variables override file values.
func Read(customPath string) (Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := Default()

	path := customPath
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		data, err := os.ReadFile(ExpandHome(path))
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	} else {
		for _, candidate := range []string{UserPath("config.yaml"), filepath.Join("configs", "clickdash.yaml")} {
			if candidate == "" {
				continue
			}
			found, err := loadOptional(candidate, &cfg)
			if err != nil {
				return cfg, err
			}
			if found {
				break
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadOptional merges path into cfg. A missing file is not an error.
func loadOptional(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return false, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return true, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvRoundSeconds)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvRoundSeconds, err)
		}
		cfg.Round.Seconds = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvSeed)); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		cfg.Seed = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// UserPath returns a path inside ~/.clickdash, or empty if home is unavailable.
func UserPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clickdash", name)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
