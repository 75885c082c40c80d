package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// APIURL is the base URL of the blog backend, including the /api prefix.
	APIURL string `env:"BLOG_API_URL" envDefault:"http://localhost:8000/api"`

	// SessionFile is the path of the SQLite database holding the persisted
	// session. Empty means the default under the user config directory.
	SessionFile string `env:"BLOG_SESSION_FILE"`

	// HTTPTimeout bounds every backend call.
	HTTPTimeout time.Duration `env:"BLOG_HTTP_TIMEOUT" envDefault:"30s"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"BLOG_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config directory: %w", err)
		}
		cfg.SessionFile = filepath.Join(dir, "blogctl", "session.db")
	} else {
		expanded, err := expandHome(cfg.SessionFile)
		if err != nil {
			return nil, fmt.Errorf("expand session file path: %w", err)
		}
		cfg.SessionFile = expanded
	}

	return cfg, nil
}

// expandHome replaces a leading ~ in path with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// SlogLevel maps the configured level name to a slog level, defaulting to
// info for unknown values.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
