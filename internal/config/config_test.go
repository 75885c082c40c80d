package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrateekLewis/blog-application/internal/config"
)

// unsetEnv removes a variable for the test's duration, restoring it after.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "BLOG_API_URL")
	unsetEnv(t, "BLOG_HTTP_TIMEOUT")
	unsetEnv(t, "BLOG_LOG_LEVEL")
	t.Setenv("BLOG_SESSION_FILE", "/tmp/blogctl-test/session.db")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BLOG_API_URL", "https://blog.example.com/api")
	t.Setenv("BLOG_SESSION_FILE", "/tmp/blogctl-test/session.db")
	t.Setenv("BLOG_HTTP_TIMEOUT", "5s")
	t.Setenv("BLOG_LOG_LEVEL", "debug")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "https://blog.example.com/api", cfg.APIURL)
	assert.Equal(t, "/tmp/blogctl-test/session.db", cfg.SessionFile)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_ExpandsTildeInSessionFile(t *testing.T) {
	t.Setenv("BLOG_SESSION_FILE", "~/blogctl/session.db")

	cfg, err := config.Load()

	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "blogctl", "session.db"), cfg.SessionFile)
}

func TestSlogLevel_UnknownFallsBackToInfo(t *testing.T) {
	cfg := &config.Config{LogLevel: "verbose"}

	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
