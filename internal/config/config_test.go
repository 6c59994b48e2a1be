package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/cinefind/internal/tmdb"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAccessToken, "")
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)

	assert.Equal(t, defaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, defaultImageBaseURL, cfg.ImageBaseURL)
	assert.Equal(t, defaultWindowSize, cfg.WindowSize)
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, uint(1), cfg.RetryAttempts)
	assert.Equal(t, filepath.Join(home, ".local/share/cinefind/cinefind.log"), cfg.LogFile)
	assert.False(t, cfg.CollapseEmptySlots)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingCredentials)
	assert.ErrorIs(t, cfg.Validate(), tmdb.ErrMissingCredentials)
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	path := writeConfig(t, `
api_key = "  abc123  "
api_base_url = " http://localhost:9000 "
language = "de-DE"
window_size = 7
request_timeout = "3s"
requests_per_second = 0
burst = 2
retry_attempts = 3
log_file = "  ~/logs/cf.log  "
log_level = " DEBUG "
collapse_empty_slots = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.APIKey)
	assert.Equal(t, "http://localhost:9000", cfg.APIBaseURL)
	assert.Equal(t, "de-DE", cfg.Language)
	assert.Equal(t, 7, cfg.WindowSize)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Zero(t, cfg.RequestsPerSecond)
	assert.Equal(t, 2, cfg.Burst)
	assert.Equal(t, uint(3), cfg.RetryAttempts)
	assert.True(t, strings.HasPrefix(cfg.LogFile, home), "LogFile %q should be under HOME", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.CollapseEmptySlots)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidValuesKeepDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
window_size = 0
burst = -1
retry_attempts = 0
api_base_url = "   "
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, defaultWindowSize, cfg.WindowSize)
	assert.Equal(t, defaultBurst, cfg.Burst)
	assert.Equal(t, uint(1), cfg.RetryAttempts)
	assert.Equal(t, defaultAPIBaseURL, cfg.APIBaseURL)
}

func TestLoad_EnvOverridesCredentials(t *testing.T) {
	t.Setenv(EnvAPIKey, " from-env ")
	t.Setenv(EnvAccessToken, "token-env")
	path := writeConfig(t, `api_key = "from-file"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "token-env", cfg.AccessToken)

	missing, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", missing.APIKey)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, `api_key = `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfig(t, `request_timeout = "soon"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request_timeout")
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/x/y.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x/y.toml"), got)

	_, err = expandPath("   ")
	assert.Error(t, err)
}
