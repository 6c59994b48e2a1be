package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/cinefind/internal/tmdb"
)

// ErrMissingCredentials means neither an API key nor an access token was
// found in the config file or the environment. It wraps
// tmdb.ErrMissingCredentials so callers can test for either.
var ErrMissingCredentials = fmt.Errorf("%w: set api_key or access_token, or %s / %s",
	tmdb.ErrMissingCredentials, EnvAPIKey, EnvAccessToken)

// Environment variables that override the config file.
const (
	EnvAPIKey      = "TMDB_API_KEY"
	EnvAccessToken = "TMDB_ACCESS_TOKEN"
)

// Config holds everything cinefind reads from config.toml.
type Config struct {
	APIKey             string
	AccessToken        string
	APIBaseURL         string
	ImageBaseURL       string
	Language           string
	WindowSize         int
	RequestTimeout     time.Duration
	RequestsPerSecond  float64
	Burst              int
	RetryAttempts      uint
	LogFile            string
	LogLevel           string
	CollapseEmptySlots bool
}

const (
	defaultConfigPath     = "~/.config/cinefind/config.toml"
	defaultLogFile        = "~/.local/share/cinefind/cinefind.log"
	defaultAPIBaseURL     = "https://api.themoviedb.org"
	defaultImageBaseURL   = "https://image.tmdb.org/t/p"
	defaultLanguage       = "en-US"
	defaultWindowSize     = 5
	defaultRequestTimeout = 10 * time.Second
	defaultRPS            = 20
	defaultBurst          = 5
	defaultLogLevel       = "info"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		APIBaseURL:        defaultAPIBaseURL,
		ImageBaseURL:      defaultImageBaseURL,
		Language:          defaultLanguage,
		WindowSize:        defaultWindowSize,
		RequestTimeout:    defaultRequestTimeout,
		RequestsPerSecond: defaultRPS,
		Burst:             defaultBurst,
		RetryAttempts:     1,
		LogFile:           mustExpand(defaultLogFile),
		LogLevel:          defaultLogLevel,
	}
}

type rawConfig struct {
	APIKey             string   `toml:"api_key"`
	AccessToken        string   `toml:"access_token"`
	APIBaseURL         string   `toml:"api_base_url"`
	ImageBaseURL       string   `toml:"image_base_url"`
	Language           string   `toml:"language"`
	WindowSize         *int     `toml:"window_size"`
	RequestTimeout     string   `toml:"request_timeout"`
	RequestsPerSecond  *float64 `toml:"requests_per_second"`
	Burst              *int     `toml:"burst"`
	RetryAttempts      *int     `toml:"retry_attempts"`
	LogFile            string   `toml:"log_file"`
	LogLevel           string   `toml:"log_level"`
	CollapseEmptySlots bool     `toml:"collapse_empty_slots"`
}

// Load parses the config at path, falling back to defaults when the file is
// missing. Environment credentials take precedence over the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := raw.apply(&cfg); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func (raw rawConfig) apply(cfg *Config) error {
	cfg.APIKey = strings.TrimSpace(raw.APIKey)
	cfg.AccessToken = strings.TrimSpace(raw.AccessToken)
	cfg.CollapseEmptySlots = raw.CollapseEmptySlots

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(raw.ImageBaseURL); v != "" {
		cfg.ImageBaseURL = v
	}
	if v := strings.TrimSpace(raw.Language); v != "" {
		cfg.Language = v
	}
	if raw.WindowSize != nil && *raw.WindowSize > 0 {
		cfg.WindowSize = *raw.WindowSize
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		if d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if raw.RequestsPerSecond != nil && *raw.RequestsPerSecond >= 0 {
		cfg.RequestsPerSecond = *raw.RequestsPerSecond
	}
	if raw.Burst != nil && *raw.Burst > 0 {
		cfg.Burst = *raw.Burst
	}
	if raw.RetryAttempts != nil && *raw.RetryAttempts > 0 {
		cfg.RetryAttempts = uint(*raw.RetryAttempts)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAccessToken)); v != "" {
		cfg.AccessToken = v
	}
}

// Validate reports missing credentials.
func (c Config) Validate() error {
	if c.APIKey == "" && c.AccessToken == "" {
		return ErrMissingCredentials
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
