package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/five82/cinefind/internal/config"
	"github.com/five82/cinefind/internal/location"
	"github.com/five82/cinefind/internal/logging"
	"github.com/five82/cinefind/internal/logtail"
	"github.com/five82/cinefind/internal/nav"
	"github.com/five82/cinefind/internal/prefs"
	"github.com/five82/cinefind/internal/render"
	"github.com/five82/cinefind/internal/search"
	"github.com/five82/cinefind/internal/tmdb"
	"github.com/five82/cinefind/internal/ui"
)

// Options configure the cinefind application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cinefind/prefs.toml
}

// PrintOptions configure the plain text commands.
type PrintOptions struct {
	Out        io.Writer
	Width      int
	ShowImages bool
}

// ConfigError marks failures caused by the config file or missing
// credentials.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// env holds everything built from the config file.
type env struct {
	cfg     config.Config
	logger  *slog.Logger
	closer  io.Closer
	catalog *tmdb.Client
	codec   location.Codec
}

func (e *env) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

func setup(opts Options) (*env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("load config: %w", err)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}

	logger, closer, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("init logging: %w", err)}
	}

	client, err := tmdb.NewClient(tmdb.Options{
		BaseURL:     cfg.APIBaseURL,
		APIKey:      cfg.APIKey,
		AccessToken: cfg.AccessToken,
		Language:    cfg.Language,
		Timeout:     cfg.RequestTimeout,
		RateLimit:   cfg.RequestsPerSecond,
		Burst:       cfg.Burst,
		Attempts:    cfg.RetryAttempts,
		Logger:      logger.With("component", "tmdb"),
	})
	if err != nil {
		_ = closer.Close()
		return nil, &ConfigError{Err: fmt.Errorf("init tmdb client: %w", err)}
	}

	return &env{
		cfg:     cfg,
		logger:  logger,
		closer:  closer,
		catalog: client,
		codec:   location.Codec{Collapse: cfg.CollapseEmptySlots},
	}, nil
}

// Run boots the cinefind TUI at start until the user quits or the context
// is cancelled.
func Run(ctx context.Context, opts Options, start string) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		e.logger.Warn("loading preferences failed, using defaults", "error", err)
	}

	e.logger.Info("starting ui", "start", start)
	return ui.Run(ui.Options{
		Context:    ctx,
		Catalog:    e.catalog,
		Codec:      e.codec,
		WindowSize: e.cfg.WindowSize,
		ImageBase:  e.cfg.ImageBaseURL,
		Logger:     e.logger,
		Start:      start,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
	})
}

// Print opens raw like the TUI would and writes the resulting view as plain
// text. A failed catalog request is returned as an error after it has been
// printed.
func Print(ctx context.Context, opts Options, out PrintOptions, raw string) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()
	return e.print(ctx, out, raw)
}

// Search prints one result page of keyword.
func Search(ctx context.Context, opts Options, out PrintOptions, kind search.Kind, keyword string, page int) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	loc := location.Build(e.codec, location.MainPage, kind.String(), keyword, strconv.Itoa(search.ClampPage(page)))
	return e.print(ctx, out, loc.String())
}

// Credits prints the cast and crew of the title with the given id.
func Credits(ctx context.Context, opts Options, out PrintOptions, kind search.Kind, id, title string) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	// The keyword slot is empty, so the title has to keep its position even
	// when the configured codec collapses empty slots.
	loc := location.Build(location.Codec{}, location.CreditsPage, kind.String(), id, "", title)
	return e.print(ctx, out, loc.String())
}

func (e *env) print(ctx context.Context, out PrintOptions, raw string) error {
	writer := render.NewWriter(out.Out, render.WriterOptions{
		Codec:      e.codec,
		ImageBase:  e.cfg.ImageBaseURL,
		Width:      out.Width,
		ShowImages: out.ShowImages,
	})
	session := nav.NewSession(nav.SessionOptions{
		Catalog:    e.catalog,
		Renderer:   writer,
		Codec:      e.codec,
		WindowSize: e.cfg.WindowSize,
		Logger:     e.logger.With("component", "cli"),
	})

	session.Await(ctx, session.Open(raw))

	if err := writer.Failure(); err != nil {
		return err
	}
	if err := writer.WriteErr(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Logs prints the last lines of the cinefind log that pass filter.
func Logs(opts Options, out io.Writer, lines int, filter logtail.Filter) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return &ConfigError{Err: fmt.Errorf("load config: %w", err)}
	}
	if cfg.LogFile == "" {
		return &ConfigError{Err: errors.New("no log_file configured")}
	}

	records, err := logtail.Read(cfg.LogFile, lines, filter)
	if err != nil {
		return err
	}
	for _, line := range records {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
