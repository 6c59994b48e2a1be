package main

import (
	"context"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/five82/cinefind/internal/app"
	"github.com/five82/cinefind/internal/logging"
	"github.com/five82/cinefind/internal/logtail"
	"github.com/five82/cinefind/internal/search"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "cinefind",
		Usage:     "Search TMDB movies and TV shows from the terminal",
		ArgsUsage: "[location]",
		Suggest:   true,
		Description: `Starts the interactive browser. A location such as
"index.html#/tv/batman/1" or "credits.html#/movie/550//Fight%20Club"
opens that view directly.

Examples:
  cinefind                                  # Start on the search form
  cinefind search --kind movie dune          # Print the first result page
  cinefind credits --kind movie 550 "Fight Club"
  cinefind open "#/tv/batman/2"              # Print any location`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file path (default ~/.config/cinefind/config.toml)",
			},
			&cli.StringFlag{
				Name:  "prefs",
				Usage: "preferences file path (default ~/.config/cinefind/prefs.toml)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return NewExitError(ExitUsageError, "expected at most one location", nil)
			}
			return app.Run(ctx, appOptions(cmd), cmd.Args().First())
		},
		Commands: []*cli.Command{
			openCommand(),
			searchCommand(),
			creditsCommand(),
			logsCommand(),
		},
	}
}

func printFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "width",
			Usage: "wrap width of the output",
			Value: 80,
		},
		&cli.BoolFlag{
			Name:  "images",
			Usage: "print poster and profile URLs",
		},
	}
}

func openCommand() *cli.Command {
	return &cli.Command{
		Name:      "open",
		Usage:     "Print the view of a location",
		ArgsUsage: "<location>",
		Flags:     printFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return NewExitError(ExitUsageError, "expected one location", nil)
			}
			return app.Print(ctx, appOptions(cmd), printOptions(cmd), cmd.Args().First())
		},
	}
}

func searchCommand() *cli.Command {
	flags := append(printFlags(),
		&cli.StringFlag{
			Name:    "kind",
			Aliases: []string{"k"},
			Usage:   "catalog to search: movie or tv",
			Value:   "tv",
		},
		&cli.IntFlag{
			Name:    "page",
			Aliases: []string{"p"},
			Usage:   "result page",
			Value:   1,
		},
	)
	return &cli.Command{
		Name:      "search",
		Usage:     "Print one result page for a keyword",
		ArgsUsage: "<keyword>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			kind, err := kindFlag(cmd)
			if err != nil {
				return err
			}
			keyword := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(keyword) == "" {
				return NewExitError(ExitUsageError, "expected a keyword", nil)
			}
			return app.Search(ctx, appOptions(cmd), printOptions(cmd), kind, keyword, cmd.Int("page"))
		},
	}
}

func creditsCommand() *cli.Command {
	flags := append(printFlags(),
		&cli.StringFlag{
			Name:    "kind",
			Aliases: []string{"k"},
			Usage:   "catalog of the title: movie or tv",
			Value:   "movie",
		},
	)
	return &cli.Command{
		Name:      "credits",
		Usage:     "Print cast and crew of a title",
		ArgsUsage: "<id> [title]",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			kind, err := kindFlag(cmd)
			if err != nil {
				return err
			}
			args := cmd.Args()
			if args.Len() < 1 || args.Len() > 2 {
				return NewExitError(ExitUsageError, "expected a title id and an optional title", nil)
			}
			return app.Credits(ctx, appOptions(cmd), printOptions(cmd), kind, args.Get(0), args.Get(1))
		},
	}
}

func logsCommand() *cli.Command {
	return &cli.Command{
		Name:  "logs",
		Usage: "Print the end of the cinefind log",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "lines",
				Aliases: []string{"n"},
				Usage:   "number of lines, 0 for all",
				Value:   50,
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "minimum level: debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  "request",
				Usage: "only records of this request id",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			filter := logtail.Filter{RequestID: strings.TrimSpace(cmd.String("request"))}
			if raw := cmd.String("level"); raw != "" {
				level, err := logging.ParseLevel(raw)
				if err != nil {
					return NewExitError(ExitUsageError, "invalid --level", err)
				}
				filter.MinLevel = level
				filter.HasLevel = true
			}
			return app.Logs(appOptions(cmd), os.Stdout, cmd.Int("lines"), filter)
		},
	}
}

func appOptions(cmd *cli.Command) app.Options {
	return app.Options{
		ConfigPath: cmd.String("config"),
		PrefsPath:  cmd.String("prefs"),
	}
}

func printOptions(cmd *cli.Command) app.PrintOptions {
	return app.PrintOptions{
		Out:        os.Stdout,
		Width:      cmd.Int("width"),
		ShowImages: cmd.Bool("images"),
	}
}

func kindFlag(cmd *cli.Command) (search.Kind, error) {
	kind, ok := search.ParseKind(cmd.String("kind"))
	if !ok {
		return search.KindUnset, NewExitError(ExitUsageError, "--kind must be movie or tv", nil)
	}
	return kind, nil
}
