package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates the sqlpretty CLI application and schedules it to run once the
// fx application has started.
//
// Global Flags:
//   - --verbose, -v: Log debug output to stderr
//
// The command runs on its own goroutine so long running commands (watch)
// don't block fx startup. Stopping the fx application cancels the command's
// context. When the command returns, the application is shut down with an
// exit code of 0 on success and 1 on failure.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "sqlpretty",
		Usage: "A lexical SQL formatter",
		Description: `sqlpretty reformats SQL queries for readability. It splits queries into
tokens, lays clauses out on their own lines with consistent indentation and
leaves everything else as written. It understands common dialect
extensions (BigQuery, Snowflake, Spark/Hive, ClickHouse) without parsing.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			return ctx, nil
		},
		Commands: p.Commands,
	}

	ctx, cancel := context.WithCancel(p.Ctx)
	done := make(chan struct{})

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)

				code := 0
				if err := app.Run(ctx, p.Args); err != nil {
					slog.Error("Error running command", "err", err)
					code = 1
				}

				_ = p.Shutdowner.Shutdown(fx.ExitCode(code))
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()

			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
