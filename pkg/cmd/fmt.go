package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlpretty/pkg/config"
	"github.com/pseudomuto/sqlpretty/pkg/consts"
	"github.com/pseudomuto/sqlpretty/pkg/format"
	"github.com/pseudomuto/sqlpretty/pkg/highlight"
	"github.com/pseudomuto/sqlpretty/pkg/lexer"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

type (
	fmtOptions struct {
		write bool
		list  bool
		check bool
		color bool
		jobs  int
	}

	// formatted is the outcome of formatting a single source.
	formatted struct {
		path   string
		source string
		output string
		tokens []lexer.Token
	}
)

func (f formatted) changed() bool {
	return f.source != f.output
}

// fmtCmd creates a CLI command for formatting SQL files, in the spirit of
// gofmt.
//
// Path handling:
//   - No path or "-": read SQL from stdin and write the result to stdout
//   - File paths: format the file directly, whatever its extension
//   - Directory paths: recursively format files with a configured extension
//
// Output modes:
//   - default: formatted SQL is written to stdout
//   - -w: changed files are rewritten in place
//   - -l: names of files whose formatting differs are printed
//   - --check: like -l, but the command fails when any file differs
//
// Files are formatted concurrently (bounded by --jobs) and reported in
// the order they were given.
//
// Examples:
//
//	# Format a file to stdout with syntax highlighting
//	sqlpretty fmt --color query.sql
//
//	# Rewrite every .sql file under models/
//	sqlpretty fmt -w models/
//
//	# Fail CI when anything is unformatted
//	sqlpretty fmt --check models/
//
//	# Pipe through
//	cat query.sql | sqlpretty fmt
func fmtCmd(cfg *config.Config, fmtr *format.Formatter, fs afero.Fs) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "[path ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Exit with an error when any file is not formatted",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Highlight the formatted output",
			},
			&cli.IntFlag{
				Name:        "jobs",
				Aliases:     []string{"j"},
				Usage:       "Number of files formatted concurrently",
				Value:       cfg.Jobs,
				DefaultText: "Number of CPUs",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := fmtOptions{
				write: cmd.Bool("write"),
				list:  cmd.Bool("list"),
				check: cmd.Bool("check"),
				color: cmd.Bool("color"),
				jobs:  cmd.Int("jobs"),
			}

			sources, err := expandPaths(fs, cfg, cmd.Args().Slice())
			if err != nil {
				return err
			}

			if opts.write && slices.Contains(sources, consts.StdinPath) {
				return errors.New("cannot use -w with stdin")
			}

			results, err := formatSources(ctx, fs, cmd, fmtr, sources, opts.jobs)
			if err != nil {
				return err
			}

			return report(fs, stdout(cmd), results, opts)
		},
	}
}

// formatSources formats every source concurrently, returning the results in
// source order.
func formatSources(
	ctx context.Context,
	fs afero.Fs,
	cmd *cli.Command,
	fmtr *format.Formatter,
	sources []string,
	jobs int,
) ([]formatted, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]formatted, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			source, err := readPath(fs, cmd, path)
			if err != nil {
				return err
			}

			result := fmtr.Format(source)
			results[i] = formatted{
				path:   path,
				source: source,
				output: renderFile(result.Text),
				tokens: result.Tokens,
			}

			slog.Debug("Formatted source", "path", path, "changed", results[i].changed())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func report(fs afero.Fs, w io.Writer, results []formatted, opts fmtOptions) error {
	var unformatted int

	for _, r := range results {
		if !r.changed() {
			continue
		}

		unformatted++

		if opts.list || opts.check {
			if _, err := fmt.Fprintln(w, r.path); err != nil {
				return errors.Wrap(err, "failed to write file list")
			}
		}

		if opts.write {
			if err := afero.WriteFile(fs, r.path, []byte(r.output), consts.ModeFile); err != nil {
				return errors.Wrapf(err, "failed to write formatted content to file: %s", r.path)
			}

			slog.Debug("Wrote formatted file", "path", r.path)
		}
	}

	if !opts.write && !opts.list && !opts.check {
		// --color is explicit, so escape sequences are emitted even when w
		// is a pipe or a file.
		h := highlight.New(highlight.DefaultTheme(highlight.NewRenderer(w, true)))

		for _, r := range results {
			out := r.output
			if opts.color {
				out = renderFile(h.Render(r.tokens))
			}

			if _, err := fmt.Fprint(w, out); err != nil {
				return errors.Wrap(err, "failed to write formatted content to output")
			}
		}
	}

	if opts.check && unformatted > 0 {
		return errors.Errorf("%d file(s) not formatted", unformatted)
	}

	return nil
}
