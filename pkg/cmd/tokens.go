package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlpretty/pkg/consts"
	"github.com/pseudomuto/sqlpretty/pkg/format"
	"github.com/pseudomuto/sqlpretty/pkg/lexer"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// tokensCmd creates a CLI command that dumps the token stream of a SQL
// source, which is handy when a layout looks surprising.
//
// The text output prints one token per line as KIND<TAB>"text". The yaml
// output prints a list of {kind, text} mappings.
//
// Examples:
//
//	sqlpretty tokens query.sql
//	sqlpretty tokens --formatted --output yaml query.sql
//	echo "select 1" | sqlpretty tokens
func tokensCmd(fmtr *format.Formatter, fs afero.Fs) *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Print the token stream of a SQL source",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "formatted",
				Usage: "Print the tokens of the formatted output instead of the input",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format (text or yaml)",
				Value:   outputText,
				Validator: func(s string) error {
					if s != outputText && s != outputYAML {
						return errors.Errorf("unsupported output format: %s", s)
					}

					return nil
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("at most one path argument is allowed")
			}

			path := cmd.Args().First()
			if path == "" {
				path = consts.StdinPath
			}

			source, err := readPath(fs, cmd, path)
			if err != nil {
				return err
			}

			var tokens []lexer.Token
			if cmd.Bool("formatted") {
				tokens = fmtr.Format(source).Tokens
			} else {
				tokens = fmtr.Tokenize(source)
			}

			return writeTokens(stdout(cmd), tokens, cmd.String("output"))
		},
	}
}

func writeTokens(w io.Writer, tokens []lexer.Token, output string) error {
	if output == outputYAML {
		if tokens == nil {
			tokens = []lexer.Token{}
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(tokens); err != nil {
			return errors.Wrap(err, "failed to encode tokens")
		}

		return errors.Wrap(enc.Close(), "failed to encode tokens")
	}

	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", tok.Kind, strconv.Quote(tok.Text)); err != nil {
			return errors.Wrap(err, "failed to write tokens")
		}
	}

	return nil
}
