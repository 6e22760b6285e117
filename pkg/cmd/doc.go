// Package cmd provides CLI commands for the sqlpretty tool.
//
// # Available Commands
//
//   - fmt: Format SQL files, directories or stdin
//   - tokens: Dump the token stream of a SQL source
//   - watch: Reformat SQL files as they change
//
// # Command Structure
//
// Each command is implemented as a constructor returning a *cli.Command,
// following the urfave/cli/v3 pattern. Constructors receive their
// dependencies (configuration, formatter, filesystem) from fx and are
// collected into the "commands" group consumed by Run.
//
// # Global Options
//
//   - --verbose, -v: Log debug output to stderr
//   - --help, -h: Display command help
//   - --version: Display version information
//
// Configuration is read from .sqlpretty.yaml in the working directory, or
// from the file named by $SQLPRETTY_CONFIG.
//
// # Example Usage
//
//	sqlpretty fmt query.sql              # Print the formatted query
//	sqlpretty fmt -w models/             # Rewrite files in place
//	sqlpretty fmt --check models/        # Fail if anything is unformatted
//	cat query.sql | sqlpretty fmt --color
//	sqlpretty tokens --output yaml query.sql
//	sqlpretty watch models/
package cmd
