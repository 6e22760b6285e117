package format

import (
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlpretty/pkg/lexer"
)

// DefaultIndentSize is the number of spaces per indent level.
const DefaultIndentSize = 2

type (
	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// IndentSize specifies the number of spaces for each indent level
		IndentSize int
		// Keywords is the vocabulary used for lexing and layout (nil = default)
		Keywords *lexer.Keywords
	}

	// Formatter lays out SQL text with configurable options. A Formatter is
	// immutable and safe for concurrent use.
	Formatter struct {
		options FormatterOptions
		lexer   *lexer.Lexer
	}

	// Result is the output of a format run.
	Result struct {
		// Text is the pretty-printed SQL.
		Text string
		// Tokens is the lexing of Text (not of the input), suitable for
		// highlighting the formatted output.
		Tokens []lexer.Token
	}
)

// Defaults are the standard formatting options.
var Defaults = FormatterOptions{
	IndentSize: DefaultIndentSize,
}

// New creates a new Formatter with the specified options.
func New(options FormatterOptions) *Formatter {
	if options.IndentSize <= 0 {
		options.IndentSize = DefaultIndentSize
	}

	if options.Keywords == nil {
		options.Keywords = lexer.DefaultKeywords()
	}

	return &Formatter{
		options: options,
		lexer:   lexer.New(options.Keywords),
	}
}

// Options returns the options the formatter was built with.
func (f *Formatter) Options() FormatterOptions {
	return f.options
}

// Tokenize lexes sql with the formatter's vocabulary.
func (f *Formatter) Tokenize(sql string) []lexer.Token {
	return f.lexer.Tokenize(sql)
}

// Format pretty-prints sql. It accepts any input and never fails; the worst
// case for non-SQL text is an awkward but well-formed layout.
func (f *Formatter) Format(sql string) Result {
	if sql == "" {
		return Result{}
	}

	text := cleanup(f.layout(f.lexer.Tokenize(sql)).String())

	return Result{
		Text:   text,
		Tokens: f.lexer.Tokenize(text),
	}
}

// FormatTo writes the formatted form of sql to w.
func (f *Formatter) FormatTo(w io.Writer, sql string) error {
	if _, err := io.WriteString(w, f.Format(sql).Text); err != nil {
		return errors.Wrap(err, "failed to write formatted SQL")
	}

	return nil
}

// Format writes sql formatted with the given options to w.
func Format(w io.Writer, opts FormatterOptions, sql string) error {
	return New(opts).FormatTo(w, sql)
}

// SQL formats sql with the default options.
func SQL(sql string) Result {
	return New(Defaults).Format(sql)
}
