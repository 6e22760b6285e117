// Package highlight renders lexer tokens with terminal colors.
package highlight

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pseudomuto/sqlpretty/pkg/lexer"
)

// Theme maps token kinds to styles. Kinds without a style render as-is.
type Theme map[lexer.TokenKind]lipgloss.Style

// NewRenderer returns a renderer for output written to w. The color profile
// is detected from w unless force is set, in which case 256-color escape
// sequences are always emitted (pipes, files, tests).
func NewRenderer(w io.Writer, force bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.ANSI256)
	}

	return r
}

// DefaultTheme returns the built-in dark palette bound to r. A nil renderer
// means lipgloss's default renderer, which inspects stdout.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return Theme{
		lexer.Keyword: base.
			Foreground(lipgloss.Color("#FF79C6")).
			Bold(true),
		lexer.StringLiteral: base.
			Foreground(lipgloss.Color("#F1FA8C")),
		lexer.Number: base.
			Foreground(lipgloss.Color("#BD93F9")),
		lexer.Operator: base.
			Foreground(lipgloss.Color("#FFB86C")),
		lexer.Comment: base.
			Foreground(lipgloss.Color("#6272A4")).
			Italic(true),
	}
}

// Highlighter renders token streams using a Theme.
type Highlighter struct {
	theme Theme
}

// New creates a Highlighter. A nil theme means DefaultTheme(nil).
func New(theme Theme) *Highlighter {
	if theme == nil {
		theme = DefaultTheme(nil)
	}

	return &Highlighter{theme: theme}
}

// Render returns the concatenated token text with styles applied. Stripping
// the escape sequences from the result yields exactly lexer.Join(tokens).
func (h *Highlighter) Render(tokens []lexer.Token) string {
	var sb strings.Builder

	for _, tok := range tokens {
		style, ok := h.theme[tok.Kind]
		if !ok || tok.Kind == lexer.Whitespace {
			sb.WriteString(tok.Text)
			continue
		}

		// lipgloss pads multi-line blocks to a common width, so style each
		// line of a token separately.
		for i, line := range strings.Split(tok.Text, "\n") {
			if i > 0 {
				sb.WriteByte('\n')
			}

			if line != "" {
				sb.WriteString(style.Render(line))
			}
		}
	}

	return sb.String()
}
