package format

import (
	"strings"

	"github.com/pseudomuto/sqlpretty/pkg/lexer"
)

// builder accumulates the formatted token sequence. Spacing is represented
// by Whitespace tokens so separators can be inspected and undone without
// touching the rendered text.
type builder struct {
	tokens []lexer.Token
	indent string
	level  int
}

func newBuilder(capacity, indentSize int) *builder {
	return &builder{
		tokens: make([]lexer.Token, 0, capacity),
		indent: strings.Repeat(" ", indentSize),
	}
}

func (b *builder) emit(kind lexer.TokenKind, text string) {
	b.tokens = append(b.tokens, lexer.Token{Kind: kind, Text: text})
}

// space appends a single separating space.
func (b *builder) space() {
	b.emit(lexer.Whitespace, " ")
}

// newline starts a new line at the current indent level. A newline emitted
// directly after another one replaces it, so at most one line break
// separates two tokens.
func (b *builder) newline() {
	text := "\n" + strings.Repeat(b.indent, b.level)

	if n := len(b.tokens); n > 0 && isNewline(b.tokens[n-1]) {
		b.tokens[n-1].Text = text
		return
	}

	b.emit(lexer.Whitespace, text)
}

// popTrailingComma drops a comma that ends the sequence, looking through at
// most one whitespace token. The whitespace itself is kept.
func (b *builder) popTrailingComma() {
	i := len(b.tokens) - 1
	if i >= 0 && b.tokens[i].Kind == lexer.Whitespace {
		i--
	}

	if i < 0 || b.tokens[i].Kind != lexer.Comma {
		return
	}

	b.tokens = append(b.tokens[:i], b.tokens[i+1:]...)
}

// last returns the most recently emitted token.
func (b *builder) last() (lexer.Token, bool) {
	if len(b.tokens) == 0 {
		return lexer.Token{}, false
	}

	return b.tokens[len(b.tokens)-1], true
}

// lastSolid returns the most recently emitted non-whitespace token.
func (b *builder) lastSolid() (lexer.Token, bool) {
	for i := len(b.tokens) - 1; i >= 0; i-- {
		if b.tokens[i].Kind != lexer.Whitespace {
			return b.tokens[i], true
		}
	}

	return lexer.Token{}, false
}

func (b *builder) indentIn() {
	b.level++
}

func (b *builder) indentOut() {
	if b.level > 0 {
		b.level--
	}
}

func (b *builder) String() string {
	return lexer.Join(b.tokens)
}

func isNewline(t lexer.Token) bool {
	return t.Kind == lexer.Whitespace && strings.HasPrefix(t.Text, "\n")
}

// layout walks the lexer output once and re-emits it with synthesized
// spacing. The input slice is never modified.
func (f *Formatter) layout(tokens []lexer.Token) *builder {
	kw := f.lexer.Keywords()
	b := newBuilder(len(tokens)*2, f.options.IndentSize)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Kind {
		case lexer.Whitespace:
			// Input spacing is never copied; the rules below synthesize it.

		case lexer.Keyword:
			phrase, next := fusePhrase(kw, tokens, i)

			switch {
			case kw.IsBlock(phrase):
				i = next
				b.popTrailingComma()
				b.level = 0
				b.newline()
				b.emit(lexer.Keyword, phrase)
				b.space()

				if kw.IndentsAfter(phrase) {
					b.level = 1
					b.newline()
				}
			case tok.Is("AND") || tok.Is("OR"):
				b.newline()
				b.emit(lexer.Keyword, tok.Text)
				b.space()
			default:
				b.emit(lexer.Keyword, tok.Text)
				b.space()
			}

		case lexer.Comment:
			b.newline()
			b.emit(lexer.Comment, tok.Text)
			b.newline()

		case lexer.Comma:
			b.emit(lexer.Comma, tok.Text)
			b.newline()

		case lexer.ParenOpen:
			// NB: this also spaces function calls, e.g. COUNT (*). Existing
			// golden output depends on it.
			if prev, ok := b.lastSolid(); ok && (prev.Kind == lexer.Identifier || prev.Kind == lexer.Keyword) {
				if last, _ := b.last(); last.Kind != lexer.Whitespace {
					b.space()
				}
			}

			b.indentIn()
			b.emit(lexer.ParenOpen, tok.Text)

		case lexer.ParenClose:
			b.indentOut()
			b.emit(lexer.ParenClose, tok.Text)
			b.space()

		default:
			b.emit(tok.Kind, tok.Text)
			b.space()
		}
	}

	return b
}

// fusePhrase returns the keyword phrase starting at tokens[i] along with the
// index of its last token. Two keywords fuse only when they are adjacent or
// separated by exactly one whitespace token.
func fusePhrase(kw *lexer.Keywords, tokens []lexer.Token, i int) (string, int) {
	j := i + 1
	if j < len(tokens) && tokens[j].Kind == lexer.Whitespace {
		j++
	}

	if j < len(tokens) && tokens[j].Kind == lexer.Keyword {
		if phrase, ok := kw.Phrase(tokens[i].Text, tokens[j].Text); ok {
			return phrase, j
		}
	}

	return tokens[i].Text, i
}
