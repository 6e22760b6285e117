package lexer

import (
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

var (
	// sqlLexer scans SQL text into raw tokens. Rules are tried in order and
	// the first match wins, so two-character operators must precede the
	// single-character fallback and quoted literals must precede words
	// (for the r'...' prefix). The final rule matches any character, which
	// keeps the scanner total.
	sqlLexer = plexer.MustSimple([]plexer.SimpleRule{
		{Name: "Operator", Pattern: `>=|<=|<>|!=`},
		{Name: "Comment", Pattern: `--[^\r\n]*|/\*(?s:.*?)(?:\*/|$)`},
		{Name: "Whitespace", Pattern: `[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]+`},
		{Name: "Comma", Pattern: `,`},
		{Name: "ParenOpen", Pattern: `\(`},
		{Name: "ParenClose", Pattern: `\)`},
		{Name: "String", Pattern: "r?'[^']*'?|r?\"[^\"]*\"?|`[^`]*`?"},
		{Name: "Number", Pattern: `[0-9][0-9.]*`},
		{Name: "Word", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Other", Pattern: `(?s:.)`},
	})

	kindsByType = func() map[plexer.TokenType]TokenKind {
		names := map[string]TokenKind{
			"Operator":   Operator,
			"Comment":    Comment,
			"Whitespace": Whitespace,
			"Comma":      Comma,
			"ParenOpen":  ParenOpen,
			"ParenClose": ParenClose,
			"String":     StringLiteral,
			"Number":     Number,
			"Word":       Identifier,
			"Other":      Other,
		}

		kinds := make(map[plexer.TokenType]TokenKind, len(names))
		for name, typ := range sqlLexer.Symbols() {
			if kind, ok := names[name]; ok {
				kinds[typ] = kind
			}
		}

		return kinds
	}()
)

// Lexer classifies SQL text into tokens using a fixed keyword vocabulary.
// A Lexer is immutable and safe for concurrent use.
type Lexer struct {
	keywords *Keywords
}

// New returns a Lexer recognizing the given vocabulary. A nil vocabulary
// means DefaultKeywords().
func New(keywords *Keywords) *Lexer {
	if keywords == nil {
		keywords = DefaultKeywords()
	}

	return &Lexer{keywords: keywords}
}

// Keywords returns the vocabulary used by the lexer.
func (l *Lexer) Keywords() *Keywords {
	return l.keywords
}

// Tokenize splits sql into classified tokens in source order. It never fails:
// unterminated strings and comments run to the end of input, and anything
// unrecognized becomes an Other token.
//
// Concatenating the Text of the returned tokens reproduces sql, except that
// keywords come back upper-cased.
func (l *Lexer) Tokenize(sql string) []Token {
	if sql == "" {
		return nil
	}

	tokens := make([]Token, 0, len(sql)/3+1)

	lex, err := sqlLexer.LexString("", sql)
	if err != nil {
		return append(tokens, Token{Kind: Other, Text: sql})
	}

	consumed := 0
	for {
		tok, err := lex.Next()
		if err != nil {
			if consumed < len(sql) {
				tokens = append(tokens, Token{Kind: Other, Text: sql[consumed:]})
			}
			break
		}

		if tok.EOF() {
			break
		}

		consumed += len(tok.Value)
		tokens = append(tokens, l.classify(tok))
	}

	return tokens
}

func (l *Lexer) classify(tok plexer.Token) Token {
	kind, ok := kindsByType[tok.Type]
	if !ok {
		kind = Other
	}

	if kind == Identifier {
		if upper := strings.ToUpper(tok.Value); l.keywords.Has(upper) {
			return Token{Kind: Keyword, Text: upper}
		}
	}

	return Token{Kind: kind, Text: tok.Value}
}

// Tokenize splits sql into tokens using the default vocabulary.
func Tokenize(sql string) []Token {
	return New(nil).Tokenize(sql)
}

// Join concatenates the text of tokens.
func Join(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Text)
	}

	return sb.String()
}
