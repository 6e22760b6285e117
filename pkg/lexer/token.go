package lexer

import "fmt"

// TokenKind classifies a lexed Token.
type TokenKind int

const (
	Keyword TokenKind = iota
	Identifier
	Operator
	StringLiteral
	Number
	Whitespace
	Comma
	ParenOpen
	ParenClose
	Comment
	Other
)

var kindNames = [...]string{
	Keyword:       "Keyword",
	Identifier:    "Identifier",
	Operator:      "Operator",
	StringLiteral: "StringLiteral",
	Number:        "Number",
	Whitespace:    "Whitespace",
	Comma:         "Comma",
	ParenOpen:     "ParenOpen",
	ParenClose:    "ParenClose",
	Comment:       "Comment",
	Other:         "Other",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// MarshalText renders the kind by name so token dumps stay readable.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is the atomic unit produced by the lexer.
//
// Text holds the exact source substring, except for Keyword tokens where it
// holds the upper-case canonical form of the word.
type Token struct {
	Kind TokenKind `yaml:"kind"`
	Text string    `yaml:"text"`
}

// Is reports whether t is a Keyword token spelling kw (canonical case).
func (t Token) Is(kw string) bool {
	return t.Kind == Keyword && t.Text == kw
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
