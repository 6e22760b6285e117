package format

import (
	"testing"

	"github.com/pseudomuto/sqlpretty/pkg/lexer"
	"github.com/stretchr/testify/require"
)

func TestBuilder_NewlineMerges(t *testing.T) {
	b := newBuilder(0, 2)
	b.emit(lexer.Identifier, "a")
	b.level = 1
	b.newline()
	b.level = 0
	b.newline()

	require.Equal(t, "a\n", b.String())
	require.Len(t, b.tokens, 2)
}

func TestBuilder_PopTrailingComma(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []lexer.Token
		expected string
	}{
		{
			name: "comma then whitespace",
			tokens: []lexer.Token{
				{Kind: lexer.Identifier, Text: "a"},
				{Kind: lexer.Comma, Text: ","},
				{Kind: lexer.Whitespace, Text: "\n  "},
			},
			expected: "a\n  ",
		},
		{
			name: "bare comma",
			tokens: []lexer.Token{
				{Kind: lexer.Identifier, Text: "a"},
				{Kind: lexer.Comma, Text: ","},
			},
			expected: "a",
		},
		{
			name: "only one whitespace token is skipped",
			tokens: []lexer.Token{
				{Kind: lexer.Comma, Text: ","},
				{Kind: lexer.Whitespace, Text: " "},
				{Kind: lexer.Whitespace, Text: " "},
			},
			expected: ",  ",
		},
		{
			name: "no comma",
			tokens: []lexer.Token{
				{Kind: lexer.Identifier, Text: "a"},
				{Kind: lexer.Whitespace, Text: " "},
			},
			expected: "a ",
		},
		{
			name:     "empty",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder(0, 2)
			b.tokens = append(b.tokens, tt.tokens...)
			b.popTrailingComma()
			require.Equal(t, tt.expected, b.String())
		})
	}
}

func TestBuilder_IndentFloor(t *testing.T) {
	b := newBuilder(0, 2)
	b.indentOut()
	b.indentOut()
	require.Equal(t, 0, b.level)

	b.indentIn()
	b.indentIn()
	b.indentOut()
	require.Equal(t, 1, b.level)
}

func TestBuilder_LastSolid(t *testing.T) {
	b := newBuilder(0, 2)
	_, ok := b.lastSolid()
	require.False(t, ok)

	b.emit(lexer.Keyword, "IN")
	b.space()
	tok, ok := b.lastSolid()
	require.True(t, ok)
	require.Equal(t, lexer.Token{Kind: lexer.Keyword, Text: "IN"}, tok)
}

func TestFusePhrase(t *testing.T) {
	kw := lexer.DefaultKeywords()

	tokens := lexer.Tokenize("order by x")
	phrase, next := fusePhrase(kw, tokens, 0)
	require.Equal(t, "ORDER BY", phrase)
	require.Equal(t, 2, next)

	tokens = lexer.Tokenize("left  \n outer join")
	phrase, next = fusePhrase(kw, tokens, 0)
	require.Equal(t, "LEFT", phrase)
	require.Equal(t, 0, next)

	tokens = lexer.Tokenize("group")
	phrase, next = fusePhrase(kw, tokens, 0)
	require.Equal(t, "GROUP", phrase)
	require.Equal(t, 0, next)
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"  a  ", "a"},
		{"a  \t\nb", "a\nb"},
		{"a\n \n\nb", "a\nb"},
		{"t . col", "t.col"},
		{"a , b", "a, b"},
		{"f ( x )", "f (x)"},
		{"FROM @ stage", "FROM @stage"},
		{"FROM @stage ;", "FROM @stage;"},
		{"x ;", "x;"},
		{"a as b order by c asc, d desc", "a AS b order by c ASC, d DESC"},
		{"alias basket", "alias basket"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.out, cleanup(tt.in), tt.in)
	}
}
