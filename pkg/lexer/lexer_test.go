package lexer_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlpretty/pkg/lexer"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected []Token
	}{
		{
			name: "simple select",
			sql:  "select * from users where id >= 1",
			expected: []Token{
				{Kind: Keyword, Text: "SELECT"},
				{Kind: Whitespace, Text: " "},
				{Kind: Other, Text: "*"},
				{Kind: Whitespace, Text: " "},
				{Kind: Keyword, Text: "FROM"},
				{Kind: Whitespace, Text: " "},
				{Kind: Identifier, Text: "users"},
				{Kind: Whitespace, Text: " "},
				{Kind: Keyword, Text: "WHERE"},
				{Kind: Whitespace, Text: " "},
				{Kind: Identifier, Text: "id"},
				{Kind: Whitespace, Text: " "},
				{Kind: Operator, Text: ">="},
				{Kind: Whitespace, Text: " "},
				{Kind: Number, Text: "1"},
			},
		},
		{
			name: "punctuation",
			sql:  "count(a,b)",
			expected: []Token{
				{Kind: Identifier, Text: "count"},
				{Kind: ParenOpen, Text: "("},
				{Kind: Identifier, Text: "a"},
				{Kind: Comma, Text: ","},
				{Kind: Identifier, Text: "b"},
				{Kind: ParenClose, Text: ")"},
			},
		},
		{
			name: "two character operators",
			sql:  "a<>b!=c<=d",
			expected: []Token{
				{Kind: Identifier, Text: "a"},
				{Kind: Operator, Text: "<>"},
				{Kind: Identifier, Text: "b"},
				{Kind: Operator, Text: "!="},
				{Kind: Identifier, Text: "c"},
				{Kind: Operator, Text: "<="},
				{Kind: Identifier, Text: "d"},
			},
		},
		{
			name: "single character operators fall back to other",
			sql:  "a=b+1;",
			expected: []Token{
				{Kind: Identifier, Text: "a"},
				{Kind: Other, Text: "="},
				{Kind: Identifier, Text: "b"},
				{Kind: Other, Text: "+"},
				{Kind: Number, Text: "1"},
				{Kind: Other, Text: ";"},
			},
		},
		{
			name: "line comment stops before newline",
			sql:  "-- note\nx",
			expected: []Token{
				{Kind: Comment, Text: "-- note"},
				{Kind: Whitespace, Text: "\n"},
				{Kind: Identifier, Text: "x"},
			},
		},
		{
			name: "line comment at end of input",
			sql:  "x -- trailing",
			expected: []Token{
				{Kind: Identifier, Text: "x"},
				{Kind: Whitespace, Text: " "},
				{Kind: Comment, Text: "-- trailing"},
			},
		},
		{
			name: "block comment",
			sql:  "/* a\nb */x",
			expected: []Token{
				{Kind: Comment, Text: "/* a\nb */"},
				{Kind: Identifier, Text: "x"},
			},
		},
		{
			name: "unterminated block comment",
			sql:  "x /* never closed",
			expected: []Token{
				{Kind: Identifier, Text: "x"},
				{Kind: Whitespace, Text: " "},
				{Kind: Comment, Text: "/* never closed"},
			},
		},
		{
			name: "whitespace run is a single token",
			sql:  "a \t\n  b",
			expected: []Token{
				{Kind: Identifier, Text: "a"},
				{Kind: Whitespace, Text: " \t\n  "},
				{Kind: Identifier, Text: "b"},
			},
		},
		{
			name: "quoted literals",
			sql:  "'it''s' \"col\" `tbl`",
			expected: []Token{
				{Kind: StringLiteral, Text: "'it'"},
				{Kind: StringLiteral, Text: "'s'"},
				{Kind: Whitespace, Text: " "},
				{Kind: StringLiteral, Text: `"col"`},
				{Kind: Whitespace, Text: " "},
				{Kind: StringLiteral, Text: "`tbl`"},
			},
		},
		{
			name: "regex literal prefix",
			sql:  `regexp_extract(x, r'\d+')`,
			expected: []Token{
				{Kind: Identifier, Text: "regexp_extract"},
				{Kind: ParenOpen, Text: "("},
				{Kind: Identifier, Text: "x"},
				{Kind: Comma, Text: ","},
				{Kind: Whitespace, Text: " "},
				{Kind: StringLiteral, Text: `r'\d+'`},
				{Kind: ParenClose, Text: ")"},
			},
		},
		{
			name: "unterminated string",
			sql:  "where name = 'bob",
			expected: []Token{
				{Kind: Keyword, Text: "WHERE"},
				{Kind: Whitespace, Text: " "},
				{Kind: Identifier, Text: "name"},
				{Kind: Whitespace, Text: " "},
				{Kind: Other, Text: "="},
				{Kind: Whitespace, Text: " "},
				{Kind: StringLiteral, Text: "'bob"},
			},
		},
		{
			name: "numbers",
			sql:  "3.14 10 1.2.3",
			expected: []Token{
				{Kind: Number, Text: "3.14"},
				{Kind: Whitespace, Text: " "},
				{Kind: Number, Text: "10"},
				{Kind: Whitespace, Text: " "},
				{Kind: Number, Text: "1.2.3"},
			},
		},
		{
			name: "qualified names",
			sql:  "u.id",
			expected: []Token{
				{Kind: Identifier, Text: "u"},
				{Kind: Other, Text: "."},
				{Kind: Identifier, Text: "id"},
			},
		},
		{
			name: "identifiers keep their case",
			sql:  "MyTable _private col_1",
			expected: []Token{
				{Kind: Identifier, Text: "MyTable"},
				{Kind: Whitespace, Text: " "},
				{Kind: Identifier, Text: "_private"},
				{Kind: Whitespace, Text: " "},
				{Kind: Identifier, Text: "col_1"},
			},
		},
		{
			name: "stage reference",
			sql:  "@my_stage",
			expected: []Token{
				{Kind: Other, Text: "@"},
				{Kind: Identifier, Text: "my_stage"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Tokenize(tt.sql))
		})
	}
}

func TestTokenize_KeywordCase(t *testing.T) {
	for _, sql := range []string{"select", "Select", "SELECT", "sElEcT"} {
		tokens := Tokenize(sql)
		require.Equal(t, []Token{{Kind: Keyword, Text: "SELECT"}}, tokens, sql)
	}
}

func TestTokenize_Lossless(t *testing.T) {
	inputs := []string{
		"",
		"(",
		"'",
		"1 + 1",
		"select a, b from t where x = 'unterminated",
		"/* open comment",
		"-- only a comment",
		"SELECT COUNT(*) AS n FROM `db`.`t` WHERE a <> 1 AND b != 2 -- done\n;",
		"r\"raw\" r'raw' rows",
		"\x00\xff\xfe garbage é  ﻿",
		"\r\n\t\v\f",
		"@stage/path/file.csv",
		"héllo wörld",
	}

	for _, in := range inputs {
		tokens := Tokenize(in)
		out := Join(tokens)

		// Keywords come back upper-cased; everything else is verbatim.
		require.True(t, strings.EqualFold(in, out), "input %q produced %q", in, out)
		require.Len(t, out, len(in))

		for _, tok := range tokens {
			require.NotEmpty(t, tok.Text, "input %q produced an empty token", in)
		}
	}
}

func TestTokenize_LosslessWithoutKeywords(t *testing.T) {
	in := "foo(bar, 'baz') /* c */ -- d\n  qux <> 1.5 ~ \"x\""
	require.Equal(t, in, Join(Tokenize(in)))
}

func TestTokenize_Empty(t *testing.T) {
	require.Empty(t, Tokenize(""))
}

func TestLexer_CustomKeywords(t *testing.T) {
	lx := New(NewKeywords("flux_capacitor"))

	tokens := lx.Tokenize("flux_capacitor")
	require.Equal(t, []Token{{Kind: Keyword, Text: "FLUX_CAPACITOR"}}, tokens)

	// The default vocabulary is not affected.
	tokens = Tokenize("flux_capacitor")
	require.Equal(t, []Token{{Kind: Identifier, Text: "flux_capacitor"}}, tokens)
}

func TestTokenKind_String(t *testing.T) {
	require.Equal(t, "Keyword", Keyword.String())
	require.Equal(t, "StringLiteral", StringLiteral.String())
	require.Equal(t, "Other", Other.String())
	require.Equal(t, "TokenKind(42)", TokenKind(42).String())
}

func TestToken_Is(t *testing.T) {
	require.True(t, Token{Kind: Keyword, Text: "AND"}.Is("AND"))
	require.False(t, Token{Kind: Identifier, Text: "AND"}.Is("AND"))
	require.False(t, Token{Kind: Keyword, Text: "OR"}.Is("AND"))
}
