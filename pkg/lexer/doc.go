// Package lexer turns raw SQL text into a flat sequence of classified tokens.
//
// The lexer is deliberately forgiving: it accepts any string, including
// malformed SQL and binary garbage, and never returns an error. Unterminated
// quoted literals and block comments simply run to the end of the input.
// Every character of the input ends up in exactly one token, so the token
// stream can be used to re-render (or syntax highlight) the original text.
//
// Words are looked up in a Keywords vocabulary. Recognized words become
// Keyword tokens carrying their upper-case canonical spelling; everything
// else keeps its original case. The vocabulary also records which keywords
// open a new clause (block keywords), which clauses continue on an indented
// line, and which adjacent keyword pairs fuse into a phrase such as
// GROUP BY or LEFT JOIN. Those sets are consumed by the format package.
//
// Usage:
//
//	tokens := lexer.Tokenize("select id from users")
//	for _, tok := range tokens {
//		fmt.Println(tok.Kind, tok.Text)
//	}
//
//	// Custom vocabulary
//	lx := lexer.New(lexer.NewKeywords("MY_KEYWORD"))
//	tokens = lx.Tokenize("select my_keyword from t")
package lexer
