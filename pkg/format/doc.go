// Package format pretty-prints SQL text.
//
// The formatter works on the flat token stream produced by the lexer
// package rather than on a parse tree. It walks the tokens once and
// re-emits them with synthesized spacing, driven by the grammatical role of
// each token:
//   - Block keywords (SELECT, FROM, WHERE, GROUP BY, LEFT JOIN, ...) start a
//     new line at column zero
//   - SELECT, WHERE, GROUP BY, HAVING, WITH and WINDOW continue on an
//     indented line
//   - AND and OR start a new line at the current indent
//   - Every comma ends a line, so column lists print one item per line
//   - Parentheses indent their contents
//   - Comments sit on their own line
//
// Whitespace from the input is discarded. The rendered text goes through a
// fixed series of cleanups (joining qualified names, tightening commas,
// parentheses and semicolons, upper-casing AS/ASC/DESC) and is lexed once
// more so callers can highlight the formatted output.
//
// Formatting never fails. Malformed SQL, unterminated literals and plain
// prose are all accepted and laid out as well as the rules allow.
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//	result := formatter.Format("select id, name from users where active = 1")
//	fmt.Println(result.Text)
//
//	// Custom options
//	formatter = format.New(format.FormatterOptions{
//		IndentSize: 4,
//		Keywords:   lexer.NewKeywords("MY_UDF"),
//	})
//
//	// Functional API
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Defaults, sql)
//
// Output:
//
//	SELECT
//	  id,
//	  name
//	FROM users
//	WHERE
//	  active = 1
package format
