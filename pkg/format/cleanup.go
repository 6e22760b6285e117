package format

import (
	"regexp"
	"strings"
)

type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

var (
	// cleanups run in order over the rendered text. Each is a global replace.
	cleanups = []rewrite{
		{regexp.MustCompile(`[ \t]+\n`), "\n"},
		{regexp.MustCompile(`\n\s+\n`), "\n"},
		{regexp.MustCompile(` \.`), "."},
		{regexp.MustCompile(`\. `), "."},
		{regexp.MustCompile(` ,`), ","},
		{regexp.MustCompile(`\( `), "("},
		{regexp.MustCompile(` \)`), ")"},
		{regexp.MustCompile(`@ `), "@"},
		{regexp.MustCompile(` ;`), ";"},
	}

	// sortWords are upper-cased wherever they appear, even in positions the
	// lexer did not classify as keywords.
	sortWords = regexp.MustCompile(`(?i)\b(?:as|asc|desc)\b`)
)

// cleanup normalizes the spacing of rendered text.
func cleanup(text string) string {
	text = strings.TrimSpace(text)

	for _, r := range cleanups {
		text = r.pattern.ReplaceAllLiteralString(text, r.replacement)
	}

	return sortWords.ReplaceAllStringFunc(text, strings.ToUpper)
}
