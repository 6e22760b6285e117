package lexer

import (
	"strings"
	"sync"
)

var (
	// vocabulary is every word recognized as a keyword. Standard DML/DDL,
	// window and CTE words come first, followed by dialect extensions.
	vocabulary = []string{
		// DML
		"SELECT", "FROM", "WHERE", "AND", "OR", "NOT", "GROUP", "BY", "ORDER",
		"HAVING", "LIMIT", "OFFSET", "FETCH", "FIRST", "NEXT", "ROWS", "ROW",
		"ONLY", "INSERT", "INTO", "VALUES", "UPDATE", "SET", "DELETE", "MERGE",
		"USING", "MATCHED", "RETURNING", "DISTINCT", "ALL", "ANY", "SOME", "AS",
		"ASC", "DESC", "NULLS", "LAST", "IN", "IS", "NULL", "TRUE", "FALSE",
		"EXISTS", "BETWEEN", "LIKE", "ILIKE", "RLIKE", "REGEXP", "SIMILAR",
		"ESCAPE", "CASE", "WHEN", "THEN", "ELSE", "END", "CAST", "EXTRACT",
		"INTERVAL", "UNION", "EXCEPT", "INTERSECT", "MINUS",

		// Joins
		"JOIN", "INNER", "LEFT", "RIGHT", "FULL", "OUTER", "CROSS", "NATURAL",
		"ON", "APPLY", "LATERAL", "SEMI", "ANTI", "ASOF",

		// DDL
		"CREATE", "ALTER", "DROP", "TRUNCATE", "RENAME", "TABLE", "VIEW",
		"MATERIALIZED", "INDEX", "UNIQUE", "PRIMARY", "FOREIGN", "KEY",
		"REFERENCES", "CONSTRAINT", "CHECK", "DEFAULT", "COLUMN", "ADD",
		"DATABASE", "SCHEMA", "IF", "REPLACE", "TEMPORARY", "CASCADE",
		"RESTRICT", "COMMENT", "GRANT", "REVOKE", "TO", "BEGIN", "COMMIT",
		"ROLLBACK", "TRANSACTION", "EXPLAIN", "ANALYZE", "DESCRIBE", "SHOW",
		"USE",

		// Window and CTE
		"WITH", "RECURSIVE", "WINDOW", "OVER", "PARTITION", "RANGE",
		"UNBOUNDED", "PRECEDING", "FOLLOWING", "CURRENT", "FILTER", "WITHIN",
		"GROUPS", "EXCLUDE", "TIES", "OTHERS", "ROLLUP", "CUBE", "GROUPING",
		"SETS",

		// BigQuery
		"QUALIFY", "UNNEST", "STRUCT", "ARRAY", "SAFE_CAST", "TABLESAMPLE",
		"SYSTEM_TIME", "OF", "FOR", "PIVOT", "UNPIVOT", "RESPECT", "IGNORE",

		// Snowflake
		"SAMPLE", "CONNECT", "START", "PRIOR", "MATCH_RECOGNIZE", "FLATTEN",
		"COPY", "STAGE", "CLONE", "TRANSIENT", "VOLATILE", "WAREHOUSE",

		// Spark / Hive
		"CLUSTER", "DISTRIBUTE", "SORT", "EXPLODE", "TBLPROPERTIES", "STORED",
		"OVERWRITE", "DIRECTORY", "EXTERNAL", "PARTITIONED", "CLUSTERED",
		"BUCKETS", "DELIMITED", "TERMINATED", "SERDE", "INPATH", "LOAD",
		"CACHE", "UNCACHE", "REFRESH",

		// ClickHouse
		"ENGINE", "SETTINGS", "FINAL", "PREWHERE", "ARRAY_JOIN", "GLOBAL",
		"POPULATE", "TTL", "CODEC", "DICTIONARY", "SYNC", "ATTACH", "DETACH",
		"OPTIMIZE", "DEDUPLICATE", "FORMAT",
	}

	// blockWords start a new top-level clause and force a line break.
	blockWords = []string{
		"SELECT", "FROM", "WHERE", "GROUP", "ORDER", "LIMIT", "HAVING",
		"INSERT", "UPDATE", "DELETE", "SET", "VALUES", "JOIN", "LEFT", "RIGHT",
		"INNER", "WITH", "WINDOW", "UNION", "EXCEPT", "INTERSECT", "QUALIFY",
	}

	// indentAfterWords additionally push the following token onto an
	// indented continuation line.
	indentAfterWords = []string{
		"SELECT", "WHERE", "GROUP BY", "HAVING", "WITH", "WINDOW",
	}

	// phraseHeads maps the first word of a compound phrase to the words that
	// may follow it.
	phraseHeads = map[string][]string{
		"GROUP": {"BY"},
		"ORDER": {"BY"},
		"INNER": {"JOIN"},
		"LEFT":  {"JOIN"},
		"RIGHT": {"JOIN"},
		"OUTER": {"JOIN"},
	}

	defaultKeywords     *Keywords
	defaultKeywordsOnce sync.Once
)

// Keywords is the immutable keyword vocabulary shared by the lexer and the
// layout engine. Lookups are case-insensitive; stored forms are upper case.
type Keywords struct {
	words       map[string]struct{}
	block       map[string]struct{}
	indentAfter map[string]struct{}
	phrases     map[string]map[string]struct{}
}

// DefaultKeywords returns the built-in vocabulary. The value is built once
// and shared.
func DefaultKeywords() *Keywords {
	defaultKeywordsOnce.Do(func() {
		defaultKeywords = NewKeywords()
	})

	return defaultKeywords
}

// NewKeywords builds the built-in vocabulary extended with extra recognized
// words. Extra words never become block keywords.
func NewKeywords(extra ...string) *Keywords {
	kw := &Keywords{
		words:       toSet(vocabulary),
		block:       toSet(blockWords),
		indentAfter: toSet(indentAfterWords),
		phrases:     make(map[string]map[string]struct{}, len(phraseHeads)),
	}

	for _, word := range extra {
		word = strings.ToUpper(strings.TrimSpace(word))
		if word != "" {
			kw.words[word] = struct{}{}
		}
	}

	for head, tails := range phraseHeads {
		kw.phrases[head] = toSet(tails)
		for _, tail := range tails {
			kw.block[head+" "+tail] = struct{}{}
		}
	}

	return kw
}

// Has reports whether word is a recognized keyword.
func (k *Keywords) Has(word string) bool {
	_, ok := k.words[strings.ToUpper(word)]
	return ok
}

// IsBlock reports whether word (or a fused phrase like "GROUP BY") starts a
// new top-level clause.
func (k *Keywords) IsBlock(word string) bool {
	_, ok := k.block[strings.ToUpper(word)]
	return ok
}

// IndentsAfter reports whether the clause started by word continues on an
// indented line.
func (k *Keywords) IndentsAfter(word string) bool {
	_, ok := k.indentAfter[strings.ToUpper(word)]
	return ok
}

// Phrase returns the fused form of two adjacent keywords, e.g. "GROUP BY",
// and whether the pair fuses at all.
func (k *Keywords) Phrase(first, second string) (string, bool) {
	first, second = strings.ToUpper(first), strings.ToUpper(second)

	tails, ok := k.phrases[first]
	if !ok {
		return "", false
	}

	if _, ok := tails[second]; !ok {
		return "", false
	}

	return first + " " + second, true
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	return set
}
