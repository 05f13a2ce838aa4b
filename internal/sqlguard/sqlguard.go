// Package sqlguard classifies model-generated SQL as safe to execute.
//
// The classification is lexical, not a SQL parser: a statement passes only
// if its first keyword (after comment stripping) is SELECT or WITH and no
// data-modifying keyword appears anywhere in it as a whole word. The
// keyword-anywhere rule catches multi-statement injection like
// "SELECT 1; DROP TABLE x" but also rejects legitimate SELECTs whose string
// literals contain a blocked word. That over-restriction is intentional.
package sqlguard

import (
	"regexp"
	"strings"
)

var dangerousKeywords = regexp.MustCompile(
	`(?i)\b(DROP|DELETE|INSERT|UPDATE|ALTER|CREATE|TRUNCATE|REPLACE|MERGE|GRANT|REVOKE|EXEC|EXECUTE)\b`,
)

// stripComments removes leading -- line comments and /* block */ comments so
// the first keyword can be inspected. An unclosed block comment is left in
// place; the first-keyword check then rejects the statement.
func stripComments(sql string) string {
	s := strings.TrimSpace(sql)
	for strings.HasPrefix(s, "--") {
		i := strings.Index(s, "\n")
		if i < 0 {
			return ""
		}
		s = strings.TrimSpace(s[i+1:])
	}
	for strings.HasPrefix(s, "/*") {
		end := strings.Index(s, "*/")
		if end < 0 {
			break
		}
		s = strings.TrimSpace(s[end+2:])
	}
	return s
}

// IsSafeSQL reports whether sql is an allowed read-only statement.
func IsSafeSQL(sql string) bool {
	stripped := strings.TrimSpace(strings.TrimRight(stripComments(sql), "; \t\r\n"))
	fields := strings.Fields(stripped)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToUpper(fields[0])
	if first != "SELECT" && first != "WITH" {
		return false
	}
	return !dangerousKeywords.MatchString(stripped)
}
