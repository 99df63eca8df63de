package index

import (
	"regexp"
	"strings"
)

// CompilePattern compiles a wildcard pattern into an anchored regular
// expression. '?' matches exactly one character, '*' matches zero or more
// characters and every other character matches itself. The pattern is
// lowercased first. Every string is a valid pattern.
func CompilePattern(pattern string) *regexp.Regexp {
	pattern = strings.ToValidUTF8(strings.ToLower(pattern), "�")

	var b strings.Builder
	b.WriteString(`^(?s:`)
	for _, r := range pattern {
		switch r {
		case '?':
			b.WriteString(`.`)
		case '*':
			b.WriteString(`.*`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`)$`)

	return regexp.MustCompile(b.String())
}
