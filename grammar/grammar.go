// Package grammar classifies query text as structurally well formed.
//
// It is a single whole-text shape test, not a parser: it never reports which
// clause failed. Keywords are uppercase and case-sensitive, and clauses must
// appear in this order:
//
//	SELECT [DISTINCT] (* | column, ...)
//	FROM table
//	[WHERE constraints]
//	[GROUP BY columns]
//	[ORDER BY columns]
//	[PER PARTITION LIMIT (n | ?)]
//	[LIMIT (n | ?)]
//	[ALLOW FILTERING]
//	[BYPASS CACHE]
//	[USING TIMEOUT n]
//	[;]
//
// Word, digit and space classes are Unicode-aware: identifiers such as
// "usuários" and digits such as "٣" are accepted, and any Unicode space
// separates clauses.
package grammar

import (
	"regexp"
	"strings"
)

const pattern = `^SELECT\s+(DISTINCT\s+)?(\*|[\w,\s]+)\s+FROM\s+\w+` +
	`(\s+WHERE\s+[\w\s=<>!'"(),]+)?` +
	`(\s+GROUP\s+BY\s+[\w\s,]+)?` +
	`(\s+ORDER\s+BY\s+[\w\s,]+)?` +
	`(\s+PER\s+PARTITION\s+LIMIT\s+(\d+|\?))?` +
	`(\s+LIMIT\s+(\d+|\?))?` +
	`(\s+ALLOW\s+FILTERING)?` +
	`(\s+BYPASS\s+CACHE)?` +
	`(\s+USING\s+TIMEOUT\s+\d+)?` +
	`\s*;?$`

// unicodeClasses holds the Unicode replacements for the ASCII-only Perl
// classes of RE2.
var unicodeClasses = map[byte]string{
	'w': `\p{L}\p{M}\p{N}\p{Pc}`,
	'd': `\p{Nd}`,
	's': `\s\v\x{85}\p{Z}`,
}

var queryRE = regexp.MustCompile(expandClasses(pattern))

// expandClasses rewrites \w, \d and \s in p to their Unicode forms. Inside a
// bracket expression the class members are spliced in; elsewhere they are
// wrapped in brackets.
func expandClasses(p string) string {
	var b strings.Builder
	inClass := false
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '\\' && i+1 < len(p) {
			i++
			cls, ok := unicodeClasses[p[i]]
			switch {
			case !ok:
				b.WriteByte(c)
				b.WriteByte(p[i])
			case inClass:
				b.WriteString(cls)
			default:
				b.WriteString("[" + cls + "]")
			}
			continue
		}
		switch c {
		case '[':
			inClass = true
		case ']':
			inClass = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Check reports whether query has the accepted SELECT shape.
func Check(query string) bool {
	return queryRE.MatchString(query)
}
