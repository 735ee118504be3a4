// Package pattern prepares regular expressions for the pattern counter.
//
// Free-form input can be run through Sanitize so that it matches only its
// literal text; raw patterns bypass it when full regex semantics are wanted.
package pattern

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// metacharacters are escaped with a backslash by Sanitize.
const metacharacters = `[]()+*^$|.\{}?-`

// Sanitize escapes every regex metacharacter and whitespace character in raw
// so the result matches raw literally. Letters, digits, underscore and other
// punctuation (such as '#', '@' or '!') pass through unchanged.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw) * 2)

	for _, r := range raw {
		switch {
		case strings.ContainsRune(metacharacters, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		case unicode.IsSpace(r) && r < utf8.RuneSelf:
			b.WriteByte('\\')
			b.WriteRune(r)
		case unicode.IsSpace(r):
			// RE2 rejects a backslash before a non-ASCII rune
			fmt.Fprintf(&b, `\x{%x}`, r)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Compile compiles expr as a case-sensitive regular expression. When literal
// is true expr is sanitized first. Syntax errors are returned wrapped, never
// masked.
func Compile(expr string, literal bool) (*regexp.Regexp, error) {
	if literal {
		expr = Sanitize(expr)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}

	slog.Debug("Pattern compiled", "pattern", expr, "literal", literal)
	return re, nil
}
