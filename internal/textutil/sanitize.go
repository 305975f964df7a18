package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// upperCaser applies full Unicode case mapping, so "ß" becomes "SS".
var upperCaser = cases.Upper(language.Und)

// DecoratedToken cleans an operator-supplied decorated name: the value is
// uppercased and everything except ASCII A-Z and hyphens is dropped.
// Accented letters are dropped rather than folded, so "à" yields "".
func DecoratedToken(raw string) string {
	if raw == "" {
		return ""
	}
	upper := upperCaser.String(raw)
	var b strings.Builder
	b.Grow(len(upper))
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if (c >= 'A' && c <= 'Z') || c == '-' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
