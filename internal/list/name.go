package list

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeName trims whitespace and lower-cases a list name for storage and lookup.
// Inner whitespace is kept as is.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DisplayName converts a stored list name to Title Case, e.g. "grocery list" -> "Grocery List".
func DisplayName(name string) string {
	words := strings.Split(name, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
