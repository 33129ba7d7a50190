package links

import (
	"strings"
	"unicode"
)

var suffixes = []string{"ing", "ed", "es", "s"}

// Stem lowercases a word and strips one common suffix. Deliberately light:
// enough to match "cluster" against "clustering", nothing more.
func Stem(word string) string {
	w := strings.ToLower(word)
	for _, suf := range suffixes {
		if strings.HasSuffix(w, suf) {
			return strings.TrimSuffix(w, suf)
		}
	}
	return w
}

// Tokenize splits text into lowercase alphanumeric word tokens.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	var tokens []string
	start := -1
	for i, r := range lower {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, lower[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, lower[start:])
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
