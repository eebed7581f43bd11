package model

import (
	"strings"
	"unicode"
)

// DefaultLabeler turns a key such as "birth_date" or "firstName" into a
// human-friendly label ("Birth date", "First name").
func DefaultLabeler(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(key)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			continue
		case i > 0 && isWordBoundary(runes[i-1], r):
			flush()
		}
		current = append(current, r)
	}
	flush()

	if len(words) == 0 {
		return ""
	}
	first := []rune(words[0])
	first[0] = unicode.ToUpper(first[0])
	words[0] = string(first)
	return strings.Join(words, " ")
}

func isWordBoundary(prev, r rune) bool {
	return (unicode.IsLower(prev) && unicode.IsUpper(r)) ||
		(unicode.IsLetter(prev) && unicode.IsDigit(r)) ||
		(unicode.IsDigit(prev) && unicode.IsLetter(r))
}
