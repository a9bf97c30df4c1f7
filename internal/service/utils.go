package service

import (
	"strings"
	"unicode/utf8"
)

const previewLimit = 200

// sanitizeUTF8 removes invalid UTF-8 sequences from string
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		result.WriteRune(r)
		s = s[size:]
	}

	return result.String()
}

// preview shortens generated text for log output without splitting a rune.
func preview(raw string) string {
	s := sanitizeUTF8(strings.TrimSpace(raw))
	if utf8.RuneCountInString(s) <= previewLimit {
		return s
	}
	return string([]rune(s)[:previewLimit]) + "..."
}
