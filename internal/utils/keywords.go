package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsAny reports whether s contains any of the needles as a substring
func ContainsAny(s string, needles []string) bool {
	_, ok := FirstContained(s, needles)
	return ok
}

// FirstContained returns the first needle, in list order, that s contains
func FirstContained(s string, needles []string) (string, bool) {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return n, true
		}
	}
	return "", false
}

// ContainsAnyWord reports whether any of the words appears in s as a whole word
func ContainsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if indexWord(s, w) >= 0 {
			return true
		}
	}
	return false
}

// indexWord finds w in s where the match starts and ends on a word boundary
func indexWord(s, w string) int {
	if w == "" {
		return -1
	}
	for start := 0; start <= len(s)-len(w); {
		i := strings.Index(s[start:], w)
		if i < 0 {
			return -1
		}
		i += start
		end := i + len(w)
		if boundaryBefore(s, i) && boundaryAfter(s, end) {
			return i
		}
		start = i + 1
	}
	return -1
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// NormalizeCommercialType maps the spoken form of a commercial type onto the
// value stored in the catalog
func NormalizeCommercialType(token string) string {
	normalizations := map[string]string{
		"corporate floor":  "corporate_floors",
		"corporate floors": "corporate_floors",
	}
	if normalized, ok := normalizations[strings.ToLower(strings.TrimSpace(token))]; ok {
		return normalized
	}
	return token
}
