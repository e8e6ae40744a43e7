package utils

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatNumber prints a decimal without trailing zeros: 40 -> "40", 1.50 -> "1.5"
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GroupThousands prints an integer with comma thousands separators
func GroupThousands(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// Title upper-cases the first letter of each word: "corporate_floors" -> "Corporate Floors"
func Title(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// StringOr returns the pointed-to value, or fallback when it is nil or blank
func StringOr(s *string, fallback string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return fallback
	}
	return *s
}
