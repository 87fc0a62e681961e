package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeLocationTerm extracts the searchable location from a free-form
// search box value. The client sends comma-separated place parts
// ("sector 4, chennai"); the last part is the one matched against showroom
// locations, trimmed and capitalized.
func NormalizeLocationTerm(searchTerm string) string {
	parts := strings.Split(searchTerm, ",")
	last := strings.TrimSpace(parts[len(parts)-1])
	if last == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(last)
	return string(unicode.ToUpper(first)) + last[size:]
}
