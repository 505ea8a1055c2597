package pos

import (
	"regexp"
	"strings"
)

// MatchSubstring reports whether any field contains term, ignoring case.
// Used by the inventory listing.
func MatchSubstring(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// fuzzyPattern builds a case-insensitive "t.*e.*r.*m" expression. Each term
// character is quoted so punctuation matches literally.
func fuzzyPattern(term string) *regexp.Regexp {
	parts := make([]string, 0, len(term))
	for _, r := range term {
		parts = append(parts, regexp.QuoteMeta(string(r)))
	}
	return regexp.MustCompile("(?i)" + strings.Join(parts, ".*"))
}

// MatchFuzzy reports whether the characters of term appear in s in order,
// with any gaps, ignoring case. Used by the point-of-sale search.
func MatchFuzzy(term, s string) bool {
	return fuzzyPattern(term).MatchString(s)
}

// FilterSubstring keeps the items where any of fields(item) contains term.
func FilterSubstring[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if MatchSubstring(term, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}

// FilterFuzzy keeps the items whose name(item) fuzzily matches term.
func FilterFuzzy[T any](items []T, term string, name func(T) string) []T {
	if term == "" {
		return items
	}
	re := fuzzyPattern(term)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if re.MatchString(name(it)) {
			out = append(out, it)
		}
	}
	return out
}
