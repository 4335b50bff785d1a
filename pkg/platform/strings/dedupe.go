// Package strings normalizes free-form string lists such as tags and
// specializations.
package strings

import (
	"strings"
)

// DedupeAndTrim trims each element and drops blanks and repeats,
// keeping first-seen order.
func DedupeAndTrim(values []string) []string {
	return dedupe(values, func(s string) string { return s })
}

// DedupeAndTrimLower is DedupeAndTrim with case folded to lower.
func DedupeAndTrimLower(values []string) []string {
	return dedupe(values, strings.ToLower)
}

// DedupeAndTrimUpper is DedupeAndTrim with case folded to upper.
func DedupeAndTrimUpper(values []string) []string {
	return dedupe(values, strings.ToUpper)
}

func dedupe(values []string, fold func(string) string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = fold(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
