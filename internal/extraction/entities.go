// Package extraction pulls contact entities and canonical skills out of raw
// resume text.
package extraction

import (
	"regexp"
	"sort"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`)
)

// minPhoneDigits filters out short digit runs (dates, zip codes) that the
// permissive phone pattern also matches.
const minPhoneDigits = 10

// Emails extracts all email addresses from text, deduplicated and sorted.
func Emails(text string) []string {
	return dedupeSorted(emailRe.FindAllString(text, -1))
}

// Phones extracts phone numbers from text, normalized to a bare digit string
// with a leading "+" retained when present. Deduplicated and sorted.
func Phones(text string) []string {
	var phones []string
	for _, match := range phoneRe.FindAllString(text, -1) {
		normalized := normalizePhone(match)
		if len(strings.TrimPrefix(normalized, "+")) >= minPhoneDigits {
			phones = append(phones, normalized)
		}
	}
	return dedupeSorted(phones)
}

// normalizePhone strips separators, keeping digits and a leading plus.
func normalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func dedupeSorted(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
