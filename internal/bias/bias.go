// Package bias flags resume content that can skew human review, so callers
// can anonymize before sharing rankings.
package bias

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// graduationCutoffYears is how far back a year mention must be before it is
// treated as an age signal.
const graduationCutoffYears = 15

var masculineTerms = map[string]struct{}{
	"he": {}, "him": {}, "his": {}, "man": {}, "men": {}, "male": {},
	"chairman": {}, "waiter": {}, "steward": {}, "policeman": {},
}

var feminineTerms = map[string]struct{}{
	"she": {}, "her": {}, "hers": {}, "woman": {}, "women": {}, "female": {},
	"chairwoman": {}, "waitress": {}, "stewardess": {}, "policewoman": {},
}

var (
	wordRe = regexp.MustCompile(`\b[a-zA-Z]+\b`)
	yearRe = regexp.MustCompile(`\b(19\d{2}|20[0-9]{2})\b`)
)

// Report lists detected bias signals for one document. All slices are sorted
// so identical inputs produce identical reports.
type Report struct {
	SourceID                 string   `json:"source_id"`
	DetectedIssues           []string `json:"detected_issues"`
	Recommendations          []string `json:"recommendations"`
	AnonymizationSuggestions []string `json:"anonymization_suggestions,omitempty"`
}

// Clean reports whether no signals were found.
func (r *Report) Clean() bool {
	return len(r.DetectedIssues) == 0
}

// Analyze scans a document for gendered language and age-revealing years.
func Analyze(sourceID, text string, now time.Time) *Report {
	report := &Report{SourceID: sourceID}

	if cues := genderCues(text); len(cues) > 0 {
		report.DetectedIssues = append(report.DetectedIssues, cues...)
		report.Recommendations = append(report.Recommendations,
			"Consider using gender-neutral pronouns (they/them) or titles (Chairperson, Server).")
	}

	if years := ageIndicators(text, now); len(years) > 0 {
		report.DetectedIssues = append(report.DetectedIssues, years...)
		report.Recommendations = append(report.Recommendations,
			"Remove graduation dates older than 10-15 years to prevent age bias.")
		for _, issue := range years {
			report.AnonymizationSuggestions = append(report.AnonymizationSuggestions,
				fmt.Sprintf("Remove %q", issue))
		}
	}

	return report
}

func genderCues(text string) []string {
	seen := make(map[string]struct{})
	for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if _, ok := masculineTerms[word]; ok {
			seen["Masculine Term: "+word] = struct{}{}
		} else if _, ok := feminineTerms[word]; ok {
			seen["Feminine Term: "+word] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// ageIndicators flags four-digit years old enough to reveal a candidate's
// likely graduation era.
func ageIndicators(text string, now time.Time) []string {
	cutoff := now.Year() - graduationCutoffYears
	seen := make(map[string]struct{})
	for _, match := range yearRe.FindAllString(text, -1) {
		year, err := strconv.Atoi(match)
		if err != nil || year >= cutoff {
			continue
		}
		seen[fmt.Sprintf("Year %d (Potential Age Trigger)", year)] = struct{}{}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
