// Package experience computes total work experience from free-form date
// ranges found in resume text.
package experience

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Explicit experience mentions such as "Total Experience: 5 years" or
// "8+ years of experience". Checked in order; first hit wins.
var mentionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total experience[:\s-]*(\d+(?:\.\d+)?)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\+?\s*years?['’s]*\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)experience[:\s-]*(\d+(?:\.\d+)?)\+?\s*years?`),
}

// MentionYears returns the first explicitly stated experience figure found in
// text ("5 years of experience"), or 0 when none is stated.
func MentionYears(text string) float64 {
	for _, re := range mentionRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		years, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return years
	}
	return 0
}

// TotalMonths computes total work experience in whole months. Date ranges are
// merged before summation so overlapping roles count once; an explicitly
// stated figure is trusted when it exceeds what the ranges add up to. A text
// with nothing parseable yields 0.
func TotalMonths(text string, now time.Time, log *zap.Logger) int {
	if log == nil {
		log = zap.NewNop()
	}

	intervals := ScanIntervals(text, now)
	rangeMonths := 0
	for _, iv := range Merge(intervals) {
		rangeMonths += iv.Months()
	}

	mentionMonths := int(math.Round(MentionYears(text) * 12))

	log.Debug("experience computed",
		zap.Int("ranges", len(intervals)),
		zap.Int("range_months", rangeMonths),
		zap.Int("mention_months", mentionMonths))

	if mentionMonths > rangeMonths {
		return mentionMonths
	}
	return rangeMonths
}

// Years converts whole months to fractional years.
func Years(months int) float64 {
	return float64(months) / 12.0
}
