// Package experience computes total work experience from free-form date
// ranges found in resume text.
package experience

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Accepted date-range shapes, mirroring what resumes actually contain:
//
//	Jan 2020 - Feb 2022        (month names, full or abbreviated)
//	01/2020 to 02/2022         (MM/YYYY)
//	2018 - 2020                (bare years)
//	Mar 2021 - Present         (open-ended, also "current"/"now")
const (
	monthPattern = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	sepPattern   = `\s*(?:-|–|—|to|until|till)\s*`
	openPattern  = `(?:present|current|now)`
)

var (
	monthYearRangeRe = regexp.MustCompile(`(?i)\b(` + monthPattern + `)\.?\s+(\d{4})` + sepPattern + `(?:(` + monthPattern + `)\.?\s+(\d{4})|(` + openPattern + `))\b`)
	numericRangeRe   = regexp.MustCompile(`(?i)\b(\d{1,2})/(\d{4})` + sepPattern + `(?:(\d{1,2})/(\d{4})|(` + openPattern + `))\b`)
	yearRangeRe      = regexp.MustCompile(`(?i)\b(\d{4})` + sepPattern + `(?:(\d{4})|(` + openPattern + `))\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Year sanity bounds for bare YYYY-YYYY ranges, which otherwise match digit
// runs in phone numbers and IDs.
const (
	minPlausibleYear = 1950
	maxPlausibleYear = 2100
)

// ScanIntervals extracts every recognizable date range from text as a
// DateInterval. "present"/"current" resolve to now's month. Unparseable or
// inverted ranges are dropped; a text with no ranges yields nil.
func ScanIntervals(text string, now time.Time) []DateInterval {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	nowEnd := MonthIndex(now.Year(), now.Month()) + 1
	var intervals []DateInterval

	add := func(start, end int) {
		if end <= start {
			return
		}
		intervals = append(intervals, DateInterval{Start: start, End: end})
	}

	for _, m := range monthYearRangeRe.FindAllStringSubmatch(text, -1) {
		start, ok := monthIndexOf(m[1], m[2])
		if !ok {
			continue
		}
		if m[5] != "" {
			add(start, nowEnd)
			continue
		}
		end, ok := monthIndexOf(m[3], m[4])
		if !ok {
			continue
		}
		add(start, end+1)
	}

	// Blank out already-consumed spans so the looser patterns below cannot
	// re-match the year portion of "Jan 2020 - Present" style ranges.
	rest := monthYearRangeRe.ReplaceAllString(text, " ")

	for _, m := range numericRangeRe.FindAllStringSubmatch(rest, -1) {
		start, ok := numericIndexOf(m[1], m[2])
		if !ok {
			continue
		}
		if m[5] != "" {
			add(start, nowEnd)
			continue
		}
		end, ok := numericIndexOf(m[3], m[4])
		if !ok {
			continue
		}
		add(start, end+1)
	}

	rest = numericRangeRe.ReplaceAllString(rest, " ")

	for _, m := range yearRangeRe.FindAllStringSubmatch(rest, -1) {
		startYear, err := strconv.Atoi(m[1])
		if err != nil || !plausibleYear(startYear) {
			continue
		}
		// Year-only starts default to January, year-only ends to December.
		start := MonthIndex(startYear, time.January)
		if m[3] != "" {
			add(start, nowEnd)
			continue
		}
		endYear, err := strconv.Atoi(m[2])
		if err != nil || !plausibleYear(endYear) {
			continue
		}
		add(start, MonthIndex(endYear, time.December)+1)
	}

	return intervals
}

func monthIndexOf(monthName, yearStr string) (int, bool) {
	prefix := strings.ToLower(monthName)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	month, ok := monthsByPrefix[prefix]
	if !ok {
		return 0, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, false
	}
	return MonthIndex(year, month), true
}

func numericIndexOf(monthStr, yearStr string) (int, bool) {
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, false
	}
	return MonthIndex(year, time.Month(month)), true
}

func plausibleYear(year int) bool {
	return year >= minPlausibleYear && year <= maxPlausibleYear
}
