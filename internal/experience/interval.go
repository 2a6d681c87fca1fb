// Package experience computes total work experience from free-form date
// ranges found in resume text.
package experience

import (
	"sort"
	"time"
)

// DateInterval represents one employment span in month-index space.
// End is exclusive, so Months() is simply End-Start.
type DateInterval struct {
	Start int `json:"start_month_index"`
	End   int `json:"end_month_index"`
}

// Months returns the interval length in whole months.
func (d DateInterval) Months() int {
	if d.End <= d.Start {
		return 0
	}
	return d.End - d.Start
}

// MonthIndex converts a calendar year and month to a single month index.
func MonthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}

// Merge sorts intervals by start and coalesces overlapping or contiguous
// spans, so concurrent roles are never double-counted. The input slice is
// not modified.
func Merge(intervals []DateInterval) []DateInterval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]DateInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []DateInterval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}
