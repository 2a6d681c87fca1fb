// Package ranking combines skill overlap, content similarity and experience
// into one weighted, explainable score per candidate.
package ranking

import (
	"sort"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Sort orders breakdowns by final score descending, breaking ties by skill
// score descending and then source ID ascending, so the ranking is total and
// never depends on input order.
func Sort(breakdowns []types.ScoreBreakdown) {
	sort.Slice(breakdowns, func(i, j int) bool {
		a, b := breakdowns[i], breakdowns[j]
		if a.FinalScore != b.FinalScore {
			return a.FinalScore > b.FinalScore
		}
		if a.SkillScore != b.SkillScore {
			return a.SkillScore > b.SkillScore
		}
		return a.SourceID < b.SourceID
	})
}
