// Package ranking combines skill overlap, content similarity and experience
// into one weighted, explainable score per candidate.
package ranking

import (
	"fmt"
	"strings"
)

// maxSkillsInExplanation caps how many skill names are spelled out before
// switching to "+N more".
const maxSkillsInExplanation = 5

// tiers maps score floors to verdict labels, highest floor first. Keeping
// the boundaries in one table means a single source of truth for both
// explanation text and any display styling built on top.
var tiers = []struct {
	floor float64
	label string
}{
	{80, "Top Tier Candidate"},
	{50, "Good Candidate"},
	{0, "Weak Match"},
}

// Verdict returns the tier label for a final score.
func Verdict(finalScore float64) string {
	for _, tier := range tiers {
		if finalScore >= tier.floor {
			return tier.label
		}
	}
	return tiers[len(tiers)-1].label
}

// Explain renders the human-readable justification for a score: the tier
// verdict, how many required skills matched and which, and what is missing.
func Explain(finalScore float64, matched, missing []string) string {
	var sb strings.Builder
	sb.WriteString(Verdict(finalScore))
	sb.WriteString(": ")

	total := len(matched) + len(missing)
	switch {
	case total == 0:
		sb.WriteString("no specific skills required")
	case len(matched) == 0:
		sb.WriteString(fmt.Sprintf("matched 0 of %d required skills", total))
	default:
		sb.WriteString(fmt.Sprintf("matched %d of %d required skills (%s)", len(matched), total, joinCapped(matched)))
	}

	if len(missing) > 0 {
		sb.WriteString(fmt.Sprintf(". Missing: %s", joinCapped(missing)))
	}
	sb.WriteString(".")

	return sb.String()
}

// joinCapped comma-joins up to maxSkillsInExplanation names.
func joinCapped(skills []string) string {
	if len(skills) <= maxSkillsInExplanation {
		return strings.Join(skills, ", ")
	}
	shown := strings.Join(skills[:maxSkillsInExplanation], ", ")
	return fmt.Sprintf("%s +%d more", shown, len(skills)-maxSkillsInExplanation)
}
