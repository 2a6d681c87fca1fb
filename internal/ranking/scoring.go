// Package ranking combines skill overlap, content similarity and experience
// into one weighted, explainable score per candidate.
package ranking

import (
	"math"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Weights for the final score. They sum to 1.0 so the result stays on the
// same 0-100 scale as its components.
const (
	contentWeight    = 0.4
	skillWeight      = 0.4
	experienceWeight = 0.2
)

// DefaultTargetYears is the experience target applied when the job
// description does not state one.
const DefaultTargetYears = 5.0

// minTargetYears guards the experience curve against degenerate targets.
const minTargetYears = 0.1

// SkillScore computes the percentage of required skills present in the
// resume and partitions the requirements into matched and missing. Matched
// and missing preserve the order of required; extra lists resume skills the
// job did not ask for. An empty requirement list scores 100: nothing to miss.
func SkillScore(required, resumeSkills []string) (score float64, matched, missing, extra []string) {
	if len(required) == 0 {
		return 100, nil, nil, append([]string(nil), resumeSkills...)
	}

	have := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[skill] = struct{}{}
	}

	requiredSet := make(map[string]struct{}, len(required))
	for _, skill := range required {
		requiredSet[skill] = struct{}{}
		if _, ok := have[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	for _, skill := range resumeSkills {
		if _, ok := requiredSet[skill]; !ok {
			extra = append(extra, skill)
		}
	}

	score = 100 * float64(len(matched)) / float64(len(required))
	return score, matched, missing, extra
}

// ExperienceScore maps years of experience onto a saturating 0-100 curve:
// full credit at or beyond the target, linear below it. A non-positive
// target falls back to DefaultTargetYears.
func ExperienceScore(years, targetYears float64) float64 {
	if targetYears <= 0 {
		targetYears = DefaultTargetYears
	}
	if targetYears < minTargetYears {
		targetYears = minTargetYears
	}
	if years <= 0 {
		return 0
	}
	if years >= targetYears {
		return 100
	}
	return 100 * years / targetYears
}

// FinalScore combines the three component scores with the fixed weights,
// rounded to one decimal.
func FinalScore(contentScore, skillScore, experienceScore float64) float64 {
	final := contentWeight*contentScore + skillWeight*skillScore + experienceWeight*experienceScore
	return clamp(round1(final))
}

// Score assembles the full breakdown for one candidate.
func Score(job types.JobRequirement, profile *types.Profile, contentScore float64) types.ScoreBreakdown {
	skillScore, matched, missing, extra := SkillScore(job.RequiredSkills, profile.Skills)
	years := profile.ExperienceYears()
	expScore := ExperienceScore(years, job.TargetYears)
	final := FinalScore(contentScore, skillScore, expScore)

	return types.ScoreBreakdown{
		SourceID:        profile.SourceID,
		ContentScore:    clamp(round1(contentScore)),
		SkillScore:      clamp(round1(skillScore)),
		ExperienceYears: round1(years),
		FinalScore:      final,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ExtraSkills:     extra,
		Explanation:     Explain(final, matched, missing),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
