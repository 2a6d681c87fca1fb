package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-ranker/internal/types"
)

func TestSkillScore_PartialMatch(t *testing.T) {
	required := []string{"Python", "Docker", "Kubernetes"}
	resume := []string{"Docker", "FastAPI", "Python"}

	score, matched, missing, extra := SkillScore(required, resume)

	assert.InDelta(t, 200.0/3.0, score, 1e-9)
	assert.Equal(t, []string{"Python", "Docker"}, matched)
	assert.Equal(t, []string{"Kubernetes"}, missing)
	assert.Equal(t, []string{"FastAPI"}, extra)
}

func TestSkillScore_PartitionInvariant(t *testing.T) {
	required := []string{"Go", "Rust", "Kafka", "Redis"}
	resume := []string{"Rust", "Kafka"}

	_, matched, missing, _ := SkillScore(required, resume)

	// matched and missing partition required exactly.
	assert.Len(t, matched, 2)
	assert.Len(t, missing, 2)
	combined := append(append([]string(nil), matched...), missing...)
	assert.ElementsMatch(t, required, combined)
	for _, m := range matched {
		assert.NotContains(t, missing, m)
	}
}

func TestSkillScore_EmptyRequirements(t *testing.T) {
	score, matched, missing, extra := SkillScore(nil, []string{"Python"})
	assert.Equal(t, 100.0, score)
	assert.Empty(t, matched)
	assert.Empty(t, missing)
	assert.Equal(t, []string{"Python"}, extra)
}

func TestSkillScore_NoResumeSkills(t *testing.T) {
	score, matched, missing, _ := SkillScore([]string{"Python"}, nil)
	assert.Zero(t, score)
	assert.Empty(t, matched)
	assert.Equal(t, []string{"Python"}, missing)
}

func TestExperienceScore_SaturatingCurve(t *testing.T) {
	assert.Equal(t, 100.0, ExperienceScore(5, 5))
	assert.Equal(t, 100.0, ExperienceScore(12, 5))
	assert.InDelta(t, 50.0, ExperienceScore(2.5, 5), 1e-9)
	assert.Zero(t, ExperienceScore(0, 5))
	assert.Zero(t, ExperienceScore(-1, 5))
}

func TestExperienceScore_DefaultTarget(t *testing.T) {
	// Zero target falls back to the 5-year default.
	assert.InDelta(t, 50.0, ExperienceScore(2.5, 0), 1e-9)
	assert.Equal(t, 100.0, ExperienceScore(5, 0))
}

func TestFinalScore_WeightsAndRounding(t *testing.T) {
	assert.InDelta(t, 70.7, FinalScore(72.5, 66.666666, 75), 1e-9)
	assert.Equal(t, 100.0, FinalScore(100, 100, 100))
	assert.Zero(t, FinalScore(0, 0, 0))
}

func TestFinalScore_AlwaysInRange(t *testing.T) {
	cases := [][3]float64{
		{0, 0, 0}, {100, 100, 100}, {50, 0, 100}, {99.99, 99.99, 99.99},
	}
	for _, c := range cases {
		final := FinalScore(c[0], c[1], c[2])
		assert.GreaterOrEqual(t, final, 0.0)
		assert.LessOrEqual(t, final, 100.0)
	}
}

func TestScore_AssemblesBreakdown(t *testing.T) {
	job := types.JobRequirement{RequiredSkills: []string{"Python", "Docker", "Kubernetes"}}
	profile := &types.Profile{
		SourceID:         "resume_001",
		Skills:           []string{"Docker", "FastAPI", "Python"},
		ExperienceMonths: 30,
	}

	breakdown := Score(job, profile, 60)

	assert.Equal(t, "resume_001", breakdown.SourceID)
	assert.Equal(t, 60.0, breakdown.ContentScore)
	assert.Equal(t, 66.7, breakdown.SkillScore)
	assert.Equal(t, 2.5, breakdown.ExperienceYears)
	// 0.4*60 + 0.4*66.666 + 0.2*50 = 60.7 (rounded to one decimal).
	assert.Equal(t, 60.7, breakdown.FinalScore)
	assert.Equal(t, []string{"Python", "Docker"}, breakdown.MatchedSkills)
	assert.Equal(t, []string{"Kubernetes"}, breakdown.MissingSkills)
	assert.Contains(t, breakdown.Explanation, "matched 2 of 3 required skills")
	assert.Contains(t, breakdown.Explanation, "Missing: Kubernetes")
}

func TestScore_EmptyProfile(t *testing.T) {
	job := types.JobRequirement{RequiredSkills: []string{"Go"}}
	breakdown := Score(job, &types.Profile{SourceID: "blank"}, 0)

	assert.Zero(t, breakdown.FinalScore)
	assert.Equal(t, []string{"Go"}, breakdown.MissingSkills)
	assert.Contains(t, breakdown.Explanation, "Weak Match")
}

func TestVerdict_TierBoundaries(t *testing.T) {
	assert.Equal(t, "Top Tier Candidate", Verdict(80))
	assert.Equal(t, "Top Tier Candidate", Verdict(95.5))
	assert.Equal(t, "Good Candidate", Verdict(79.9))
	assert.Equal(t, "Good Candidate", Verdict(50))
	assert.Equal(t, "Weak Match", Verdict(49.9))
	assert.Equal(t, "Weak Match", Verdict(0))
}

func TestExplain_CapsSkillList(t *testing.T) {
	matched := []string{"A", "B", "C", "D", "E", "F", "G"}
	text := Explain(85, matched, nil)
	assert.Contains(t, text, "A, B, C, D, E +2 more")
	assert.NotContains(t, text, "F")
}

func TestExplain_NoRequirements(t *testing.T) {
	text := Explain(90, nil, nil)
	assert.Contains(t, text, "no specific skills required")
}

func TestSort_DeterministicOrdering(t *testing.T) {
	breakdowns := []types.ScoreBreakdown{
		{SourceID: "c", FinalScore: 70, SkillScore: 50},
		{SourceID: "b", FinalScore: 70, SkillScore: 80},
		{SourceID: "a", FinalScore: 70, SkillScore: 50},
		{SourceID: "d", FinalScore: 90, SkillScore: 10},
	}

	Sort(breakdowns)

	ids := []string{breakdowns[0].SourceID, breakdowns[1].SourceID, breakdowns[2].SourceID, breakdowns[3].SourceID}
	assert.Equal(t, []string{"d", "b", "a", "c"}, ids)

	for i := 1; i < len(breakdowns); i++ {
		assert.GreaterOrEqual(t, breakdowns[i-1].FinalScore, breakdowns[i].FinalScore)
	}
}
