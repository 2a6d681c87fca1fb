package engine

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/catalog"
	"github.com/jonathan/resume-ranker/internal/config"
)

const jobText = `Senior Backend Engineer

We are looking for an engineer with 5+ years of experience building
distributed systems. Required skills: Python, Docker, Kubernetes.
Experience with PostgreSQL and AWS is a plus.`

const strongResume = `Jane Doe
jane.doe@example.com | +1 (415) 555-0199

Senior Engineer, Acme Corp
Jan 2019 - Present
Built Python microservices deployed on Kubernetes. Owned Docker build
pipelines and PostgreSQL schema migrations on AWS.`

const weakResume = `John Smith
john@example.org

Junior Designer, Studio Ltd
2024 - Present
Produced marketing illustrations and brand guidelines.`

func newTestEngine(t *testing.T, cfg *config.Config) *Engine {
	t.Helper()
	e := New(catalog.Default(zap.NewNop()), cfg, zap.NewNop())
	e.now = func() time.Time {
		return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
	return e
}

func TestBuildJobExtractsRequirements(t *testing.T) {
	e := newTestEngine(t, nil)

	job, err := e.BuildJob(jobText)
	require.NoError(t, err)

	assert.Contains(t, job.RequiredSkills, "Python")
	assert.Contains(t, job.RequiredSkills, "Docker")
	assert.Contains(t, job.RequiredSkills, "Kubernetes")
	assert.Equal(t, 5.0, job.TargetYears, "target years should come from the JD mention")
}

func TestBuildJobConfigTargetWins(t *testing.T) {
	cfg := config.Default()
	cfg.TargetYears = 8
	e := newTestEngine(t, cfg)

	job, err := e.BuildJob(jobText)
	require.NoError(t, err)
	assert.Equal(t, 8.0, job.TargetYears)
}

func TestBuildJobEmptyText(t *testing.T) {
	e := newTestEngine(t, nil)

	_, err := e.BuildJob("   \n\t")
	require.ErrorIs(t, err, ErrEmptyJob)
}

func TestAnalyzeOne(t *testing.T) {
	e := newTestEngine(t, nil)

	breakdown, err := e.AnalyzeOne(context.Background(), jobText, strongResume)
	require.NoError(t, err)

	assert.Equal(t, "candidate", breakdown.SourceID)
	assert.Contains(t, breakdown.MatchedSkills, "Python")
	assert.Contains(t, breakdown.MatchedSkills, "Kubernetes")
	assert.Empty(t, breakdown.MissingSkills)
	assert.InDelta(t, 7.5, breakdown.ExperienceYears, 0.01, "Jan 2019 through Jun 2026")
	assert.Greater(t, breakdown.FinalScore, 50.0)
	assert.NotEmpty(t, breakdown.Explanation)
}

func TestAnalyzeBatchRanksStrongFirst(t *testing.T) {
	e := newTestEngine(t, nil)

	result, err := e.AnalyzeBatch(context.Background(), jobText, []Resume{
		{SourceID: "weak", Text: weakResume},
		{SourceID: "strong", Text: strongResume},
	})
	require.NoError(t, err)
	require.Len(t, result.Candidates, 2)

	assert.Equal(t, "strong", result.Candidates[0].SourceID)
	assert.Equal(t, "weak", result.Candidates[1].SourceID)
	assert.Greater(t, result.Candidates[0].FinalScore, result.Candidates[1].FinalScore)
}

func TestAnalyzeBatchAssignsPositionalIDs(t *testing.T) {
	e := newTestEngine(t, nil)

	result, err := e.AnalyzeBatch(context.Background(), jobText, []Resume{
		{Text: weakResume},
		{Text: strongResume},
	})
	require.NoError(t, err)

	ids := []string{result.Candidates[0].SourceID, result.Candidates[1].SourceID}
	assert.ElementsMatch(t, []string{"resume_001", "resume_002"}, ids)
}

func TestAnalyzeBatchDeterministic(t *testing.T) {
	e := newTestEngine(t, nil)
	resumes := []Resume{
		{SourceID: "a", Text: strongResume},
		{SourceID: "b", Text: weakResume},
		{SourceID: "c", Text: strongResume + "\nAlso familiar with Terraform."},
	}

	first, err := e.AnalyzeBatch(context.Background(), jobText, resumes)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := e.AnalyzeBatch(context.Background(), jobText, resumes)
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON))
	}
}

func TestAnalyzeBatchEmptyJob(t *testing.T) {
	e := newTestEngine(t, nil)

	_, err := e.AnalyzeBatch(context.Background(), "", []Resume{{SourceID: "a", Text: strongResume}})
	require.ErrorIs(t, err, ErrEmptyJob)
}

func TestAnalyzeBatchCancelledContext(t *testing.T) {
	e := newTestEngine(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.AnalyzeBatch(ctx, jobText, []Resume{{SourceID: "a", Text: strongResume}})
	require.Error(t, err)
}

func TestAnalyzeBatchNoResumes(t *testing.T) {
	e := newTestEngine(t, nil)

	result, err := e.AnalyzeBatch(context.Background(), jobText, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
	assert.NotEmpty(t, result.BatchID)
}

func TestScoreOneRecoversFromPanic(t *testing.T) {
	e := newTestEngine(t, nil)
	job, err := e.BuildJob(jobText)
	require.NoError(t, err)

	// Force a panic inside the extraction path by poisoning the extractor.
	e.extractor = nil

	breakdown := e.scoreOne(job, Resume{SourceID: "broken", Text: strongResume})
	assert.Equal(t, "broken", breakdown.SourceID)
	assert.Equal(t, 0.0, breakdown.ContentScore)
	assert.Equal(t, 0.0, breakdown.SkillScore)
	assert.ElementsMatch(t, job.RequiredSkills, breakdown.MissingSkills)
}
