package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-ranker/internal/bias"
	"github.com/jonathan/resume-ranker/internal/types"
)

func TestPrintJobRequirement(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobRequirement{
		RequiredSkills: []string{"Python", "Docker", "Kubernetes"},
		TargetYears:    5,
	}

	p.PrintJobRequirement(job)
	output := buf.String()

	assert.Contains(t, output, "PARSED JOB REQUIREMENT")
	assert.Contains(t, output, "Target experience: 5.0 years")
	assert.Contains(t, output, "Python")
	assert.Contains(t, output, "Kubernetes")
}

func TestPrintJobRequirement_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirement(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobRequirement_NoSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirement(&types.JobRequirement{TargetYears: 3})

	assert.Contains(t, buf.String(), "No recognized required skills.")
}

func TestPrintJobRequirement_TruncatesLongList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobRequirement{
		RequiredSkills: []string{"Python", "Docker", "Kubernetes", "AWS", "Git", "Terraform", "React"},
	}

	p.PrintJobRequirement(job)
	output := buf.String()

	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "React")
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.RankedResult{
		Candidates: []types.ScoreBreakdown{
			{
				SourceID:        "jane_doe",
				ContentScore:    72.5,
				SkillScore:      100,
				ExperienceYears: 7.5,
				FinalScore:      84.0,
				MatchedSkills:   []string{"Python", "Docker"},
			},
			{
				SourceID:   "john_smith",
				FinalScore: 21.3,
			},
		},
	}

	p.PrintRanking(result)
	output := buf.String()

	assert.Contains(t, output, "RANKED CANDIDATES")
	assert.Contains(t, output, "Total candidates ranked: 2")
	assert.Contains(t, output, "#1  jane_doe")
	assert.Contains(t, output, "#2  john_smith")
	assert.Contains(t, output, "84.0")
}

func TestPrintRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking(nil)
	p.PrintRanking(&types.RankedResult{})

	assert.Empty(t, buf.String())
}

func TestPrintBiasReports(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	reports := []*bias.Report{
		{SourceID: "clean_resume"},
		{
			SourceID:       "flagged_resume",
			DetectedIssues: []string{"Masculine Term: he", "Year 1998 (Potential Age Trigger)"},
		},
	}

	p.PrintBiasReports(reports)
	output := buf.String()

	assert.Contains(t, output, "BIAS SIGNALS")
	assert.Contains(t, output, "Candidates with bias signals: 1")
	assert.Contains(t, output, "flagged_resume")
	assert.Contains(t, output, "Masculine Term: he")
	assert.NotContains(t, output, "clean_resume")
}

func TestPrintBiasReports_AllClean(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBiasReports([]*bias.Report{{SourceID: "a"}, nil})

	assert.Empty(t, buf.String())
}
