// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ranker/internal/bias"
	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRequirement outputs a human-readable summary of the parsed job.
func (p *Printer) PrintJobRequirement(job *types.JobRequirement) {
	if job == nil {
		return
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "Target experience: %.1f years\n\n", job.TargetYears)

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("Required skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			fmt.Fprintf(&sb, "  • %s\n", job.RequiredSkills[i])
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			fmt.Fprintf(&sb, "  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow)
		}
	} else {
		sb.WriteString("No recognized required skills.\n")
	}

	p.printBox("PARSED JOB REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top candidates with their score breakdowns.
func (p *Printer) PrintRanking(result *types.RankedResult) {
	if result == nil || len(result.Candidates) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total candidates ranked: %d\n\n", len(result.Candidates))

	count := min(len(result.Candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		cand := &result.Candidates[i]
		fmt.Fprintf(&sb, "#%d  %s\n", i+1, cand.SourceID)
		fmt.Fprintf(&sb, "    Final: %.1f (content %.1f, skills %.1f, %.1f yrs)\n",
			cand.FinalScore, cand.ContentScore, cand.SkillScore, cand.ExperienceYears)
		if len(cand.MatchedSkills) > 0 {
			skills := strings.Join(cand.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			fmt.Fprintf(&sb, "    Skills: %s\n", skills)
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Candidates) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more candidates", len(result.Candidates)-maxItemsToShow)
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}

// PrintBiasReports outputs bias findings for candidates that have any.
func (p *Printer) PrintBiasReports(reports []*bias.Report) {
	flagged := 0
	for _, report := range reports {
		if report != nil && !report.Clean() {
			flagged++
		}
	}
	if flagged == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Candidates with bias signals: %d\n", flagged)

	for _, report := range reports {
		if report == nil || report.Clean() {
			continue
		}
		fmt.Fprintf(&sb, "\n⚠ %s:\n", report.SourceID)
		count := min(len(report.DetectedIssues), maxItemsToShow)
		for i := 0; i < count; i++ {
			fmt.Fprintf(&sb, "  • %s\n", report.DetectedIssues[i])
		}
		if len(report.DetectedIssues) > maxItemsToShow {
			fmt.Fprintf(&sb, "  ... and %d more\n", len(report.DetectedIssues)-maxItemsToShow)
		}
	}

	p.printBox("BIAS SIGNALS", strings.TrimSuffix(sb.String(), "\n"))
}
