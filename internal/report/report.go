// Package report renders ranked results as shareable markdown comparison
// reports.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	// maxStrengths caps the key-strengths list in the executive summary.
	maxStrengths = 5
	// maxMatrixSkills caps skill-matrix columns so the table stays readable.
	maxMatrixSkills = 8
)

// Comparison builds a markdown report comparing the top N ranked candidates.
// Zero or negative topN reports on every candidate.
func Comparison(result *types.RankedResult, topN int) string {
	if result == nil || len(result.Candidates) == 0 {
		return "No candidates to report on.\n"
	}

	top := result.Candidates
	if topN > 0 && topN < len(top) {
		top = top[:topN]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Candidate Comparison Report (Top %d)\n\n", len(top))

	writeSummary(&sb, &top[0])
	writeHeadToHead(&sb, top)
	writeSkillMatrix(&sb, top)

	return sb.String()
}

func writeSummary(sb *strings.Builder, best *types.ScoreBreakdown) {
	sb.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(sb, "**Top Recommendation:** %s\n\n", best.SourceID)
	fmt.Fprintf(sb, "- **Score:** %.1f/100\n", best.FinalScore)
	fmt.Fprintf(sb, "- **Experience:** %.1f years\n", best.ExperienceYears)

	strengths := best.MatchedSkills
	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	if len(strengths) > 0 {
		fmt.Fprintf(sb, "- **Key Strengths:** %s\n", strings.Join(strengths, ", "))
	}
	sb.WriteString("\n")
}

func writeHeadToHead(sb *strings.Builder, top []types.ScoreBreakdown) {
	sb.WriteString("## Head-to-Head Comparison\n\n")
	sb.WriteString("| Candidate | Score | Experience | Skill Match % |\n")
	sb.WriteString("| :--- | :---: | :---: | :---: |\n")
	for i := range top {
		cand := &top[i]
		fmt.Fprintf(sb, "| %s | %.1f | %.1f yr | %.1f%% |\n",
			cand.SourceID, cand.FinalScore, cand.ExperienceYears, cand.SkillScore)
	}
	sb.WriteString("\n")
}

// writeSkillMatrix renders a checkmark grid over the union of matched skills.
func writeSkillMatrix(sb *strings.Builder, top []types.ScoreBreakdown) {
	union := make(map[string]struct{})
	for i := range top {
		for _, skill := range top[i].MatchedSkills {
			union[skill] = struct{}{}
		}
	}
	if len(union) == 0 {
		return
	}

	skills := make([]string, 0, len(union))
	for skill := range union {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	if len(skills) > maxMatrixSkills {
		skills = skills[:maxMatrixSkills]
	}

	sb.WriteString("## Skill Matrix\n\n")
	fmt.Fprintf(sb, "| Candidate | %s |\n", strings.Join(skills, " | "))
	sb.WriteString("| :--- |" + strings.Repeat(" :---: |", len(skills)) + "\n")

	for i := range top {
		cand := &top[i]
		matched := make(map[string]struct{}, len(cand.MatchedSkills))
		for _, skill := range cand.MatchedSkills {
			matched[skill] = struct{}{}
		}

		cells := make([]string, 0, len(skills))
		for _, skill := range skills {
			if _, ok := matched[skill]; ok {
				cells = append(cells, "✓")
			} else {
				cells = append(cells, "-")
			}
		}
		fmt.Fprintf(sb, "| %s | %s |\n", cand.SourceID, strings.Join(cells, " | "))
	}
	sb.WriteString("\n")
}
