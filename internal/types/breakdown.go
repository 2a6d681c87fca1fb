// Package types provides type definitions for structured data used throughout the resume-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ScoreBreakdown represents the full scoring result for one candidate.
// All component scores are on a 0-100 scale.
type ScoreBreakdown struct {
	SourceID        string   `json:"source_id"`
	ContentScore    float64  `json:"content_score"`
	SkillScore      float64  `json:"skill_score"`
	ExperienceYears float64  `json:"experience_years"`
	FinalScore      float64  `json:"final_score"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	// ExtraSkills are resume skills the job did not ask for. Display only;
	// they never contribute to any score.
	ExtraSkills []string `json:"extra_skills,omitempty"`
	Explanation string   `json:"explanation"`
}

// RankedResult represents a completed batch analysis. Candidates are ordered
// strictly non-increasing by final score.
type RankedResult struct {
	BatchID string `json:"batch_id"`
	// AnalyzedAt is the timestamp used to resolve "present" in date ranges.
	AnalyzedAt time.Time        `json:"analyzed_at"`
	Job        JobRequirement   `json:"job"`
	Candidates []ScoreBreakdown `json:"candidates"`
}
