// Package types provides type definitions for structured data used throughout the resume-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobRequirement represents a parsed job description shared read-only across
// all candidate scorings in a batch.
type JobRequirement struct {
	RawText        string   `json:"-"`
	RequiredSkills []string `json:"required_skills"`
	// TargetYears is the experience target used for the saturating
	// experience score. Zero means "use the configured default".
	TargetYears float64 `json:"target_years,omitempty"`
}
