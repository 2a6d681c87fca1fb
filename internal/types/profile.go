// Package types provides type definitions for structured data used throughout the resume-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile represents the entities extracted from a single resume.
// A Profile is built once per resume and never mutated afterwards.
type Profile struct {
	SourceID         string   `json:"source_id"`
	RawText          string   `json:"-"`
	Emails           []string `json:"emails"`
	Phones           []string `json:"phones"`
	Skills           []string `json:"skills"`
	ExperienceMonths int      `json:"experience_months"`
}

// ExperienceYears returns the computed work history as fractional years.
func (p *Profile) ExperienceYears() float64 {
	return float64(p.ExperienceMonths) / 12.0
}
