// Package types provides type definitions for structured data used throughout the resume-tailor engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExtractionMethod records which extraction tiers produced a JobRequirements.
type ExtractionMethod string

const (
	// ExtractionLocal means only the local pattern tier contributed. It is also the
	// degraded state when the remote tier was requested but failed.
	ExtractionLocal ExtractionMethod = "local"
	// ExtractionRemote means the remote tier result was used on its own.
	ExtractionRemote ExtractionMethod = "remote"
	// ExtractionHybrid means local and remote results were merged.
	ExtractionHybrid ExtractionMethod = "hybrid"
)

// JobRequirements is the structured view of a job posting.
// RequiredSkills and PreferredSkills are sorted, de-duplicated and disjoint.
type JobRequirements struct {
	RequiredSkills      []string         `json:"required_skills"`
	PreferredSkills     []string         `json:"preferred_skills"`
	YearsExperience     *int             `json:"years_experience"`
	EducationLevel      *string          `json:"education_level"`
	KeyResponsibilities []string         `json:"key_responsibilities"`
	ConfidenceScore     float64          `json:"confidence_score"`
	ExtractionMethod    ExtractionMethod `json:"extraction_method"`
}
