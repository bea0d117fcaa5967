//nolint:revive // types is a standard Go package name pattern
package types

// TailoredResume is the selection and coverage analysis for one job.
type TailoredResume struct {
	SelectedAccomplishments []ScoredAccomplishment `json:"selected_accomplishments"`
	SkillCoverage           map[string]bool        `json:"skill_coverage"`
	CoveragePercentage      float64                `json:"coverage_percentage"`
	Gaps                    []string               `json:"gaps"`
	Recommendations         []string               `json:"recommendations"`
}
