//nolint:revive // types is a standard Go package name pattern
package types

// ScoredAccomplishment is the relevance of one accomplishment to one set of requirements.
// FinalScore = 0.4*SkillMatchScore + 0.3*SemanticScore + 0.2*RecencyScore + 0.1*MetricsScore.
type ScoredAccomplishment struct {
	AccomplishmentID string   `json:"accomplishment_id"`
	FinalScore       float64  `json:"final_score"`
	SkillMatchScore  float64  `json:"skill_match_score"`
	SemanticScore    float64  `json:"semantic_score"`
	RecencyScore     float64  `json:"recency_score"`
	MetricsScore     float64  `json:"metrics_score"`
	MatchedSkills    []string `json:"matched_skills"`
	Reasons          []string `json:"reasons"`
	// SkillScores holds the best match value found for every required and preferred skill.
	SkillScores map[string]float64 `json:"skill_scores,omitempty"`
}
