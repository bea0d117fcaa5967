package selection

import (
	"github.com/ecodeclub/ekit/slice"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Selector is the resume selector. It holds no state between calls.
type Selector struct {
	log *zap.Logger
}

// NewSelector creates a Selector.
func NewSelector(log *zap.Logger) *Selector {
	return &Selector{log: logger.OrNop(log).Named("selector")}
}

// Select picks accomplishments under cfg's threshold and quotas, then
// computes required-skill coverage, gaps and recommendations. It fails only
// when cfg is invalid; empty inputs give an empty selection.
func (s *Selector) Select(
	scored []types.ScoredAccomplishment,
	accs []types.Accomplishment,
	req *types.JobRequirements,
	cfg types.SelectionConfig,
) (*types.TailoredResume, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if req == nil {
		req = &types.JobRequirements{}
	}

	byID := slice.ToMap(accs, func(a types.Accomplishment) string { return a.ID })
	ranked := rankCandidates(scored, byID, cfg.MinimumScore)
	selected := selectGreedy(ranked, cfg)

	covered, pct, gaps := coverage(req.RequiredSkills, selected)
	resume := &types.TailoredResume{
		SelectedAccomplishments: selected,
		SkillCoverage:           covered,
		CoveragePercentage:      pct,
		Gaps:                    gaps,
		Recommendations:         recommend(gaps, scored),
	}

	s.log.Debug("selected accomplishments",
		zap.Int("candidates", len(scored)),
		zap.Int("qualifying", len(ranked)),
		zap.Int("selected", len(selected)),
		zap.Int("current_role", countCurrent(selected, byID)),
		zap.Float64("coverage", pct),
		zap.Int("gaps", len(gaps)))
	return resume, nil
}

// ValidateConfig reports an invalid SelectionConfig as an *Error.
func ValidateConfig(cfg types.SelectionConfig) error {
	if err := cfg.Validate(); err != nil {
		return &Error{Message: "invalid selection config", Cause: err}
	}
	return nil
}

func countCurrent(selected []types.ScoredAccomplishment, byID map[string]types.Accomplishment) int {
	n := 0
	for _, s := range selected {
		if byID[s.AccomplishmentID].IsCurrent {
			n++
		}
	}
	return n
}
