package ranking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/embedding"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Scorer is the accomplishment scorer. It owns the embedding cache for the
// accomplishments it has seen; hosts should keep one Scorer per profile.
type Scorer struct {
	vocab    *skills.Vocabulary
	embedder *embedding.Embedder
	log      *zap.Logger
}

// NewScorer creates a Scorer. A nil vocabulary uses skills.Default and a nil
// embedder uses the hashing model with a fresh cache.
func NewScorer(vocab *skills.Vocabulary, embedder *embedding.Embedder, log *zap.Logger) *Scorer {
	log = logger.OrNop(log)
	if vocab == nil {
		vocab = skills.Default()
	}
	if embedder == nil {
		embedder = embedding.NewEmbedder(nil, nil, log)
	}
	return &Scorer{vocab: vocab, embedder: embedder, log: log.Named("scorer")}
}

// CacheLen returns the number of cached accomplishment vectors.
func (s *Scorer) CacheLen() int {
	return s.embedder.Cache().Len()
}

// InvalidateCache drops cached vectors for ids, or every vector when no id is given.
func (s *Scorer) InvalidateCache(ids ...string) {
	if len(ids) == 0 {
		s.embedder.Cache().Clear()
		return
	}
	for _, id := range ids {
		s.embedder.Cache().Invalidate(id)
	}
}

// Score returns one ScoredAccomplishment per accomplishment, in input order.
// Accomplishments with blank text score zero on every component. ref is the
// date recency is measured against.
func (s *Scorer) Score(ctx context.Context, req *types.JobRequirements, accs []types.Accomplishment, ref time.Time) []types.ScoredAccomplishment {
	if req == nil {
		req = &types.JobRequirements{}
	}
	out := make([]types.ScoredAccomplishment, len(accs))
	if len(accs) == 0 {
		return out
	}

	jobVec, jobSource := s.jobVector(ctx, req)
	var accVecs [][]float32
	if jobVec != nil {
		var errs []error
		accVecs, errs = s.embedder.EmbedBatch(ctx, slice.Map(accs, func(_ int, a types.Accomplishment) embedding.Item {
			return embedding.Item{ID: a.ID, Text: a.Text}
		}))
		for i, err := range errs {
			if err != nil {
				s.log.Warn("embedding failed, semantic score set to zero",
					zap.String("accomplishment_id", accs[i].ID), zap.Error(err))
			}
		}
	}

	for i, acc := range accs {
		var vec []float32
		if accVecs != nil {
			vec = accVecs[i]
		}
		out[i] = s.scoreOne(acc, req, jobVec, jobSource, vec, ref)
	}

	s.log.Debug("scored accomplishments",
		zap.Int("count", len(out)),
		zap.Int("cache_size", s.CacheLen()))
	return out
}

// jobVector embeds the responsibilities, or the skill lists when the posting
// yielded no responsibilities. A nil vector disables semantic scoring.
func (s *Scorer) jobVector(ctx context.Context, req *types.JobRequirements) ([]float32, string) {
	text, source := strings.Join(req.KeyResponsibilities, "\n"), "job responsibilities"
	if strings.TrimSpace(text) == "" {
		text = strings.Join(append(append([]string{}, req.RequiredSkills...), req.PreferredSkills...), ", ")
		source = "job skills"
	}
	if strings.TrimSpace(text) == "" {
		return nil, ""
	}
	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		s.log.Warn("job embedding failed, semantic scores set to zero", zap.Error(err))
		return nil, ""
	}
	return vec, source
}

func (s *Scorer) scoreOne(
	acc types.Accomplishment,
	req *types.JobRequirements,
	jobVec []float32,
	jobSource string,
	accVec []float32,
	ref time.Time,
) types.ScoredAccomplishment {
	scored := types.ScoredAccomplishment{
		AccomplishmentID: acc.ID,
		MatchedSkills:    []string{},
		Reasons:          []string{},
	}
	if strings.TrimSpace(acc.Text) == "" {
		scored.Reasons = append(scored.Reasons, "no text to score")
		return scored
	}

	skill := computeSkillMatchScore(s.vocab, skills.NewDocument(acc.Text), req)
	semantic := 0.0
	if jobVec != nil && accVec != nil {
		semantic = embedding.UnitCosine(jobVec, accVec)
	}
	recency, recencyReason := computeRecencyScore(acc, ref)
	signals := detectMetrics(acc.Text)
	metrics := computeMetricsScore(signals)

	scored.SkillMatchScore = skill.score
	scored.SemanticScore = semantic
	scored.RecencyScore = recency
	scored.MetricsScore = metrics
	scored.FinalScore = combine(skill.score, semantic, recency, metrics)
	scored.MatchedSkills = skill.matched
	if len(skill.scores) > 0 {
		scored.SkillScores = skill.scores
	}
	scored.Reasons = buildReasons(skill, semantic, jobSource, recencyReason, signals, acc.Text)
	return scored
}

// buildReasons lists one short phrase per factor that contributed to the score.
func buildReasons(
	skill skillResult,
	semantic float64,
	jobSource string,
	recencyReason string,
	signals metricsSignals,
	text string,
) []string {
	reasons := make([]string, 0, len(skill.matches)+4)
	for _, m := range skill.matches {
		reasons = append(reasons, skillReason(m))
	}
	if semantic > 0 {
		reasons = append(reasons, fmt.Sprintf("similar to %s (%.2f)", jobSource, semantic))
	}
	reasons = append(reasons, recencyReason)
	if signals.quantified() {
		reasons = append(reasons, "contains quantified impact")
	}
	if signals.actionVerb {
		reasons = append(reasons, fmt.Sprintf("starts with action verb: %s", skills.Tokenize(text)[0].Raw))
	}
	return reasons
}

func skillReason(m weightedMatch) string {
	class := "preferred"
	if m.required {
		class = "required"
	}
	switch m.Kind {
	case skills.MatchExact:
		return fmt.Sprintf("matches %s skill: %s", class, m.Skill)
	case skills.MatchRelated:
		return fmt.Sprintf("related to %s skill: %s (via %s)", class, m.Skill, m.Via)
	default:
		return fmt.Sprintf("matches %s skill: %s (%s via %s)", class, m.Skill, m.Kind, m.Via)
	}
}
