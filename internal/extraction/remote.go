package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Remote tier defaults.
const (
	DefaultRemoteTimeout = 5 * time.Second
	DefaultRemoteRetries = 1
	DefaultRemoteBackoff = 250 * time.Millisecond
)

// canonicalExamples are shown to the model so it answers in vocabulary names.
const canonicalExamples = "Python, Go, JavaScript, React, Node.js, AWS, Kubernetes, PostgreSQL, CI/CD, Leadership"

// RemoteOptions tunes the remote tier.
type RemoteOptions struct {
	// Timeout bounds the whole remote stage, retries included.
	Timeout time.Duration
	// Retries is the number of extra attempts after a transient failure.
	Retries int
	// Backoff is the wait before the first retry.
	Backoff time.Duration
	Tier    llm.ModelTier
}

// DefaultRemoteOptions returns a 5s budget with one retry.
func DefaultRemoteOptions() RemoteOptions {
	return RemoteOptions{
		Timeout: DefaultRemoteTimeout,
		Retries: DefaultRemoteRetries,
		Backoff: DefaultRemoteBackoff,
		Tier:    llm.TierStandard,
	}
}

// RemoteExtractor asks an LLM for structured requirements. Every failure is
// reported as a degraded Outcome.
type RemoteExtractor struct {
	client llm.Client
	vocab  *skills.Vocabulary
	opts   RemoteOptions
	log    *zap.Logger
}

// NewRemoteExtractor creates the remote tier. A zero Timeout, Backoff or Tier
// falls back to the default; Retries <= 0 disables retrying.
func NewRemoteExtractor(client llm.Client, vocab *skills.Vocabulary, log *zap.Logger, opts RemoteOptions) *RemoteExtractor {
	def := DefaultRemoteOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.Backoff <= 0 {
		opts.Backoff = def.Backoff
	}
	if opts.Tier == "" {
		opts.Tier = def.Tier
	}
	if vocab == nil {
		vocab = skills.Default()
	}
	log = logger.OrNop(log).Named("remote-extractor")
	if client != nil {
		log = logger.WithModel(log, string(llm.ProviderGemini), client.GetModel(opts.Tier))
	}
	return &RemoteExtractor{client: client, vocab: vocab, opts: opts, log: log}
}

// Extract calls the model within the configured time budget.
func (r *RemoteExtractor) Extract(ctx context.Context, jobText string) Outcome {
	out := Outcome{Source: types.ExtractionRemote}
	if r.client == nil {
		out.Err = &RemoteError{Op: "call", Cause: fmt.Errorf("no LLM client configured")}
		return out
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	raw, attempts, err := r.generate(ctx, buildRemotePrompt(jobText))
	if err != nil {
		out.Err = &RemoteError{Op: "call", Attempts: attempts, Transient: llm.IsTransient(err), Cause: err}
		return out
	}

	parsed, err := r.parse(raw)
	if err != nil {
		r.log.Debug("rejected remote response", zap.String("response", logger.TruncateForLog(raw, 200)))
		out.Err = &RemoteError{Op: "parse", Attempts: attempts, Cause: err}
		return out
	}
	return parsed
}

// generate performs the call, retrying transient failures while the budget
// allows. Malformed or unauthorized responses are not retried.
func (r *RemoteExtractor) generate(ctx context.Context, prompt string) (string, int, error) {
	var strategy *retry.ExponentialBackoffRetryStrategy
	if r.opts.Retries > 0 {
		s, err := retry.NewExponentialBackoffRetryStrategy(r.opts.Backoff, r.opts.Backoff*4, int32(r.opts.Retries))
		if err != nil {
			return "", 0, fmt.Errorf("invalid retry settings: %w", err)
		}
		strategy = s
	}

	for attempt := 1; ; attempt++ {
		raw, err := r.client.GenerateJSON(ctx, prompt, r.opts.Tier)
		if err == nil {
			return raw, attempt, nil
		}
		if strategy == nil || !llm.IsTransient(err) || ctx.Err() != nil {
			return "", attempt, err
		}
		wait, ok := strategy.Next()
		if !ok {
			return "", attempt, err
		}
		r.log.Info("retrying remote extraction",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", attempt, ctx.Err()
		case <-timer.C:
		}
	}
}

func buildRemotePrompt(jobText string) string {
	schema := llm.RequirementsSchema()
	hint, err := prompts.Render("extraction.json", "canonical-names", map[string]string{
		"Examples": canonicalExamples,
	})
	if err == nil {
		schema.Description += "\n" + hint
	}
	return llm.BuildExtractionPrompt(schema, jobText)
}

type remoteResponse struct {
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	YearsExperience  *int     `json:"years_experience"`
	EducationLevel   *string  `json:"education_level"`
	Responsibilities []string `json:"responsibilities"`
}

// parse validates the response shape and canonicalizes its contents.
func (r *RemoteExtractor) parse(raw string) (Outcome, error) {
	raw = llm.CleanJSONBlock(raw)
	if err := schemas.ValidateRemoteRequirements(raw); err != nil {
		return Outcome{}, err
	}

	var resp remoteResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return Outcome{}, fmt.Errorf("failed to decode remote response: %w", err)
	}

	out := Outcome{
		Source:         types.ExtractionRemote,
		RequiredSkills: r.vocab.NormalizeSet(resp.RequiredSkills),
	}
	out.PreferredSkills = subtract(r.vocab.NormalizeSet(resp.PreferredSkills), out.RequiredSkills)

	if resp.YearsExperience != nil && *resp.YearsExperience > 0 && *resp.YearsExperience <= maxYears {
		years := *resp.YearsExperience
		out.YearsExperience = &years
	}
	if resp.EducationLevel != nil {
		if level := NormalizeEducationLevel(*resp.EducationLevel); level != "" {
			out.EducationLevel = &level
		}
	}

	duties := make([]string, 0, len(resp.Responsibilities))
	for _, d := range resp.Responsibilities {
		duties = append(duties, strings.TrimSpace(d))
	}
	out.Responsibilities = firstUnique(duties, maxResponsibilities)
	return out, nil
}
