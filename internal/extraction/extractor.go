// Package extraction turns job-posting text into structured requirements
// using an offline tier and an optional LLM tier.
package extraction

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/types"
)

// RequirementExtractor runs the local tier, optionally the remote tier, and
// merges them. Only empty input is an error.
type RequirementExtractor struct {
	local  Extractor
	remote Extractor
	merger Merger
	log    *zap.Logger
}

// NewRequirementExtractor wires the tiers. remote may be nil when no LLM is
// configured; requests for remote extraction then return the local result.
func NewRequirementExtractor(local, remote Extractor, log *zap.Logger) *RequirementExtractor {
	if local == nil {
		local = NewLocalExtractor(nil)
	}
	return &RequirementExtractor{
		local:  local,
		remote: remote,
		log:    logger.OrNop(log).Named("extractor"),
	}
}

// Extract returns the requirements for jobText. Remote failures, timeouts and
// cancellation after the local tier fall back to the local result.
func (x *RequirementExtractor) Extract(ctx context.Context, jobText string, useRemote bool) (*types.JobRequirements, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, &ValidationError{Message: "cannot extract requirements", Cause: ErrEmptyJobText}
	}

	local := x.local.Extract(ctx, jobText)
	x.log.Debug("local extraction complete",
		zap.Int("required", len(local.RequiredSkills)),
		zap.Int("preferred", len(local.PreferredSkills)),
		zap.Int("signals", local.Signals()))

	if !useRemote {
		return local.Requirements(), nil
	}
	if x.remote == nil {
		x.log.Warn("remote extraction requested but no LLM client is configured")
		return local.Requirements(), nil
	}
	if err := ctx.Err(); err != nil {
		x.log.Warn("skipping remote extraction", zap.Error(err))
		return local.Requirements(), nil
	}

	remote := x.runRemote(ctx, jobText)
	if remote.Degraded() {
		x.log.Warn("remote extraction failed, using local result", zap.Error(remote.Err))
	}
	return x.merger.Merge(local, remote), nil
}

// runRemote shields the caller from a misbehaving remote tier.
func (x *RequirementExtractor) runRemote(ctx context.Context, jobText string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{
				Source: types.ExtractionRemote,
				Err:    &RemoteError{Op: "call", Cause: fmt.Errorf("panic: %v", r)},
			}
		}
	}()
	return x.remote.Extract(ctx, jobText)
}
