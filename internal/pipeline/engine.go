package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/extraction"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/pipeline/steps"
	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/selection"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Request is one tailoring request.
type Request struct {
	JobText         string
	Accomplishments []types.Accomplishment
	Config          types.SelectionConfig
	// ReferenceDate anchors recency scoring. Zero means the current time.
	ReferenceDate time.Time
	OnProgress    ProgressCallback
}

// Result holds every intermediate and final output of a request.
type Result struct {
	RequestID    uuid.UUID                    `json:"request_id"`
	Requirements *types.JobRequirements       `json:"requirements"`
	Scored       []types.ScoredAccomplishment `json:"scored"`
	Resume       *types.TailoredResume        `json:"resume"`
}

// Engine runs the extractor, scorer and selector in sequence. Hosts should
// keep one Engine per profile so the scorer's embedding cache stays scoped.
type Engine struct {
	extractor *extraction.RequirementExtractor
	scorer    *ranking.Scorer
	selector  *selection.Selector
	log       *zap.Logger
}

// NewEngine wires an Engine. Nil components get local-only defaults.
func NewEngine(
	extractor *extraction.RequirementExtractor,
	scorer *ranking.Scorer,
	selector *selection.Selector,
	log *zap.Logger,
) *Engine {
	log = logger.OrNop(log)
	if extractor == nil {
		extractor = extraction.NewRequirementExtractor(nil, nil, log)
	}
	if scorer == nil {
		scorer = ranking.NewScorer(nil, nil, log)
	}
	if selector == nil {
		selector = selection.NewSelector(log)
	}
	return &Engine{extractor: extractor, scorer: scorer, selector: selector, log: log.Named("pipeline")}
}

// Scorer returns the engine's scorer, for cache management.
func (e *Engine) Scorer() *ranking.Scorer {
	return e.scorer
}

// Tailor runs one request. It fails only on empty job text or an invalid
// selection config; every other problem degrades the result instead.
// Cancelling ctx after extraction has started still yields a result.
func (e *Engine) Tailor(ctx context.Context, req Request) (*Result, error) {
	if err := selection.ValidateConfig(req.Config); err != nil {
		return nil, err
	}

	requestID := uuid.New()
	log := logger.WithRequest(e.log, requestID.String())
	tracker := steps.NewTracker()
	emit := func(step, message string, content any) {
		tracker.Complete(step)
		if req.OnProgress != nil {
			req.OnProgress(ProgressEvent{
				Step:      step,
				Category:  steps.Category(step),
				Message:   message,
				RequestID: requestID.String(),
				Content:   content,
			})
		}
	}

	ref := req.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}
	start := time.Now()

	requirements, err := e.extractor.Extract(ctx, req.JobText, req.Config.UseRemoteExtraction)
	if err != nil {
		return nil, err
	}
	emit(steps.StepExtract, fmt.Sprintf("Extracted %d required and %d preferred skills (%s, confidence %.2f)",
		len(requirements.RequiredSkills), len(requirements.PreferredSkills),
		requirements.ExtractionMethod, requirements.ConfidenceScore), requirements)

	if err := tracker.ValidateDependencies(steps.StepScore); err != nil {
		return nil, err
	}
	scored := e.scorer.Score(ctx, requirements, req.Accomplishments, ref)
	emit(steps.StepScore, fmt.Sprintf("Scored %d accomplishments", len(scored)), scored)

	if err := tracker.ValidateDependencies(steps.StepSelect); err != nil {
		return nil, err
	}
	resume, err := e.selector.Select(scored, req.Accomplishments, requirements, req.Config)
	if err != nil {
		return nil, err
	}
	emit(steps.StepSelect, fmt.Sprintf("Selected %d accomplishments, %.0f%% coverage, %d gaps",
		len(resume.SelectedAccomplishments), resume.CoveragePercentage, len(resume.Gaps)), resume)

	log.Info("tailoring complete",
		zap.String("extraction_method", string(requirements.ExtractionMethod)),
		zap.Int("accomplishments", len(req.Accomplishments)),
		zap.Int("selected", len(resume.SelectedAccomplishments)),
		zap.Float64("coverage", resume.CoveragePercentage),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{
		RequestID:    requestID,
		Requirements: requirements,
		Scored:       scored,
		Resume:       resume,
	}, nil
}
