package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/extraction"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/pipeline/steps"
	"github.com/jonathan/resume-tailor/internal/selection"
	"github.com/jonathan/resume-tailor/internal/types"
)

const scenarioPosting = `What You'll Do:
- Lead a team building Python services on AWS

Requirements:
- Python
- AWS
- Leadership
`

var refDate = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func scenarioRequest() Request {
	return Request{
		JobText: scenarioPosting,
		Accomplishments: []types.Accomplishment{
			{
				ID:        "a1",
				Text:      "Led team of 5 engineers building Python microservices on AWS, reduced hosting costs 35%",
				CompanyID: "acme",
				StartDate: "2022-01",
				IsCurrent: true,
			},
			{
				ID:        "a2",
				Text:      "Wrote internal documentation",
				CompanyID: "initech",
				StartDate: "2017-01",
				EndDate:   "2020-05",
			},
		},
		Config:        types.DefaultSelectionConfig(),
		ReferenceDate: refDate,
	}
}

// fakeClient is an llm.Client whose JSON responses come from a function.
type fakeClient struct {
	generate func(ctx context.Context) (string, error)
}

func (f *fakeClient) GenerateContent(ctx context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.generate(ctx)
}

func (f *fakeClient) GenerateJSON(ctx context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.generate(ctx)
}

func (f *fakeClient) GetModel(_ llm.ModelTier) string { return "fake" }

func (f *fakeClient) Close() error { return nil }

func remoteEngine(client llm.Client) *Engine {
	remote := extraction.NewRemoteExtractor(client, nil, nil,
		extraction.RemoteOptions{Timeout: 200 * time.Millisecond, Retries: 1, Backoff: time.Millisecond})
	return NewEngine(extraction.NewRequirementExtractor(nil, remote, nil), nil, nil, nil)
}

func TestTailor_Scenario(t *testing.T) {
	result, err := NewEngine(nil, nil, nil, nil).Tailor(context.Background(), scenarioRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.RequestID)
	assert.Equal(t, []string{"AWS", "Leadership", "Python"}, result.Requirements.RequiredSkills)
	assert.Equal(t, types.ExtractionLocal, result.Requirements.ExtractionMethod)

	require.Len(t, result.Scored, 2)
	a1, a2 := result.Scored[0], result.Scored[1]
	assert.Greater(t, a1.FinalScore, a2.FinalScore)
	assert.Subset(t, a1.MatchedSkills, []string{"Python", "AWS", "Leadership"})

	resume := result.Resume
	require.Len(t, resume.SelectedAccomplishments, 1)
	assert.Equal(t, "a1", resume.SelectedAccomplishments[0].AccomplishmentID)
	assert.Equal(t, 100.0, resume.CoveragePercentage)
	assert.Empty(t, resume.Gaps)
}

func TestTailor_CompoundWordsAndInlineSkillLists(t *testing.T) {
	req := scenarioRequest()
	req.JobText = "Requirements:\n- Python\n- Partner with our R&D group and C-suite\n\nSkills in Kubernetes and Terraform: must have"
	req.Accomplishments = []types.Accomplishment{{
		ID:        "k1",
		Text:      "Built Python services on Kubernetes, provisioned with Terraform",
		CompanyID: "acme",
		StartDate: "2023-01",
		IsCurrent: true,
	}}

	result, err := NewEngine(nil, nil, nil, nil).Tailor(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"Kubernetes", "Python", "Terraform"}, result.Requirements.RequiredSkills)
	require.Len(t, result.Resume.SelectedAccomplishments, 1)
	assert.Equal(t, 100.0, result.Resume.CoveragePercentage)
	assert.Empty(t, result.Resume.Gaps)
}

func TestTailor_EmptyAccomplishments(t *testing.T) {
	req := scenarioRequest()
	req.Accomplishments = nil

	result, err := NewEngine(nil, nil, nil, nil).Tailor(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, result.Resume.SelectedAccomplishments)
	assert.Equal(t, 0.0, result.Resume.CoveragePercentage)
	assert.Equal(t, result.Requirements.RequiredSkills, result.Resume.Gaps)
}

func TestTailor_Deterministic(t *testing.T) {
	first, err := NewEngine(nil, nil, nil, nil).Tailor(context.Background(), scenarioRequest())
	require.NoError(t, err)
	second, err := NewEngine(nil, nil, nil, nil).Tailor(context.Background(), scenarioRequest())
	require.NoError(t, err)

	a, err := json.Marshal(first.Resume)
	require.NoError(t, err)
	b, err := json.Marshal(second.Resume)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
	assert.NotEqual(t, first.RequestID, second.RequestID)
}

func TestTailor_EmptyJobText(t *testing.T) {
	req := scenarioRequest()
	req.JobText = "  \n "

	result, err := NewEngine(nil, nil, nil, nil).Tailor(context.Background(), req)
	assert.Nil(t, result)

	var vErr *extraction.ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.ErrorIs(t, err, extraction.ErrEmptyJobText)
}

func TestTailor_InvalidConfig(t *testing.T) {
	req := scenarioRequest()
	req.Config.CurrentRoleFloor = 1.5

	_, err := NewEngine(nil, nil, nil, nil).Tailor(context.Background(), req)
	var selErr *selection.Error
	assert.True(t, errors.As(err, &selErr))
}

func TestTailor_RemoteFailureFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		generate func(ctx context.Context) (string, error)
	}{
		{"malformed json", func(context.Context) (string, error) { return "not json at all", nil }},
		{"network error", func(context.Context) (string, error) { return "", errors.New("connection refused") }},
		{"timeout", func(ctx context.Context) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := scenarioRequest()
			req.Config.UseRemoteExtraction = true

			result, err := remoteEngine(&fakeClient{generate: tt.generate}).Tailor(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, types.ExtractionLocal, result.Requirements.ExtractionMethod)
			assert.Equal(t, []string{"AWS", "Leadership", "Python"}, result.Requirements.RequiredSkills)
			assert.Equal(t, 100.0, result.Resume.CoveragePercentage)
		})
	}
}

func TestTailor_RemoteSuccessIsHybrid(t *testing.T) {
	client := &fakeClient{generate: func(context.Context) (string, error) {
		return `{"required_skills": ["python", "aws", "leadership"], "preferred_skills": ["terraform"],
			"years_experience": 5, "education_level": null,
			"responsibilities": ["Lead a team building Python services on AWS"]}`, nil
	}}
	req := scenarioRequest()
	req.Config.UseRemoteExtraction = true

	result, err := remoteEngine(client).Tailor(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, types.ExtractionHybrid, result.Requirements.ExtractionMethod)
	assert.Equal(t, []string{"AWS", "Leadership", "Python"}, result.Requirements.RequiredSkills)
	assert.Equal(t, []string{"Terraform"}, result.Requirements.PreferredSkills)
	assert.GreaterOrEqual(t, result.Requirements.ConfidenceScore, 0.0)
	assert.LessOrEqual(t, result.Requirements.ConfidenceScore, 1.0)
}

func TestTailor_ProgressEvents(t *testing.T) {
	var events []ProgressEvent
	req := scenarioRequest()
	req.OnProgress = func(e ProgressEvent) { events = append(events, e) }

	result, err := NewEngine(nil, nil, nil, nil).Tailor(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, steps.StepExtract, events[0].Step)
	assert.Equal(t, steps.CategoryExtraction, events[0].Category)
	assert.Equal(t, steps.StepScore, events[1].Step)
	assert.Equal(t, steps.StepSelect, events[2].Step)
	assert.Same(t, result.Resume, events[2].Content)
	for _, e := range events {
		assert.Equal(t, result.RequestID.String(), e.RequestID)
		assert.NotEmpty(t, e.Message)
	}
}

func TestTailor_CancelledContextStillReturnsResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := scenarioRequest()
	req.Config.UseRemoteExtraction = true
	client := &fakeClient{generate: func(context.Context) (string, error) {
		t.Fatal("remote tier should not run on a cancelled context")
		return "", nil
	}}

	result, err := remoteEngine(client).Tailor(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, types.ExtractionLocal, result.Requirements.ExtractionMethod)
	assert.NotEmpty(t, result.Resume.SelectedAccomplishments)
}
