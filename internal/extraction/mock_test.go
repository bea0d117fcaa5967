package extraction

import (
	"context"
	"sync/atomic"

	"github.com/jonathan/resume-tailor/internal/llm"
)

// MockLLMClient is a mock implementation of llm.Client for testing
type MockLLMClient struct {
	GenerateJSONFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	calls            atomic.Int32
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return m.GenerateJSON(ctx, prompt, tier)
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	m.calls.Add(1)
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return `{"required_skills": [], "preferred_skills": []}`, nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string {
	return "mock-model"
}

func (m *MockLLMClient) Close() error {
	return nil
}

func (m *MockLLMClient) Calls() int {
	return int(m.calls.Load())
}

// stubExtractor returns a fixed outcome.
type stubExtractor struct {
	out   Outcome
	calls int
	panic bool
}

func (s *stubExtractor) Extract(_ context.Context, _ string) Outcome {
	s.calls++
	if s.panic {
		panic("boom")
	}
	return s.out
}
