package steps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepRegistry(t *testing.T) {
	expectedSteps := []string{StepExtract, StepScore, StepSelect}

	for _, stepName := range expectedSteps {
		def, ok := StepRegistry[stepName]
		require.True(t, ok, "Step %s should be in registry", stepName)
		assert.Equal(t, stepName, def.Name)
		assert.NotEmpty(t, def.Category)
	}
	assert.Len(t, StepRegistry, len(expectedSteps))
}

func TestStepRegistryCategories(t *testing.T) {
	assert.Equal(t, CategoryExtraction, Category(StepExtract))
	assert.Equal(t, CategoryMatching, Category(StepScore))
	assert.Equal(t, CategorySelection, Category(StepSelect))
	assert.Empty(t, Category("render"))
}

func TestDependencyError(t *testing.T) {
	err := &DependencyError{
		Step:                "test_step",
		MissingDependencies: []string{"dep1", "dep2"},
	}

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing dependencies")
	assert.Equal(t, "test_step", err.Step)
	assert.Equal(t, []string{"dep1", "dep2"}, err.MissingDependencies)
}

func TestTracker_Progression(t *testing.T) {
	tracker := NewTracker()

	assert.Equal(t, []string{StepExtract}, tracker.AvailableSteps())
	assert.Equal(t, []string{StepScore, StepSelect}, tracker.BlockedSteps())

	err := tracker.ValidateDependencies(StepSelect)
	var depErr *DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, []string{StepExtract, StepScore}, depErr.MissingDependencies)

	tracker.Complete(StepExtract)
	assert.Equal(t, []string{StepScore}, tracker.AvailableSteps())
	assert.NoError(t, tracker.ValidateDependencies(StepScore))

	tracker.Complete(StepScore)
	tracker.Complete(StepSelect)
	assert.Empty(t, tracker.AvailableSteps())
	assert.Empty(t, tracker.BlockedSteps())
	assert.True(t, tracker.Completed(StepSelect))
}

func TestTracker_UnknownStep(t *testing.T) {
	err := NewTracker().ValidateDependencies("render_latex")
	assert.EqualError(t, err, "unknown step: render_latex")
}
