// Package steps defines the tailoring pipeline's steps and tracks their
// dependencies within one run.
package steps

import (
	"fmt"
	"sort"
	"sync"
)

// Step names.
const (
	StepExtract = "extract"
	StepScore   = "score"
	StepSelect  = "select"
)

// Step categories.
const (
	CategoryExtraction = "extraction"
	CategoryMatching   = "matching"
	CategorySelection  = "selection"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	StepExtract: {
		Name:         StepExtract,
		Category:     CategoryExtraction,
		Dependencies: []string{},
	},
	StepScore: {
		Name:         StepScore,
		Category:     CategoryMatching,
		Dependencies: []string{StepExtract},
	},
	StepSelect: {
		Name:         StepSelect,
		Category:     CategorySelection,
		Dependencies: []string{StepExtract, StepScore},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// Tracker records completed steps for one run.
type Tracker struct {
	mu        sync.Mutex
	completed map[string]bool
}

// NewTracker creates a Tracker with nothing completed.
func NewTracker() *Tracker {
	return &Tracker{completed: make(map[string]bool)}
}

// Category returns the category of a registered step.
func Category(stepName string) string {
	return StepRegistry[stepName].Category
}

// ValidateDependencies checks if all required dependencies for a step are completed
func (t *Tracker) ValidateDependencies(stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var missing []string
	for _, dep := range def.Dependencies {
		if !t.completed[dep] {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		return &DependencyError{Step: stepName, MissingDependencies: missing}
	}
	return nil
}

// Complete marks a step as done.
func (t *Tracker) Complete(stepName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed[stepName] = true
}

// Completed reports whether a step is done.
func (t *Tracker) Completed(stepName string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed[stepName]
}

// AvailableSteps returns steps that are not done and whose dependencies are met, sorted by name.
func (t *Tracker) AvailableSteps() []string {
	var available []string
	for stepName := range StepRegistry {
		if t.Completed(stepName) {
			continue
		}
		if err := t.ValidateDependencies(stepName); err != nil {
			continue
		}
		available = append(available, stepName)
	}
	sort.Strings(available)
	return available
}

// BlockedSteps returns steps that are not done and still wait on a dependency, sorted by name.
func (t *Tracker) BlockedSteps() []string {
	var blocked []string
	for stepName := range StepRegistry {
		if t.Completed(stepName) {
			continue
		}
		if err := t.ValidateDependencies(stepName); err != nil {
			blocked = append(blocked, stepName)
		}
	}
	sort.Strings(blocked)
	return blocked
}
