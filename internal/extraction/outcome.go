package extraction

import (
	"context"

	"github.com/jonathan/resume-tailor/internal/types"
)

// signalKinds is the number of signal types a posting can yield: skills,
// experience, education and responsibilities.
const signalKinds = 4

// Outcome is the result of one extraction tier. A tier that fails returns a
// degraded Outcome carrying Err instead of returning an error.
type Outcome struct {
	Source           types.ExtractionMethod
	RequiredSkills   []string
	PreferredSkills  []string
	YearsExperience  *int
	EducationLevel   *string
	Responsibilities []string
	Err              error
}

// Degraded reports whether the tier failed to produce a usable result.
func (o Outcome) Degraded() bool {
	return o.Err != nil
}

// Signals counts how many signal types the outcome found.
func (o Outcome) Signals() int {
	n := 0
	if len(o.RequiredSkills)+len(o.PreferredSkills) > 0 {
		n++
	}
	if o.YearsExperience != nil {
		n++
	}
	if o.EducationLevel != nil {
		n++
	}
	if len(o.Responsibilities) > 0 {
		n++
	}
	return n
}

// Coverage is the fraction of signal types found.
func (o Outcome) Coverage() float64 {
	return float64(o.Signals()) / signalKinds
}

// Requirements converts the outcome into a JobRequirements record with a
// confidence equal to its signal coverage.
func (o Outcome) Requirements() *types.JobRequirements {
	required := nonNil(o.RequiredSkills)
	preferred := subtract(nonNil(o.PreferredSkills), required)
	return &types.JobRequirements{
		RequiredSkills:      required,
		PreferredSkills:     preferred,
		YearsExperience:     o.YearsExperience,
		EducationLevel:      o.EducationLevel,
		KeyResponsibilities: nonNil(o.Responsibilities),
		ConfidenceScore:     o.Coverage(),
		ExtractionMethod:    o.Source,
	}
}

// Extractor is one extraction tier.
type Extractor interface {
	Extract(ctx context.Context, jobText string) Outcome
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
