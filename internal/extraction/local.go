package extraction

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

// maxResponsibilities bounds the responsibilities kept from one posting.
const maxResponsibilities = 15

// clauseSplit separates sentences so that "Python required. Go is a plus."
// classifies each skill by its own clause.
var clauseSplit = regexp.MustCompile(`[.;!?]\s+`)

// LocalExtractor is the offline tier: vocabulary and pattern matching scoped
// by section headers. It does no I/O.
type LocalExtractor struct {
	vocab *skills.Vocabulary
}

// NewLocalExtractor creates a local extractor. A nil vocabulary uses the default.
func NewLocalExtractor(vocab *skills.Vocabulary) *LocalExtractor {
	if vocab == nil {
		vocab = skills.Default()
	}
	return &LocalExtractor{vocab: vocab}
}

// Extract scans the posting. It always succeeds.
func (e *LocalExtractor) Extract(_ context.Context, jobText string) Outcome {
	var (
		required, preferred []string
		sectioned, fallback []string
		hasDutiesSection    bool
		years               int
		education           string
	)

	for _, ln := range splitSections(jobText) {
		if ln.section == sectionResponsibilities {
			hasDutiesSection = true
		}
		if ln.section == sectionOther {
			continue
		}

		for _, clause := range clauseSplit.Split(ln.text, -1) {
			for _, m := range e.vocab.Mentions(skills.NewDocument(clause)) {
				if ln.section == sectionPreferred || isPreferredLine(clause) {
					preferred = append(preferred, m.Skill)
				} else {
					required = append(required, m.Skill)
				}
			}
		}

		if y, ok := parseYears(ln.text, ln.section); ok && y > years {
			years = y
		}
		if level, ok := parseEducation(ln.text); ok {
			if education == "" || educationRank[level] < educationRank[education] {
				education = level
			}
		}

		switch {
		case ln.section == sectionResponsibilities:
			sectioned = append(sectioned, cleanResponsibility(ln.text))
		case ln.section == sectionNone && ln.bullet && skills.StartsWithActionVerb(ln.text):
			fallback = append(fallback, cleanResponsibility(ln.text))
		}
	}

	duties := fallback
	if hasDutiesSection {
		duties = sectioned
	}

	out := Outcome{
		Source:           types.ExtractionLocal,
		RequiredSkills:   union(required),
		Responsibilities: firstUnique(duties, maxResponsibilities),
	}
	out.PreferredSkills = subtract(union(preferred), out.RequiredSkills)
	if years > 0 {
		out.YearsExperience = &years
	}
	if education != "" {
		out.EducationLevel = &education
	}
	return out
}

func cleanResponsibility(text string) string {
	return strings.TrimSpace(strings.TrimRight(text, ";,"))
}

// firstUnique keeps the first limit distinct non-empty entries in order.
func firstUnique(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if item == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
