// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, clip(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", inner, clip(line, inner))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to width runes.
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// list writes up to limit items under a heading, noting how many were left out.
func list(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s\n", heading)
	for _, item := range items[:min(len(items), limit)] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
}

// PrintRequirements outputs a human-readable summary of extracted requirements.
func (p *Printer) PrintRequirements(req *types.JobRequirements) {
	if req == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Method:     %s (confidence %.2f)\n", req.ExtractionMethod, req.ConfidenceScore)
	if req.YearsExperience != nil {
		fmt.Fprintf(&sb, "Experience: %d+ years\n", *req.YearsExperience)
	}
	if req.EducationLevel != nil {
		fmt.Fprintf(&sb, "Education:  %s\n", *req.EducationLevel)
	}
	sb.WriteString("\n")
	list(&sb, "Required:", req.RequiredSkills, maxItemsToShow*2)
	list(&sb, "Preferred:", req.PreferredSkills, maxItemsToShow)
	list(&sb, "Responsibilities:", req.KeyResponsibilities, 3)

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScores outputs the top scored accomplishments with their components.
func (p *Printer) PrintScores(scored []types.ScoredAccomplishment) {
	if len(scored) == 0 {
		return
	}

	top := make([]types.ScoredAccomplishment, len(scored))
	copy(top, scored)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].FinalScore != top[j].FinalScore {
			return top[i].FinalScore > top[j].FinalScore
		}
		return top[i].AccomplishmentID < top[j].AccomplishmentID
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "Accomplishments scored: %d\n\n", len(scored))
	count := min(len(top), maxItemsToShow)
	for i, s := range top[:count] {
		fmt.Fprintf(&sb, "#%d  %s  %.2f\n", i+1, s.AccomplishmentID, s.FinalScore)
		fmt.Fprintf(&sb, "    skill %.2f  semantic %.2f  recency %.2f  metrics %.2f\n",
			s.SkillMatchScore, s.SemanticScore, s.RecencyScore, s.MetricsScore)
		if len(s.MatchedSkills) > 0 {
			fmt.Fprintf(&sb, "    Skills: %s\n", strings.Join(s.MatchedSkills, ", "))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCORED ACCOMPLISHMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailoredResume outputs the selection, coverage and gaps.
func (p *Printer) PrintTailoredResume(resume *types.TailoredResume) {
	if resume == nil {
		return
	}

	ids := make([]string, len(resume.SelectedAccomplishments))
	for i, s := range resume.SelectedAccomplishments {
		ids[i] = fmt.Sprintf("%s (%.2f)", s.AccomplishmentID, s.FinalScore)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Selected: %d\n", len(resume.SelectedAccomplishments))
	fmt.Fprintf(&sb, "Coverage: %.0f%% of %d required skills\n\n", resume.CoveragePercentage, len(resume.SkillCoverage))
	list(&sb, "Selection:", ids, maxItemsToShow*2)
	list(&sb, "Gaps:", resume.Gaps, maxItemsToShow*2)
	list(&sb, "Recommendations:", resume.Recommendations, maxItemsToShow)

	p.printBox("TAILORED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}
