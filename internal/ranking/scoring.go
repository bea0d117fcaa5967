// Package ranking scores accomplishments against extracted job requirements.
package ranking

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Component weights of the final score.
const (
	skillMatchWeight = 0.4
	semanticWeight   = 0.3
	recencyWeight    = 0.2
	metricsWeight    = 0.1
)

// Required skills count double preferred ones in the skill match mean.
const (
	requiredSkillWeight  = 2.0
	preferredSkillWeight = 1.0
)

// Recency levels by how long ago the role ended.
const (
	recencyCurrent = 1.0
	recencyRecent  = 0.8
	recencyMid     = 0.6
	recencyOld     = 0.4

	recentYears = 2
	midYears    = 5
)

// metricsBonus is added for each kind of quantified evidence found.
const metricsBonus = 0.3

var (
	numberPattern   = regexp.MustCompile(`(?i)\b\d[\d,]*(\.\d+)?[kmbx]?\b`)
	percentPattern  = regexp.MustCompile(`(?i)\d(\.\d+)?\s?%|\bpercent\b`)
	currencyPattern = regexp.MustCompile(`(?i)[$€£¥]\s?\d|\b\d[\d,.]*\s?(usd|dollars|euros)\b`)
	yearPattern     = regexp.MustCompile(`^(19|20)\d{2}$`)
)

// skillResult is the per-skill outcome of matching requirements against one text.
type skillResult struct {
	score   float64
	matched []string
	scores  map[string]float64
	matches []weightedMatch
}

type weightedMatch struct {
	skills.Match
	required bool
}

// computeSkillMatchScore returns the weighted mean of the best match level of
// every required and preferred skill. Skills repeated across the two lists
// are counted once, as required.
func computeSkillMatchScore(vocab *skills.Vocabulary, doc *skills.Document, req *types.JobRequirements) skillResult {
	res := skillResult{matched: []string{}, scores: map[string]float64{}}
	if req == nil {
		return res
	}

	seen := make(map[string]bool)
	var total, weights float64
	consider := func(name string, required bool) {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true

		weight := preferredSkillWeight
		if required {
			weight = requiredSkillWeight
		}
		m := vocab.Match(name, doc)
		total += weight * m.Score
		weights += weight
		if m.Score > 0 {
			res.scores[name] = m.Score
			res.matches = append(res.matches, weightedMatch{Match: m, required: required})
		}
		if m.Matched() {
			res.matched = append(res.matched, name)
		}
	}
	for _, name := range req.RequiredSkills {
		consider(name, true)
	}
	for _, name := range req.PreferredSkills {
		consider(name, false)
	}

	if weights > 0 {
		res.score = clamp01(total / weights)
	}
	sort.Strings(res.matched)
	return res
}

// computeRecencyScore grades a role by when it ended relative to ref.
// Roles marked current, or ending on or after ref, score highest. A role
// without usable dates scores as old.
func computeRecencyScore(acc types.Accomplishment, ref time.Time) (float64, string) {
	if acc.IsCurrent {
		return recencyCurrent, "recent role (current)"
	}

	dateText := acc.EndDate
	if strings.TrimSpace(dateText) == "" {
		dateText = acc.StartDate
	}
	end, err := types.ParseDate(dateText)
	if err != nil {
		return recencyOld, "role dates unknown"
	}

	switch {
	case !end.Before(ref):
		return recencyCurrent, "recent role (ongoing)"
	case !end.Before(ref.AddDate(-recentYears, 0, 0)):
		return recencyRecent, "recent role (ended within 2 years)"
	case !end.Before(ref.AddDate(-midYears, 0, 0)):
		return recencyMid, "role ended within 5 years"
	default:
		return recencyOld, "older role (ended over 5 years ago)"
	}
}

// metricsSignals records which kinds of quantified evidence a text carries.
type metricsSignals struct {
	number     bool
	percent    bool
	currency   bool
	actionVerb bool
}

func detectMetrics(text string) metricsSignals {
	return metricsSignals{
		number:     hasQuantity(text),
		percent:    percentPattern.MatchString(text),
		currency:   currencyPattern.MatchString(text),
		actionVerb: skills.StartsWithActionVerb(text),
	}
}

// hasQuantity reports whether text contains a number other than a bare
// calendar year such as 2019.
func hasQuantity(text string) bool {
	for _, n := range numberPattern.FindAllString(text, -1) {
		if !yearPattern.MatchString(n) {
			return true
		}
	}
	return false
}

func (m metricsSignals) quantified() bool {
	return m.number || m.percent || m.currency
}

// computeMetricsScore sums a bonus per signal, capped at 1.
func computeMetricsScore(m metricsSignals) float64 {
	score := 0.0
	for _, present := range []bool{m.number, m.percent, m.currency, m.actionVerb} {
		if present {
			score += metricsBonus
		}
	}
	return clamp01(score)
}

func combine(skill, semantic, recency, metrics float64) float64 {
	return clamp01(skillMatchWeight*skill +
		semanticWeight*semantic +
		recencyWeight*recency +
		metricsWeight*metrics)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
