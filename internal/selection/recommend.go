package selection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ecodeclub/ekit/slice"

	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Match values that make an accomplishment worth rewording for a gap.
const (
	weakMatchMin = 0.3
	weakMatchMax = skills.MatchedThreshold
)

// maxReferencedIDs caps the ids quoted in one recommendation.
const maxReferencedIDs = 3

// recommend returns one recommendation per gap, in gap order. An unselected
// accomplishment that already demonstrates the skill is suggested first,
// then weakly related ones to reword, and otherwise a new accomplishment.
func recommend(gaps []string, scored []types.ScoredAccomplishment) []string {
	out := make([]string, 0, len(gaps))
	for _, gap := range gaps {
		if ids := candidatesFor(gap, scored, demonstrates); len(ids) > 0 {
			out = append(out, fmt.Sprintf("Include accomplishment%s %s, which already demonstrate%s %s",
				plural(ids), strings.Join(ids, ", "), verbSuffix(ids), gap))
			continue
		}
		if ids := candidatesFor(gap, scored, weaklyRelated); len(ids) > 0 {
			out = append(out, fmt.Sprintf("Reword accomplishment%s %s to explicitly demonstrate %s",
				plural(ids), strings.Join(ids, ", "), gap))
			continue
		}
		out = append(out, fmt.Sprintf("Add an accomplishment demonstrating %s", gap))
	}
	return out
}

func demonstrates(v float64) bool {
	return v >= skills.MatchedThreshold
}

func weaklyRelated(v float64) bool {
	return v >= weakMatchMin && v < weakMatchMax
}

// candidatesFor returns up to maxReferencedIDs ids whose match value for
// skill satisfies accept, strongest first.
func candidatesFor(skill string, scored []types.ScoredAccomplishment, accept func(float64) bool) []string {
	type hit struct {
		id    string
		value float64
	}
	var hits []hit
	for _, s := range scored {
		v := skillScore(s, skill)
		if !accept(v) {
			continue
		}
		hits = append(hits, hit{id: s.AccomplishmentID, value: v})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].value != hits[j].value {
			return hits[i].value > hits[j].value
		}
		return hits[i].id < hits[j].id
	})
	if len(hits) > maxReferencedIDs {
		hits = hits[:maxReferencedIDs]
	}
	return slice.Map(hits, func(_ int, h hit) string { return h.id })
}

func plural(ids []string) string {
	if len(ids) > 1 {
		return "s"
	}
	return ""
}

func verbSuffix(ids []string) string {
	if len(ids) > 1 {
		return ""
	}
	return "s"
}
