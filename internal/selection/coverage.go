package selection

import (
	"sort"
	"strings"

	"github.com/ecodeclub/ekit/slice"

	"github.com/jonathan/resume-tailor/internal/types"
)

// coverage maps every required skill to whether a selected accomplishment
// demonstrates it. Skill names compare case-insensitively.
func coverage(required []string, selected []types.ScoredAccomplishment) (map[string]bool, float64, []string) {
	covered := make(map[string]bool, len(required))
	for _, skill := range required {
		if strings.TrimSpace(skill) == "" {
			continue
		}
		_, ok := slice.Find(selected, func(s types.ScoredAccomplishment) bool {
			return containsFold(s.MatchedSkills, skill)
		})
		covered[skill] = ok
	}

	gaps := make([]string, 0)
	hits := 0
	for skill, ok := range covered {
		if ok {
			hits++
		} else {
			gaps = append(gaps, skill)
		}
	}
	sort.Strings(gaps)

	pct := 0.0
	if len(covered) > 0 {
		pct = 100 * float64(hits) / float64(len(covered))
	}
	return covered, pct, gaps
}

func containsFold(list []string, want string) bool {
	_, ok := slice.Find(list, func(s string) bool {
		return strings.EqualFold(s, want)
	})
	return ok
}

// skillScore returns the recorded match value for skill, ignoring case.
func skillScore(s types.ScoredAccomplishment, skill string) float64 {
	if v, ok := s.SkillScores[skill]; ok {
		return v
	}
	for name, v := range s.SkillScores {
		if strings.EqualFold(name, skill) {
			return v
		}
	}
	return 0
}
