package selection

import (
	"math"
	"sort"

	"github.com/jonathan/resume-tailor/internal/types"
)

// candidate is a scored accomplishment with the role facts quotas need.
type candidate struct {
	scored    types.ScoredAccomplishment
	companyID string
	current   bool
}

// rankCandidates keeps candidates at or above minScore, ordered by final
// score, then recency, then id.
func rankCandidates(
	scored []types.ScoredAccomplishment,
	byID map[string]types.Accomplishment,
	minScore float64,
) []candidate {
	out := make([]candidate, 0, len(scored))
	for _, s := range scored {
		if s.FinalScore < minScore {
			continue
		}
		acc := byID[s.AccomplishmentID]
		out = append(out, candidate{scored: s, companyID: acc.CompanyID, current: acc.IsCurrent})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i].scored, out[j].scored)
	})
	return out
}

func less(a, b types.ScoredAccomplishment) bool {
	if a.FinalScore != b.FinalScore {
		return a.FinalScore > b.FinalScore
	}
	if a.RecencyScore != b.RecencyScore {
		return a.RecencyScore > b.RecencyScore
	}
	return a.AccomplishmentID < b.AccomplishmentID
}

// quotaFilter tracks slots and per-company counts during greedy selection.
type quotaFilter struct {
	maxTotal      int
	maxPerCompany int
	perCompany    map[string]int
	taken         []bool
	picked        []candidate
}

func newQuotaFilter(n int, cfg types.SelectionConfig) *quotaFilter {
	return &quotaFilter{
		maxTotal:      cfg.MaxTotal,
		maxPerCompany: cfg.MaxPerCompany,
		perCompany:    make(map[string]int),
		taken:         make([]bool, n),
	}
}

func (q *quotaFilter) full() bool {
	return len(q.picked) >= q.maxTotal
}

// take selects candidate i if the company cap allows it.
func (q *quotaFilter) take(i int, c candidate) bool {
	if q.taken[i] || q.full() || q.perCompany[c.companyID] >= q.maxPerCompany {
		return false
	}
	q.taken[i] = true
	q.perCompany[c.companyID]++
	q.picked = append(q.picked, c)
	return true
}

// selectGreedy fills up to MaxTotal slots from ranked candidates. The first
// pass reserves the current-role share; the second fills what is left from
// every candidate, so an unmet share is relaxed rather than leaving slots empty.
func selectGreedy(ranked []candidate, cfg types.SelectionConfig) []types.ScoredAccomplishment {
	q := newQuotaFilter(len(ranked), cfg)

	floor := currentRoleSlots(cfg)
	for i, c := range ranked {
		if len(q.picked) >= floor {
			break
		}
		if c.current {
			q.take(i, c)
		}
	}
	for i, c := range ranked {
		if q.full() {
			break
		}
		q.take(i, c)
	}

	out := make([]types.ScoredAccomplishment, len(q.picked))
	for i, c := range q.picked {
		out[i] = c.scored
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// currentRoleSlots is the number of slots reserved for current-role work.
func currentRoleSlots(cfg types.SelectionConfig) int {
	slots := int(math.Ceil(cfg.CurrentRoleFloor*float64(cfg.MaxTotal) - 1e-9))
	if slots > cfg.MaxTotal {
		return cfg.MaxTotal
	}
	return slots
}
