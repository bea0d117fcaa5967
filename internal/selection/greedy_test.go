package selection

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func scoredItem(id string, final, recency float64, matched ...string) types.ScoredAccomplishment {
	if matched == nil {
		matched = []string{}
	}
	return types.ScoredAccomplishment{
		AccomplishmentID: id,
		FinalScore:       final,
		RecencyScore:     recency,
		MatchedSkills:    matched,
		Reasons:          []string{},
	}
}

func ids(list []types.ScoredAccomplishment) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.AccomplishmentID
	}
	return out
}

func TestRankCandidates_FilterAndOrder(t *testing.T) {
	scored := []types.ScoredAccomplishment{
		scoredItem("c", 0.7, 0.8),
		scoredItem("low", 0.49, 1.0),
		scoredItem("b", 0.7, 1.0),
		scoredItem("a", 0.7, 0.8),
		scoredItem("top", 0.9, 0.4),
		scoredItem("edge", 0.5, 0.4),
	}

	ranked := rankCandidates(scored, map[string]types.Accomplishment{}, 0.5)

	got := make([]string, len(ranked))
	for i, c := range ranked {
		got[i] = c.scored.AccomplishmentID
	}
	assert.Equal(t, []string{"top", "b", "a", "c", "edge"}, got)
}

func TestSelectGreedy_CompanyCap(t *testing.T) {
	var scored []types.ScoredAccomplishment
	accs := map[string]types.Accomplishment{}
	for i := 0; i < 6; i++ {
		id := fmt.Sprintf("acme-%d", i)
		scored = append(scored, scoredItem(id, 0.9-float64(i)*0.01, 1.0))
		accs[id] = types.Accomplishment{ID: id, CompanyID: "acme", IsCurrent: true}
	}
	scored = append(scored, scoredItem("other", 0.6, 0.6))
	accs["other"] = types.Accomplishment{ID: "other", CompanyID: "globex"}

	cfg := types.SelectionConfig{MinimumScore: 0.5, MaxTotal: 10, MaxPerCompany: 3, CurrentRoleFloor: 0.7}
	selected := selectGreedy(rankCandidates(scored, accs, cfg.MinimumScore), cfg)

	assert.Equal(t, []string{"acme-0", "acme-1", "acme-2", "other"}, ids(selected))
}

func TestSelectGreedy_CurrentRoleFloor(t *testing.T) {
	accs := map[string]types.Accomplishment{}
	var scored []types.ScoredAccomplishment
	// Past-role items outscore current-role items.
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("past-%d", i)
		scored = append(scored, scoredItem(id, 0.95, 0.8))
		accs[id] = types.Accomplishment{ID: id, CompanyID: fmt.Sprintf("old-%d", i)}
	}
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("cur-%d", i)
		scored = append(scored, scoredItem(id, 0.6, 1.0))
		accs[id] = types.Accomplishment{ID: id, CompanyID: "now", IsCurrent: true}
	}

	cfg := types.SelectionConfig{MinimumScore: 0.5, MaxTotal: 4, MaxPerCompany: 5, CurrentRoleFloor: 0.5}
	selected := selectGreedy(rankCandidates(scored, accs, cfg.MinimumScore), cfg)

	require.Len(t, selected, 4)
	assert.Equal(t, []string{"past-0", "past-1", "cur-0", "cur-1"}, ids(selected))
}

func TestSelectGreedy_FloorRelaxedWhenShort(t *testing.T) {
	accs := map[string]types.Accomplishment{
		"cur":    {ID: "cur", CompanyID: "now", IsCurrent: true},
		"past-a": {ID: "past-a", CompanyID: "a"},
		"past-b": {ID: "past-b", CompanyID: "b"},
		"past-c": {ID: "past-c", CompanyID: "c"},
	}
	scored := []types.ScoredAccomplishment{
		scoredItem("past-a", 0.9, 0.6),
		scoredItem("past-b", 0.8, 0.6),
		scoredItem("past-c", 0.7, 0.6),
		scoredItem("cur", 0.6, 1.0),
	}

	cfg := types.SelectionConfig{MinimumScore: 0.5, MaxTotal: 4, MaxPerCompany: 2, CurrentRoleFloor: 0.9}
	selected := selectGreedy(rankCandidates(scored, accs, cfg.MinimumScore), cfg)

	assert.Equal(t, []string{"past-a", "past-b", "past-c", "cur"}, ids(selected))
}

func TestCurrentRoleSlots(t *testing.T) {
	assert.Equal(t, 18, currentRoleSlots(types.SelectionConfig{MaxTotal: 25, CurrentRoleFloor: 0.7}))
	assert.Equal(t, 7, currentRoleSlots(types.SelectionConfig{MaxTotal: 10, CurrentRoleFloor: 0.7}))
	assert.Equal(t, 0, currentRoleSlots(types.SelectionConfig{MaxTotal: 10, CurrentRoleFloor: 0}))
	assert.Equal(t, 10, currentRoleSlots(types.SelectionConfig{MaxTotal: 10, CurrentRoleFloor: 1}))
}
