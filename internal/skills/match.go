package skills

import "strings"

// MatchKind describes how strongly a text demonstrates a skill.
type MatchKind string

const (
	MatchNone    MatchKind = "none"
	MatchExact   MatchKind = "exact"
	MatchSynonym MatchKind = "synonym"
	MatchFamily  MatchKind = "family"
	MatchRelated MatchKind = "related"
)

// Per-skill match levels.
const (
	ScoreExact   = 1.0
	ScoreSynonym = 0.8
	ScoreFamily  = 0.6
	ScoreRelated = 0.4
)

// MatchedThreshold is the lowest level that counts a skill as demonstrated.
const MatchedThreshold = ScoreFamily

// relatedCategories are the categories whose members can substitute for one
// another. Languages and soft skills are deliberately absent.
var relatedCategories = map[string]bool{
	CategoryFrontend:  true,
	CategoryBackend:   true,
	CategoryCloud:     true,
	CategorySQL:       true,
	CategoryNoSQL:     true,
	CategoryContainer: true,
	CategoryCI:        true,
	CategoryIaC:       true,
	CategoryML:        true,
	CategoryMessaging: true,
}

// Match is the result of classifying one skill against one text.
type Match struct {
	Skill string
	Kind  MatchKind
	Score float64
	// Via is the word or skill in the text that produced the match.
	Via string
}

// Matched reports whether the match is strong enough to claim the skill.
func (m Match) Matched() bool {
	return m.Score >= MatchedThreshold
}

func newMatch(skill string, kind MatchKind, via string) Match {
	m := Match{Skill: skill, Kind: kind, Via: via}
	switch kind {
	case MatchExact:
		m.Score = ScoreExact
	case MatchSynonym:
		m.Score = ScoreSynonym
	case MatchFamily:
		m.Score = ScoreFamily
	case MatchRelated:
		m.Score = ScoreRelated
	}
	return m
}

// Match classifies how well doc demonstrates skill. The strongest applicable
// level wins: exact name, then synonym or near miss, then a child technology
// of the skill, then a sibling or parent technology.
func (v *Vocabulary) Match(skill string, doc *Document) Match {
	none := Match{Skill: skill, Kind: MatchNone}
	if doc.Empty() || strings.TrimSpace(skill) == "" {
		return none
	}

	idx, known := v.byKey[strings.ToLower(strings.TrimSpace(skill))]
	if !known {
		words := Words(skill)
		if doc.containsPhrase(words) {
			return newMatch(skill, MatchExact, skill)
		}
		if raw, ok := doc.fuzzyContains(words); ok {
			return newMatch(skill, MatchSynonym, raw)
		}
		return none
	}

	s := v.skills[idx]
	if s.CaseSensitive && doc.containsRaw(s.Name) {
		return newMatch(skill, MatchExact, s.Name)
	}
	for _, p := range v.phrases[idx] {
		if doc.containsPhrase(p.words) {
			return newMatch(skill, p.kind, p.text)
		}
	}
	if raw, ok := doc.fuzzyContains(Words(s.Name)); ok {
		return newMatch(skill, MatchSynonym, raw)
	}
	for _, a := range s.Aliases {
		if raw, ok := doc.fuzzyContains(Words(a)); ok {
			return newMatch(skill, MatchSynonym, raw)
		}
	}

	for _, child := range v.descendants(s.Name) {
		if v.names(child, doc) {
			return newMatch(skill, MatchFamily, v.skills[child].Name)
		}
	}

	for _, parent := range v.ancestors(idx) {
		if v.names(parent, doc) {
			return newMatch(skill, MatchRelated, v.skills[parent].Name)
		}
	}
	if relatedCategories[s.Category] {
		for j, other := range v.skills {
			if j == idx || other.Category != s.Category {
				continue
			}
			if v.names(j, doc) {
				return newMatch(skill, MatchRelated, other.Name)
			}
		}
	}
	return none
}
