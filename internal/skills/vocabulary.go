// Package skills holds the skill vocabulary and the rules for recognising a
// skill in free text: exact names, synonyms, near misses and related
// technologies.
package skills

import (
	"sort"
	"strings"
	"sync"
)

// Skill is one entry of the controlled vocabulary.
type Skill struct {
	// Name is the canonical display name.
	Name string
	// Aliases are alternative spellings that normalize to Name.
	Aliases []string
	// Evidence are phrases that demonstrate the skill in an accomplishment
	// without naming it, e.g. "mentored" for Mentoring.
	Evidence []string
	// Family is the canonical name of the parent skill, if any.
	Family string
	// Category groups interchangeable technologies.
	Category string
	// CaseSensitive restricts the canonical name to its exact casing.
	CaseSensitive bool
}

// Vocabulary indexes skills by canonical name and alias.
type Vocabulary struct {
	skills   []Skill
	byKey    map[string]int
	children map[string][]int
	phrases  [][]phrase
}

type phrase struct {
	words []string
	text  string
	kind  MatchKind
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
)

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		defaultVocab = NewVocabulary(defaultSkills)
	})
	return defaultVocab
}

// NewVocabulary builds a vocabulary. Keys are case-insensitive and the first
// skill to claim a key keeps it.
func NewVocabulary(list []Skill) *Vocabulary {
	v := &Vocabulary{
		skills:   make([]Skill, len(list)),
		byKey:    make(map[string]int, len(list)*2),
		children: make(map[string][]int),
		phrases:  make([][]phrase, len(list)),
	}
	copy(v.skills, list)

	for i, s := range v.skills {
		v.claim(s.Name, i)
		for _, a := range s.Aliases {
			v.claim(a, i)
		}
		if s.Family != "" {
			parent := strings.ToLower(s.Family)
			v.children[parent] = append(v.children[parent], i)
		}
		v.phrases[i] = buildPhrases(s)
	}
	return v
}

func (v *Vocabulary) claim(key string, idx int) {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return
	}
	if _, taken := v.byKey[k]; !taken {
		v.byKey[k] = idx
	}
}

func buildPhrases(s Skill) []phrase {
	var out []phrase
	if !s.CaseSensitive {
		out = append(out, phrase{words: Words(s.Name), text: s.Name, kind: MatchExact})
	}
	for _, a := range s.Aliases {
		out = append(out, phrase{words: Words(a), text: a, kind: MatchSynonym})
	}
	for _, e := range s.Evidence {
		out = append(out, phrase{words: Words(e), text: e, kind: MatchSynonym})
	}
	return out
}

// Lookup finds a skill by canonical name or alias, ignoring case.
func (v *Vocabulary) Lookup(name string) (Skill, bool) {
	idx, ok := v.byKey[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Skill{}, false
	}
	return v.skills[idx], true
}

// Skills returns a copy of every skill in the vocabulary.
func (v *Vocabulary) Skills() []Skill {
	out := make([]Skill, len(v.skills))
	copy(out, v.skills)
	return out
}

// Mention is a vocabulary skill named in a piece of text.
type Mention struct {
	Skill string
	// Fuzzy is set when the skill was only found as a near miss.
	Fuzzy bool
}

// Mentions returns the skills a document names explicitly, by canonical name,
// alias or near-miss spelling. Evidence phrases are not counted. Results are
// sorted by skill name.
func (v *Vocabulary) Mentions(doc *Document) []Mention {
	if doc.Empty() {
		return nil
	}
	var out []Mention
	for i, s := range v.skills {
		if v.names(i, doc) {
			out = append(out, Mention{Skill: s.Name})
			continue
		}
		if v.nearMissName(i, doc) {
			out = append(out, Mention{Skill: s.Name, Fuzzy: true})
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Skill < out[b].Skill })
	return out
}

// names reports whether doc contains skill i by canonical name or alias.
func (v *Vocabulary) names(i int, doc *Document) bool {
	s := v.skills[i]
	if s.CaseSensitive && doc.containsRaw(s.Name) {
		return true
	}
	for _, p := range v.phrases[i] {
		if p.kind == MatchExact && doc.containsPhrase(p.words) {
			return true
		}
	}
	for _, a := range s.Aliases {
		if doc.containsPhrase(Words(a)) {
			return true
		}
	}
	return false
}

func (v *Vocabulary) nearMissName(i int, doc *Document) bool {
	s := v.skills[i]
	if _, ok := doc.fuzzyContains(Words(s.Name)); ok {
		return true
	}
	for _, a := range s.Aliases {
		if _, ok := doc.fuzzyContains(Words(a)); ok {
			return true
		}
	}
	return false
}

// descendants returns the indexes of every skill below name in the family
// tree, nearest first.
func (v *Vocabulary) descendants(name string) []int {
	var out []int
	seen := make(map[int]bool)
	queue := []string{strings.ToLower(name)}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, idx := range v.children[cur] {
			if seen[idx] {
				continue
			}
			seen[idx] = true
			out = append(out, idx)
			queue = append(queue, strings.ToLower(v.skills[idx].Name))
		}
	}
	return out
}

// ancestors returns the indexes of the skills above idx in the family tree.
func (v *Vocabulary) ancestors(idx int) []int {
	var out []int
	seen := map[int]bool{idx: true}
	for cur := idx; ; {
		parent, ok := v.byKey[strings.ToLower(v.skills[cur].Family)]
		if !ok || v.skills[cur].Family == "" || seen[parent] {
			return out
		}
		seen[parent] = true
		out = append(out, parent)
		cur = parent
	}
}
