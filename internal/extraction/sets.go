package extraction

import (
	"sort"
	"strings"
)

// subtract returns the members of a not in b, ignoring case.
func subtract(a, b []string) []string {
	drop := make(map[string]bool, len(b))
	for _, s := range b {
		drop[strings.ToLower(s)] = true
	}
	out := make([]string, 0, len(a))
	for _, s := range a {
		if !drop[strings.ToLower(s)] {
			out = append(out, s)
		}
	}
	return out
}

// union merges lists, keeping the first spelling of each name, and sorts.
func union(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, s := range list {
			key := strings.ToLower(s)
			if s == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	if out == nil {
		return []string{}
	}
	return out
}

// jaccard is |a ∩ b| / |a ∪ b| ignoring case, and 1 when both are empty.
func jaccard(a, b []string) float64 {
	setA := make(map[string]bool, len(a))
	for _, s := range a {
		setA[strings.ToLower(s)] = true
	}
	setB := make(map[string]bool, len(b))
	for _, s := range b {
		setB[strings.ToLower(s)] = true
	}
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	inter := 0
	for s := range setA {
		if setB[s] {
			inter++
		}
	}
	return float64(inter) / float64(len(setA)+len(setB)-inter)
}
