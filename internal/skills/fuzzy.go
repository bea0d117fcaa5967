package skills

import (
	"github.com/agnivade/levenshtein"
)

const (
	// fuzzyMinLength is the shortest word considered for near-miss matching.
	fuzzyMinLength = 6
	// fuzzyThreshold is the minimum similarity ratio for a near miss.
	fuzzyThreshold = 0.85
)

// Similarity returns 1 - editDistance/maxLen for two words.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if n := len([]rune(b)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein.ComputeDistance(a, b))/float64(maxLen)
}

// nearMiss reports whether word is a likely misspelling of target. Both must
// be long enough and share a first letter to keep false positives down.
func nearMiss(word, target string) bool {
	if word == target {
		return false
	}
	if len(word) < fuzzyMinLength || len(target) < fuzzyMinLength {
		return false
	}
	if word[0] != target[0] {
		return false
	}
	return Similarity(word, target) >= fuzzyThreshold
}

// fuzzyContains reports whether a single-word phrase has a near miss in doc.
func (d *Document) fuzzyContains(phrase []string) (string, bool) {
	if d == nil || len(phrase) != 1 {
		return "", false
	}
	for _, t := range d.tokens {
		if nearMiss(t.Lower, phrase[0]) {
			return t.Raw, true
		}
	}
	return "", false
}
