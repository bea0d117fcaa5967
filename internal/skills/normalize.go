package skills

import (
	"sort"
	"strings"
)

// NormalizeSkillName normalizes a skill name to its canonical form using the
// default vocabulary. Unknown names get light case cleanup.
func NormalizeSkillName(skillName string) string {
	return Default().Normalize(skillName)
}

// Normalize maps a skill name to its canonical form.
func (v *Vocabulary) Normalize(skillName string) string {
	normalized := strings.Join(strings.Fields(skillName), " ")
	if normalized == "" {
		return ""
	}
	if s, ok := v.Lookup(normalized); ok {
		return s.Name
	}

	lower := strings.ToLower(normalized)
	upper := strings.ToUpper(normalized)

	// Short all-caps words are treated as acronyms (AWS, SQL, GCP).
	if normalized == upper {
		if len(normalized) <= 4 || strings.Contains(normalized, " ") {
			return normalized
		}
		return normalized[:1] + lower[1:]
	}

	// Mixed case is kept as written.
	if normalized != lower {
		return normalized
	}

	if !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}
	return normalized
}

// NormalizeSet normalizes names, drops empties and duplicates (ignoring case)
// and returns the result sorted.
func (v *Vocabulary) NormalizeSet(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		n := v.Normalize(name)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// NormalizeSkillSet normalizes names with the default vocabulary.
func NormalizeSkillSet(names []string) []string {
	return Default().NormalizeSet(names)
}
