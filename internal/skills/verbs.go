package skills

import "strings"

// actionVerbs are past and present tense verbs that open achievement or duty
// statements.
var actionVerbs = map[string]bool{}

func init() {
	for _, v := range strings.Fields(`
		accelerated achieved architected automated built championed collaborated
		consolidated coordinated created cut decreased delivered deployed designed
		developed directed doubled drove eliminated engineered established expanded
		grew headed implemented improved increased initiated integrated launched
		led maintained managed mentored migrated modernized negotiated optimized
		orchestrated organized overhauled owned partnered pioneered produced
		rebuilt redesigned reduced refactored resolved restructured revamped saved
		scaled shipped simplified spearheaded standardized streamlined supervised
		tripled upgraded wrote
		analyze architect automate build collaborate coordinate create define
		deliver deploy design develop drive establish implement improve lead
		maintain manage mentor migrate monitor operate optimize own partner
		review scale ship support troubleshoot work write`) {
		actionVerbs[v] = true
	}
}

// IsActionVerb reports whether word is a known action verb.
func IsActionVerb(word string) bool {
	return actionVerbs[strings.ToLower(word)]
}

// StartsWithActionVerb reports whether the first word of text is an action verb.
func StartsWithActionVerb(text string) bool {
	tokens := Tokenize(text)
	return len(tokens) > 0 && IsActionVerb(tokens[0].Lower)
}
