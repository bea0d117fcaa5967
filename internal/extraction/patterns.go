package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// maxYears caps parsed experience figures; larger numbers are company ages
// or typos rather than requirements.
const maxYears = 30

var (
	yearsRange  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:-|–|—|to)\s*\d{1,2}\+?\s*(?:years?|yrs?)\b`)
	yearsSingle = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)
	yearsWord   = regexp.MustCompile(`(?i)\b(one|two|three|four|five|six|seven|eight|nine|ten)\s*(?:\(\d{1,2}\)\s*)?\+?\s*(?:years?|yrs?)\b`)
	yearsCue    = regexp.MustCompile(`(?i)\b(experience|exp|background|track record|professional|industry|hands[- ]on)\b`)

	preferredCue = regexp.MustCompile(`(?i)\b(preferred|nice[- ]to[- ]have|bonus|a plus|is a plus|desired|desirable|ideally|optional|familiarity with)\b`)

	scrumMaster = regexp.MustCompile(`(?i)\bscrum masters?\b`)
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// parseYears returns the minimum years of experience a line asks for. A
// range yields its lower bound. Lines that mention years without an
// experience cue only count inside a requirements section.
func parseYears(text string, sec section) (int, bool) {
	if sec != sectionRequired && !yearsCue.MatchString(text) {
		return 0, false
	}

	if m := yearsRange.FindStringSubmatch(text); m != nil {
		return boundedYears(m[1])
	}
	if m := yearsSingle.FindStringSubmatch(text); m != nil {
		return boundedYears(m[1])
	}
	if m := yearsWord.FindStringSubmatch(text); m != nil {
		return numberWords[strings.ToLower(m[1])], true
	}
	return 0, false
}

func boundedYears(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 || n > maxYears {
		return 0, false
	}
	return n, true
}

// Education levels, ordered from lowest to highest.
const (
	EducationAssociate = "associate"
	EducationBachelor  = "bachelor"
	EducationMaster    = "master"
	EducationPhD       = "phd"
)

var educationRank = map[string]int{
	EducationAssociate: 1,
	EducationBachelor:  2,
	EducationMaster:    3,
	EducationPhD:       4,
}

var educationPatterns = []struct {
	level string
	re    *regexp.Regexp
}{
	{EducationPhD, regexp.MustCompile(`(?i)\b(ph\.?\s?d\.?|doctorate|doctoral)`)},
	{EducationMaster, regexp.MustCompile(`(?i)\b(master'?s|masters|m\.s\.|msc|m\.sc|mba|graduate degree|ms (?:in|or|degree)\b)`)},
	{EducationBachelor, regexp.MustCompile(`(?i)\b(bachelor'?s|bachelors|b\.s\.|b\.a\.|bsc|b\.sc|bs/ms|bs/ba|ba/bs|undergraduate degree|four[- ]year degree|4[- ]year degree|b[as] (?:in|or|degree)\b)`)},
	{EducationAssociate, regexp.MustCompile(`(?i)\bassociate'?s? degree`)},
}

var genericDegree = regexp.MustCompile(`(?i)\bdegree in\b|\b(cs|computer science|engineering) degree\b`)

// parseEducation returns the lowest degree level a line mentions.
func parseEducation(text string) (string, bool) {
	text = scrumMaster.ReplaceAllString(text, "")

	best := ""
	for _, ep := range educationPatterns {
		if ep.re.MatchString(text) {
			if best == "" || educationRank[ep.level] < educationRank[best] {
				best = ep.level
			}
		}
	}
	if best == "" && genericDegree.MatchString(text) {
		best = EducationBachelor
	}
	return best, best != ""
}

// NormalizeEducationLevel maps free-form degree names onto the four levels.
// Unknown values return "".
func NormalizeEducationLevel(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return ""
	}
	if _, ok := educationRank[v]; ok {
		return v
	}
	if level, ok := parseEducation(value); ok {
		return level
	}
	switch {
	case strings.Contains(v, "doctor"), strings.Contains(v, "phd"):
		return EducationPhD
	case strings.Contains(v, "master"):
		return EducationMaster
	case strings.Contains(v, "bachelor"):
		return EducationBachelor
	case strings.Contains(v, "associate"):
		return EducationAssociate
	}
	return ""
}

// isPreferredLine reports whether a line marks its skills as optional.
func isPreferredLine(text string) bool {
	return preferredCue.MatchString(text)
}
