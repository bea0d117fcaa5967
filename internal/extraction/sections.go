package extraction

import (
	"regexp"
	"strings"
)

type section int

const (
	sectionNone section = iota
	sectionRequired
	sectionPreferred
	sectionResponsibilities
	sectionEducation
	sectionOther
)

func (s section) String() string {
	switch s {
	case sectionRequired:
		return "required"
	case sectionPreferred:
		return "preferred"
	case sectionResponsibilities:
		return "responsibilities"
	case sectionEducation:
		return "education"
	case sectionOther:
		return "other"
	default:
		return "none"
	}
}

// Header patterns are checked in order. Other comes first so "Compensation
// and bonus" is not read as preferred, and preferred precedes required so
// "Preferred Qualifications" is not read as requirements.
var headerPatterns = []struct {
	section section
	re      *regexp.Regexp
}{
	{sectionOther, regexp.MustCompile(`(?i)\b(benefits|perks|compensation|salary|about (us|the company|the team)|equal opportunity|how to apply)\b`)},
	{sectionPreferred, regexp.MustCompile(`(?i)\b(preferred|nice[- ]to[- ]haves?|bonus|pluses|desired|desirable|extra credit)\b`)},
	{sectionResponsibilities, regexp.MustCompile(`(?i)\b(responsibilities|what you(['’]ll| will) do|duties|day[- ]to[- ]day|your impact|the role|in this role)\b`)},
	{sectionEducation, regexp.MustCompile(`(?i)^education\b`)},
	{sectionRequired, regexp.MustCompile(`(?i)\b(requirements|required|qualifications|must[- ]haves?|what you(['’]ll| will) (need|bring)|who you are|skills|experience)\b`)},
}

var (
	bulletPrefix = regexp.MustCompile(`^\s*(?:[-*•·▪‣◦]|\d{1,2}[.)])\s+`)
	headerTrim   = regexp.MustCompile(`^[#*_\s]+|[#*_:\s]+$`)
)

var headerWords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`
		a about additional and apply are basic benefits bonus bring candidate
		company compensation credit day day-to-day desirable desired do duties
		education equal experience extra for have haves how ideal impact in is
		job key looking minimum must must-have must-haves need nice offer
		opportunity our perks plus pluses points preferred qualification
		qualifications required requirements responsibilities responsibility
		role salary skill skills team technical the this to us we what who will
		you you'll you’ll your we're we’re &`) {
		headerWords[w] = true
	}
}

func allHeaderWords(head string) bool {
	for _, w := range strings.Fields(strings.ToLower(head)) {
		if !headerWords[strings.Trim(w, ",.()")] {
			return false
		}
	}
	return true
}

// maxHeaderWords bounds how long a line may be and still be a header.
const maxHeaderWords = 6

// line is one non-empty line of a posting with the section it belongs to.
type line struct {
	text    string
	section section
	bullet  bool
}

// splitSections walks the posting line by line, tracking the current section.
// A header with inline content ("Requirements: 5+ years of Go") switches the
// section and keeps the content as a line of that section.
func splitSections(jobText string) []line {
	var out []line
	current := sectionNone

	for _, raw := range strings.Split(jobText, "\n") {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		bullet := bulletPrefix.MatchString(text)
		if !bullet {
			if sec, rest, ok := parseHeader(text); ok {
				current = sec
				if rest == "" {
					continue
				}
				text = rest
			}
		} else {
			text = strings.TrimSpace(bulletPrefix.ReplaceAllString(text, ""))
		}

		out = append(out, line{text: text, section: current, bullet: bullet})
	}
	return out
}

// parseHeader recognises a section header line. It returns the section and
// any content following a colon.
func parseHeader(text string) (section, string, bool) {
	head, rest := text, ""
	if idx := strings.Index(text, ":"); idx > 0 {
		head, rest = text[:idx], strings.TrimSpace(text[idx+1:])
	}
	head = headerTrim.ReplaceAllString(head, "")
	if head == "" || len(strings.Fields(head)) > maxHeaderWords {
		return sectionNone, "", false
	}
	// Every word before the colon must be header vocabulary, so lines like
	// "Python experience required" or "Skills in Kubernetes: must have" stay
	// content.
	if !allHeaderWords(head) {
		return sectionNone, "", false
	}
	for _, hp := range headerPatterns {
		if hp.re.MatchString(head) {
			return hp.section, rest, true
		}
	}
	return sectionNone, "", false
}
