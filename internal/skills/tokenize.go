package skills

import (
	"strings"
	"unicode"
)

// Token is a single word from free text. Lower is used for matching and Raw
// keeps the original casing for case-sensitive skill names such as "Go".
// Glued marks a word joined to a neighbour by '&' or '-', as in "R&D" or
// "C-suite"; such fragments never count as a case-sensitive name.
type Token struct {
	Raw   string
	Lower string
	Glued bool
}

// Tokenize splits text into word tokens. Letters, digits, '+', '#' and
// interior dots are kept so that names like C++, C#, Node.js and .NET
// survive as single tokens. Hyphens, ampersands and slashes separate words.
func Tokenize(text string) []Token {
	runes := []rune(text)
	var tokens []Token

	flush := func(start, end int) {
		if start >= end {
			return
		}
		word := strings.TrimRight(string(runes[start:end]), ".")
		if word == "" || word == "." {
			return
		}
		tokens = append(tokens, Token{
			Raw:   word,
			Lower: strings.ToLower(word),
			Glued: joinedAt(runes, start-1, start-2) || joinedAt(runes, end, end+1),
		})
	}

	start := 0
	for i, r := range runes {
		if !isWordRune(r) {
			flush(start, i)
			start = i + 1
		}
	}
	flush(start, len(runes))
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.'
}

// joinedAt reports whether runes[sep] is '&' or '-' with a letter or digit
// at runes[next].
func joinedAt(runes []rune, sep, next int) bool {
	if sep < 0 || sep >= len(runes) || next < 0 || next >= len(runes) {
		return false
	}
	if runes[sep] != '&' && runes[sep] != '-' {
		return false
	}
	return unicode.IsLetter(runes[next]) || unicode.IsDigit(runes[next])
}

// Words returns the lowercase form of each token.
func Words(text string) []string {
	tokens := Tokenize(text)
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Lower
	}
	return out
}

// Document is pre-tokenized text that skills are matched against.
type Document struct {
	tokens []Token
}

// NewDocument tokenizes text once for repeated skill lookups.
func NewDocument(text string) *Document {
	return &Document{tokens: Tokenize(text)}
}

// Empty reports whether the document has no words.
func (d *Document) Empty() bool {
	return d == nil || len(d.tokens) == 0
}

// Tokens returns the document tokens.
func (d *Document) Tokens() []Token {
	if d == nil {
		return nil
	}
	return d.tokens
}

// containsPhrase reports whether the lowercase word sequence appears in the
// document. The final word also matches a simple plural.
func (d *Document) containsPhrase(phrase []string) bool {
	if d == nil || len(phrase) == 0 || len(phrase) > len(d.tokens) {
		return false
	}
	last := len(phrase) - 1
	for i := 0; i+last < len(d.tokens); i++ {
		ok := true
		for j, want := range phrase {
			got := d.tokens[i+j].Lower
			if got == want {
				continue
			}
			if j == last && len(want) >= 4 && got == want+"s" {
				continue
			}
			ok = false
			break
		}
		if ok {
			return true
		}
	}
	return false
}

// containsRaw reports whether any standalone token matches word with exact
// casing.
func (d *Document) containsRaw(word string) bool {
	if d == nil {
		return false
	}
	for _, t := range d.tokens {
		if t.Raw == word && !t.Glued {
			return true
		}
	}
	return false
}
