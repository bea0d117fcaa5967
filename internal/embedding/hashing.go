package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/jonathan/resume-tailor/internal/skills"
)

// DefaultDimensions is the vector size of the hashing model.
const DefaultDimensions = 512

// stopWords are dropped before hashing; they carry no topical signal.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "such": true,
	"a": true, "an": true, "of": true, "to": true, "in": true, "on": true,
	"at": true, "by": true, "or": true, "as": true, "is": true, "be": true,
	"we": true, "it": true, "us": true, "my": true, "i": true,
}

// HashingModel is a deterministic bag-of-words model: stemmed words are
// hashed into a fixed number of buckets and the counts L2-normalized.
type HashingModel struct {
	dims int
}

// NewHashingModel creates a hashing model. dims <= 0 uses DefaultDimensions.
func NewHashingModel(dims int) *HashingModel {
	if dims <= 0 {
		dims = DefaultDimensions
	}
	return &HashingModel{dims: dims}
}

// Dimensions returns the vector size.
func (m *HashingModel) Dimensions() int {
	return m.dims
}

// Embed never fails. Text without content words yields a zero vector.
func (m *HashingModel) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, m.dims)
	for _, w := range Terms(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(w))
		vec[h.Sum32()%uint32(m.dims)]++
	}
	normalize(vec)
	return vec, nil
}

// Terms returns the stemmed content words of text.
func Terms(text string) []string {
	words := skills.Words(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if stopWords[w] {
			continue
		}
		out = append(out, stem(w))
	}
	return out
}

// stem strips a few common English suffixes so "building" meets "build".
func stem(w string) string {
	switch {
	case len(w) > 5 && strings.HasSuffix(w, "ing"):
		return w[:len(w)-3]
	case len(w) > 4 && strings.HasSuffix(w, "ed"):
		return w[:len(w)-2]
	case len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss"):
		return w[:len(w)-1]
	}
	return w
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
