package embedding

import "math"

// Cosine returns the cosine similarity of two vectors. Mismatched lengths or
// a zero vector yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// UnitCosine clamps cosine similarity into [0,1]; opposed vectors count as
// unrelated rather than negatively related.
func UnitCosine(a, b []float32) float64 {
	return math.Max(0, math.Min(1, Cosine(a, b)))
}
