package embedding

import "context"

// Embedder turns text into unit-length vectors of a fixed dimension.
// Implementations never fail visibly: an empty input or an oracle error
// yields the zero vector, which downstream scoring treats as "no
// semantic signal". Implementations must be safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) []float64
	EmbedBatch(ctx context.Context, texts []string) [][]float64
	Dimension() int
	Ready(ctx context.Context) bool
}

// Zero returns the fallback vector for failed or empty inputs.
func Zero(dim int) []float64 {
	return make([]float64, dim)
}

// Cosine computes the dot product of two L2-normalized vectors, clamped
// to [0,1]. Empty or mismatched vectors score 0.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}
