package domain

import "math"

// Embedding is a fixed-dimension vector produced by a text embedder.
type Embedding []float32

// CosineSimilarity computes cosine similarity between two vectors.
// Returns 0.0 for zero-norm vectors or mismatched lengths, 1.0 for vectors with
// identical direction.
func CosineSimilarity(a, b Embedding) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	na := float32(math.Sqrt(float64(normA)))
	nb := float32(math.Sqrt(float64(normB)))
	if na == 0 || nb == 0 {
		return 0.0
	}

	return dot / (na * nb)
}
