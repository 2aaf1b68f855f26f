package vector

import "math"

// CosineDistance computes 1 - (dot(a,b) / (|a|*|b|)) between two vectors.
// It mirrors the pgvector <=> operator so candidates can be re-scored
// in-process after a store-side fetch.
//
// Returns exactly 1.0 when either vector has zero norm, avoiding a division
// by zero; mismatched lengths are also reported as maximal distance since no
// meaningful comparison exists.
func CosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 1.0
	}

	return 1 - (dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// Similarity converts a cosine distance to a similarity score.
func Similarity(distance float64) float64 {
	return 1 - distance
}

// Normalize scales a vector to unit length. Required for stable cosine
// comparisons when the embedding provider does not normalize its output.
// A zero vector is returned unchanged.
func Normalize(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
