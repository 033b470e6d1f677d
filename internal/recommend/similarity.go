// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package recommend

import "math"

// CosineSimilarity returns dot(a,b) / (|a|*|b|).
// If either vector has zero norm the result is 0.0. Vectors must have
// equal length.
func CosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// BuildSimilarityMatrix computes the full N x N cosine similarity matrix.
// Each pair is computed once and mirrored so the result is exactly symmetric.
// Cost is O(N^2 * D).
func BuildSimilarityMatrix(vectors [][]float64) [][]float64 {
	n := len(vectors)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := CosineSimilarity(vectors[i], vectors[j])
			matrix[i][j] = s
			matrix[j][i] = s
		}
	}

	return matrix
}
