// Package similarity produces the pairwise customer similarity matrix the
// recommendation engine consumes. The engine only ever reads a Matrix; it
// is computed once per population snapshot and never mutated afterwards.
package similarity

import (
	"fmt"
	"math"
)

// Matrix is a square, symmetric, non-negative similarity matrix. Entry
// (i, j) is the similarity between customers i and j of the population the
// matrix was built from; the diagonal is maximal self-similarity.
type Matrix [][]float64

// Len returns the number of rows
func (m Matrix) Len() int {
	return len(m)
}

// At returns the similarity between customers i and j
func (m Matrix) At(i, j int) float64 {
	return m[i][j]
}

// Row returns the similarity row for customer i
func (m Matrix) Row(i int) []float64 {
	return m[i]
}

// Validate checks that the matrix is square and non-negative. Populations
// and matrices are produced together, so this only guards against wiring
// mistakes, not data errors.
func (m Matrix) Validate(n int) error {
	if len(m) != n {
		return fmt.Errorf("similarity matrix has %d rows for a population of %d", len(m), n)
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("similarity matrix row %d has %d columns, want %d", i, len(row), n)
		}
		for j, v := range row {
			if v < 0 || math.IsNaN(v) {
				return fmt.Errorf("similarity matrix entry (%d,%d) = %v is not a non-negative similarity", i, j, v)
			}
		}
	}
	return nil
}

// FromEmbeddings computes pairwise cosine similarities and min-max
// normalizes the result into [0, 1].
func FromEmbeddings(vectors [][]float64) Matrix {
	n := len(vectors)
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sim := cosine(vectors[i], vectors[j])
			m[i][j] = sim
			m[j][i] = sim
			if sim < lo {
				lo = sim
			}
			if sim > hi {
				hi = sim
			}
		}
	}

	if span := hi - lo; span > 0 {
		for i := range m {
			for j := range m[i] {
				m[i][j] = (m[i][j] - lo) / span
			}
		}
	}
	return m
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
