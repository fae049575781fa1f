// Package probability derives per-term statistics from a document-term
// matrix: the per-document probability matrix, the corpus background
// matrix, and the mean, variance and entropy vectors that rank stopword
// candidates.
//
// All matrices are row-major with one row per document and one column per
// vocabulary term; every returned vector is aligned to the same column
// order. Column reductions run on partitioned column ranges, each column
// summed in document order, so results are identical to a sequential pass.
package probability

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrZeroLength reports a document whose token count is zero; per-document
// probabilities are undefined for it.
var ErrZeroLength = errors.New("zero document length")

// PerDocument returns P with P[d][t] = dtm[d][t] / lengths[d].
func PerDocument(dtm [][]int, lengths []int) ([][]float64, error) {
	if len(lengths) != len(dtm) {
		return nil, fmt.Errorf("got %d lengths for %d documents", len(lengths), len(dtm))
	}
	for d, l := range lengths {
		if l <= 0 {
			return nil, fmt.Errorf("document %d: %w", d, ErrZeroLength)
		}
	}

	P := make([][]float64, len(dtm))
	for d, row := range dtm {
		p := make([]float64, len(row))
		div := float64(lengths[d])
		for t, count := range row {
			p[t] = float64(count) / div
		}
		P[d] = p
	}
	return P, nil
}

// Background returns bP with bP[d][t] = dtm[d][t] / totalLength, the
// corpus-wide rate every document is compared against.
func Background(dtm [][]int, totalLength int) [][]float64 {
	bP := make([][]float64, len(dtm))
	div := float64(totalLength)
	for d, row := range dtm {
		p := make([]float64, len(row))
		for t, count := range row {
			p[t] = float64(count) / div
		}
		bP[d] = p
	}
	return bP
}

// Mean returns the column means of P: the average probability of each term
// across documents.
func Mean(P [][]float64) []float64 {
	n := float64(len(P))
	sums := sumColumns(len(P), width(P), func(d, t int) float64 {
		return P[d][t]
	})
	for t := range sums {
		sums[t] /= n
	}
	return sums
}

// Variance returns the column means of (P-bP)²: how far each term's
// document-level probability strays from its corpus background rate.
// Uniformly common terms score near zero.
func Variance(bP, P [][]float64) []float64 {
	n := float64(len(P))
	sums := sumColumns(len(P), width(P), func(d, t int) float64 {
		diff := P[d][t] - bP[d][t]
		return diff * diff
	})
	for t := range sums {
		sums[t] /= n
	}
	return sums
}

// Entropy returns, per term, the sum over documents of P·log10(1/P).
// Cells where P is zero contribute zero; that is a defined convention,
// not an error. Terms spread evenly across documents score high.
func Entropy(P [][]float64) []float64 {
	return sumColumns(len(P), width(P), func(d, t int) float64 {
		p := P[d][t]
		if p == 0 {
			return 0
		}
		return p * math.Log10(1/p)
	})
}

func width(m [][]float64) int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// sumColumns reduces every column t to the sum of cell(d, t) over all
// documents d. Columns are split into contiguous ranges, one goroutine per
// range; within a range each column is summed sequentially in document
// order, keeping floating-point rounding identical across runs.
func sumColumns(rows, cols int, cell func(d, t int) float64) []float64 {
	out := make([]float64, cols)

	workers := runtime.GOMAXPROCS(0)
	if workers > cols {
		workers = cols
	}
	if workers <= 1 {
		sumColumnRange(out, rows, 0, cols, cell)
		return out
	}

	var g errgroup.Group
	chunk := (cols + workers - 1) / workers
	for lo := 0; lo < cols; lo += chunk {
		hi := min(lo+chunk, cols)
		g.Go(func() error {
			sumColumnRange(out, rows, lo, hi, cell)
			return nil
		})
	}
	_ = g.Wait() // workers write disjoint ranges and never fail
	return out
}

func sumColumnRange(out []float64, rows, lo, hi int, cell func(d, t int) float64) {
	for t := lo; t < hi; t++ {
		var sum float64
		for d := 0; d < rows; d++ {
			sum += cell(d, t)
		}
		out[t] = sum
	}
}
