package probability

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestPerDocument(t *testing.T) {
	dtm := [][]int{
		{2, 1, 1},
		{0, 3, 1},
	}
	P, err := PerDocument(dtm, []int{4, 4})
	if err != nil {
		t.Fatalf("PerDocument: %v", err)
	}
	want := [][]float64{
		{0.5, 0.25, 0.25},
		{0, 0.75, 0.25},
	}
	if !reflect.DeepEqual(P, want) {
		t.Errorf("P = %v, want %v", P, want)
	}
}

func TestPerDocumentZeroLength(t *testing.T) {
	_, err := PerDocument([][]int{{1}, {0}}, []int{1, 0})
	if !errors.Is(err, ErrZeroLength) {
		t.Fatalf("expected ErrZeroLength, got %v", err)
	}
}

func TestPerDocumentLengthMismatch(t *testing.T) {
	if _, err := PerDocument([][]int{{1}}, []int{1, 2}); err == nil {
		t.Fatal("expected an error for mismatched lengths")
	}
}

func TestBackground(t *testing.T) {
	dtm := [][]int{
		{2, 0},
		{1, 1},
	}
	bP := Background(dtm, 10)
	want := [][]float64{
		{0.2, 0},
		{0.1, 0.1},
	}
	if !reflect.DeepEqual(bP, want) {
		t.Errorf("bP = %v, want %v", bP, want)
	}
}

func TestMean(t *testing.T) {
	P := [][]float64{
		{0.5, 0.25},
		{0.1, 0.75},
	}
	got := Mean(P)
	want := []float64{0.3, 0.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Mean[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestVariance(t *testing.T) {
	P := [][]float64{
		{0.5, 0.2},
		{0.1, 0.2},
	}
	bP := [][]float64{
		{0.3, 0.2},
		{0.3, 0.2},
	}
	got := Variance(bP, P)
	// column 0: ((0.2)² + (-0.2)²) / 2 = 0.04; column 1: 0.
	want := []float64{0.04, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Variance[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestVarianceSingleDocument(t *testing.T) {
	// With one document the background rate is the document's own rate,
	// so every variance is exactly zero.
	dtm := [][]int{{3, 1, 2, 6}}
	lengths := []int{12}

	P, err := PerDocument(dtm, lengths)
	if err != nil {
		t.Fatalf("PerDocument: %v", err)
	}
	bP := Background(dtm, 12)

	for i, v := range Variance(bP, P) {
		if v != 0 {
			t.Errorf("Variance[%d] = %v, want exactly 0", i, v)
		}
	}
}

func TestEntropy(t *testing.T) {
	// A term with identical per-document probability p in every one of N
	// documents has entropy N·p·log10(1/p).
	const p = 0.25
	P := [][]float64{
		{p, 0.5},
		{p, 0},
		{p, 0.125},
	}
	got := Entropy(P)

	want0 := 3 * p * math.Log10(1/p)
	if math.Abs(got[0]-want0) > 1e-12 {
		t.Errorf("Entropy[0] = %v, want %v", got[0], want0)
	}

	// Zero cells contribute nothing.
	want1 := 0.5*math.Log10(2) + 0.125*math.Log10(8)
	if math.Abs(got[1]-want1) > 1e-12 {
		t.Errorf("Entropy[1] = %v, want %v", got[1], want1)
	}
}

func TestEntropyAllZeroColumn(t *testing.T) {
	P := [][]float64{{0, 1}, {0, 1}}
	got := Entropy(P)
	if got[0] != 0 {
		t.Errorf("Entropy of an all-zero column = %v, want 0", got[0])
	}
	// p = 1 contributes 1·log10(1) = 0 as well.
	if got[1] != 0 {
		t.Errorf("Entropy of an always-certain column = %v, want 0", got[1])
	}
}

func TestColumnSumsWideMatrix(t *testing.T) {
	// Wide enough to split across several workers; results must match a
	// hand-computed sequential pass.
	const cols = 1003
	P := make([][]float64, 4)
	for d := range P {
		P[d] = make([]float64, cols)
		for c := range P[d] {
			P[d][c] = float64(d+1) / float64(c+2)
		}
	}

	got := Mean(P)
	for c := 0; c < cols; c++ {
		var sum float64
		for d := 0; d < 4; d++ {
			sum += P[d][c]
		}
		want := sum / 4
		if math.Abs(got[c]-want) > 1e-15 {
			t.Fatalf("Mean[%d] = %v, want %v", c, got[c], want)
		}
	}
}
