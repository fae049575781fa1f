package vectorizer

import (
	"math"
)

// TfidfVectorizer converts a corpus into TF-IDF weighted rows over the
// same vocabulary a CountVectorizer would produce.
type TfidfVectorizer struct {
	CountVec *CountVectorizer
	IDF      []float64
}

// NewTfidfVectorizer creates an unfitted TfidfVectorizer.
func NewTfidfVectorizer() *TfidfVectorizer {
	return &TfidfVectorizer{CountVec: NewCountVectorizer()}
}

// Fit builds the vocabulary and computes IDF values from a corpus.
func (tv *TfidfVectorizer) Fit(corpus []string) {
	tv.CountVec.Fit(corpus)

	nDocs := float64(len(corpus))
	vocabSize := tv.CountVec.VocabSize()

	df := make([]float64, vocabSize)
	for _, doc := range corpus {
		for idx, count := range tv.CountVec.Transform(doc) {
			if count > 0 {
				df[idx]++
			}
		}
	}

	// sklearn smooth IDF: log((1 + n) / (1 + df)) + 1
	tv.IDF = make([]float64, vocabSize)
	for i := range tv.IDF {
		tv.IDF[i] = math.Log((1+nDocs)/(1+df[i])) + 1
	}
}

// FitTransform fits and returns the TF-IDF matrix, one row per document.
func (tv *TfidfVectorizer) FitTransform(corpus []string) [][]float64 {
	tv.Fit(corpus)
	m := make([][]float64, len(corpus))
	for i, doc := range corpus {
		m[i] = tv.Transform(doc)
	}
	return m
}

// Transform converts a single document into an L2-normalized TF-IDF row.
func (tv *TfidfVectorizer) Transform(doc string) []float64 {
	counts := tv.CountVec.Transform(doc)
	row := make([]float64, len(counts))

	var sq float64
	for i, c := range counts {
		v := float64(c) * tv.IDF[i]
		row[i] = v
		sq += v * v
	}

	// L2 normalize (sklearn default)
	if norm := math.Sqrt(sq); norm > 0 {
		for i := range row {
			row[i] /= norm
		}
	}
	return row
}

// Vocabulary returns the fitted terms in matrix column order.
func (tv *TfidfVectorizer) Vocabulary() []string {
	return tv.CountVec.Vocabulary()
}

// VocabSize returns the vocabulary size.
func (tv *TfidfVectorizer) VocabSize() int {
	return tv.CountVec.VocabSize()
}
