package vectorizer

import (
	"sort"

	"github.com/happyhackingspace/stoplist/internal/textproc"
)

// CountVectorizer converts a corpus into a document-term matrix of raw
// token counts. The vocabulary is ordered alphabetically so repeated fits
// over the same corpus are deterministic.
type CountVectorizer struct {
	vocab []string
	index map[string]int
}

// NewCountVectorizer creates an unfitted CountVectorizer.
func NewCountVectorizer() *CountVectorizer {
	return &CountVectorizer{}
}

// Fit builds the vocabulary from a corpus. Every whitespace-delimited
// token enters the vocabulary; there is no frequency or length cutoff.
func (cv *CountVectorizer) Fit(corpus []string) {
	seen := make(map[string]struct{})
	for _, doc := range corpus {
		for _, tok := range textproc.Tokenize(doc) {
			seen[tok] = struct{}{}
		}
	}

	cv.vocab = make([]string, 0, len(seen))
	for term := range seen {
		cv.vocab = append(cv.vocab, term)
	}
	sort.Strings(cv.vocab)

	cv.index = make(map[string]int, len(cv.vocab))
	for i, term := range cv.vocab {
		cv.index[term] = i
	}
}

// FitTransform fits the vocabulary and returns the count matrix, one row
// per document.
func (cv *CountVectorizer) FitTransform(corpus []string) [][]int {
	cv.Fit(corpus)
	dtm := make([][]int, len(corpus))
	for i, doc := range corpus {
		dtm[i] = cv.Transform(doc)
	}
	return dtm
}

// Transform converts a single document into a dense count row aligned to
// the fitted vocabulary.
func (cv *CountVectorizer) Transform(doc string) []int {
	row := make([]int, len(cv.vocab))
	for _, tok := range textproc.Tokenize(doc) {
		if idx, ok := cv.index[tok]; ok {
			row[idx]++
		}
	}
	return row
}

// Vocabulary returns the fitted terms in matrix column order.
func (cv *CountVectorizer) Vocabulary() []string {
	return cv.vocab
}

// VocabSize returns the vocabulary size.
func (cv *CountVectorizer) VocabSize() int {
	return len(cv.vocab)
}
