// Package stoplist extracts stopword lists from document collections.
//
// Every vocabulary term is ranked by a statistical basis (raw frequency,
// TF-IDF, mean probability, variance against the corpus background rate,
// or entropy) or by the composite "zou" basis, which fuses the mean,
// variance and entropy rankings through a Borda count.
//
//	b, _ := stoplist.New("latin")
//	words, _ := b.Build(texts, stoplist.DefaultOptions())
//	for _, w := range words {
//	    fmt.Println(w) // "et", "in", "non", ...
//	}
package stoplist

import (
	"strings"

	"github.com/happyhackingspace/stoplist/internal/vectorizer"
)

// Vectorizer turns a normalized corpus into the matrices the ranking
// bases consume. Both fits must order their vocabularies identically for
// the same corpus within one build.
type Vectorizer interface {
	FitCounts(corpus []string) (dtm [][]int, vocab []string)
	FitTfidf(corpus []string) (tfidf [][]float64, vocab []string)
}

// Builder extracts stoplists from corpora of raw documents.
type Builder struct {
	vec      Vectorizer
	language string
}

// New returns a Builder for the given language backed by the built-in
// vectorizer.
func New(language string) (*Builder, error) {
	return NewWithVectorizer(language, corpusVectorizer{})
}

// NewWithVectorizer returns a Builder backed by a caller-supplied
// vectorizer capability. A nil capability fails with ErrMissingCapability;
// absence is a construction-time failure, never deferred to build time.
func NewWithVectorizer(language string, vec Vectorizer) (*Builder, error) {
	if vec == nil {
		return nil, ErrMissingCapability
	}
	return &Builder{vec: vec, language: strings.ToLower(language)}, nil
}

// Entry pairs a stoplist term with the score its basis assigned.
type Entry struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// corpusVectorizer adapts the internal vectorizer to the capability
// contract. Each fit constructs its vectorizer from scratch, so no state
// leaks between builds.
type corpusVectorizer struct{}

func (corpusVectorizer) FitCounts(corpus []string) ([][]int, []string) {
	cv := vectorizer.NewCountVectorizer()
	dtm := cv.FitTransform(corpus)
	return dtm, cv.Vocabulary()
}

func (corpusVectorizer) FitTfidf(corpus []string) ([][]float64, []string) {
	tv := vectorizer.NewTfidfVectorizer()
	m := tv.FitTransform(corpus)
	return m, tv.Vocabulary()
}
