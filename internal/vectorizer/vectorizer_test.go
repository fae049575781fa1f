package vectorizer

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestCountVectorizer(t *testing.T) {
	cv := NewCountVectorizer()
	corpus := []string{"arma virumque cano arma", "virumque troiae"}
	dtm := cv.FitTransform(corpus)

	wantVocab := []string{"arma", "cano", "troiae", "virumque"}
	if !reflect.DeepEqual(cv.Vocabulary(), wantVocab) {
		t.Fatalf("Vocabulary = %v, want %v", cv.Vocabulary(), wantVocab)
	}

	wantDTM := [][]int{
		{2, 1, 0, 1},
		{0, 0, 1, 1},
	}
	if !reflect.DeepEqual(dtm, wantDTM) {
		t.Errorf("dtm = %v, want %v", dtm, wantDTM)
	}
}

func TestCountVectorizerRowSums(t *testing.T) {
	// Every token enters the vocabulary, so each row sums to the
	// document's token count.
	cv := NewCountVectorizer()
	corpus := []string{"a b c a", "d d", "e"}
	dtm := cv.FitTransform(corpus)

	for i, row := range dtm {
		sum := 0
		for _, c := range row {
			sum += c
		}
		if want := len(strings.Fields(corpus[i])); sum != want {
			t.Errorf("row %d sums to %d, want %d", i, sum, want)
		}
	}
}

func TestCountVectorizerDeterministic(t *testing.T) {
	corpus := []string{"gamma beta alpha", "beta delta"}

	first := NewCountVectorizer()
	a := first.FitTransform(corpus)
	second := NewCountVectorizer()
	b := second.FitTransform(corpus)

	if !reflect.DeepEqual(first.Vocabulary(), second.Vocabulary()) {
		t.Errorf("vocabularies differ: %v vs %v", first.Vocabulary(), second.Vocabulary())
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("matrices differ: %v vs %v", a, b)
	}
}

func TestTfidfVectorizer(t *testing.T) {
	tv := NewTfidfVectorizer()
	corpus := []string{"arma virumque cano", "arma troiae"}
	m := tv.FitTransform(corpus)

	if len(m) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(m))
	}

	// Rows are L2-normalized.
	for i, row := range m {
		var sq float64
		for _, v := range row {
			sq += v * v
		}
		if norm := math.Sqrt(sq); math.Abs(norm-1.0) > 1e-9 {
			t.Errorf("row %d norm = %v, want 1.0", i, norm)
		}
	}

	// "arma" appears in both documents, so its IDF is the smooth-IDF
	// floor log(3/3)+1 = 1; "cano" appears once: log(3/2)+1.
	idx := map[string]int{}
	for i, term := range tv.Vocabulary() {
		idx[term] = i
	}
	if got, want := tv.IDF[idx["arma"]], 1.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("IDF(arma) = %v, want %v", got, want)
	}
	if got, want := tv.IDF[idx["cano"]], math.Log(3.0/2.0)+1; math.Abs(got-want) > 1e-12 {
		t.Errorf("IDF(cano) = %v, want %v", got, want)
	}
}

func TestVocabularyAgreement(t *testing.T) {
	corpus := []string{"quo usque tandem", "tandem abutere catilina"}

	cv := NewCountVectorizer()
	cv.Fit(corpus)
	tv := NewTfidfVectorizer()
	tv.Fit(corpus)

	if !reflect.DeepEqual(cv.Vocabulary(), tv.Vocabulary()) {
		t.Errorf("count vocab %v != tfidf vocab %v", cv.Vocabulary(), tv.Vocabulary())
	}
}
