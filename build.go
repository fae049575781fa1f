package stoplist

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/happyhackingspace/stoplist/internal/textproc"
	"github.com/happyhackingspace/stoplist/probability"
	"github.com/happyhackingspace/stoplist/rank"
)

// Build extracts a stoplist from the corpus. The result carries at most
// opts.Size terms before Include and Exclude adjust it; with
// opts.SortWords it is ordered alphabetically, otherwise descending by
// rank.
func (b *Builder) Build(texts []string, opts Options) ([]string, error) {
	ranked, _, err := b.rankTerms(texts, opts)
	if err != nil {
		return nil, err
	}
	return assemble(ranked, opts), nil
}

// BuildScored extracts a stoplist with each term's basis score attached.
// No per-term scalar survives the composite fusion, so BasisZou fails
// with ErrUnsupportedOption. Include terms missing from the vocabulary
// carry score 0.
func (b *Builder) BuildScored(texts []string, opts Options) ([]Entry, error) {
	if opts.Basis == BasisZou {
		return nil, fmt.Errorf("%w: scored output is unavailable for basis %q", ErrUnsupportedOption, BasisZou)
	}
	ranked, scores, err := b.rankTerms(texts, opts)
	if err != nil {
		return nil, err
	}

	terms := assemble(ranked, opts)
	entries := make([]Entry, len(terms))
	for i, term := range terms {
		entries[i] = Entry{Term: term, Score: scores[term]}
	}
	return entries, nil
}

// rankTerms runs the shared pipeline: validate, preprocess, vectorize,
// score, rank, truncate. For single bases it also returns the full
// term-to-score map so scored assembly can resolve include terms.
func (b *Builder) rankTerms(texts []string, opts Options) ([]string, map[string]float64, error) {
	if !opts.Basis.valid() {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedBasis, string(opts.Basis))
	}
	if opts.Size <= 0 {
		return nil, nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidInput, opts.Size)
	}
	if len(texts) == 0 {
		return nil, nil, fmt.Errorf("%w: empty corpus", ErrInvalidInput)
	}

	docs, lengths, err := b.preprocess(texts, opts)
	if err != nil {
		return nil, nil, err
	}

	dtm, vocab := b.vec.FitCounts(docs)
	tfidf, tfVocab := b.vec.FitTfidf(docs)
	if !slices.Equal(vocab, tfVocab) {
		return nil, nil, fmt.Errorf("%w: count and tf-idf vocabularies disagree", ErrInvalidInput)
	}

	total := 0
	for _, l := range lengths {
		total += l
	}
	P, err := probability.PerDocument(dtm, lengths)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if opts.Basis == BasisZou {
		bP := probability.Background(dtm, total)
		fused := rank.Borda(
			rank.Combine(vocab, probability.Mean(P)),
			rank.Combine(vocab, probability.Variance(bP, P)),
			rank.Combine(vocab, probability.Entropy(P)),
		)
		return truncate(fused, opts.Size), nil, nil
	}

	scores := scoreBasis(opts.Basis, dtm, tfidf, P, total)
	ranked := truncate(rank.Combine(vocab, scores), opts.Size)

	byTerm := make(map[string]float64, len(vocab))
	for i, term := range vocab {
		byTerm[term] = scores[i]
	}
	return ranked, byTerm, nil
}

// scoreBasis reduces the corpus matrices to one score per vocabulary term
// for a single (non-composite) basis.
func scoreBasis(basis Basis, dtm [][]int, tfidf, P [][]float64, total int) []float64 {
	switch basis {
	case BasisFrequency:
		return intColumnSums(dtm)
	case BasisTfidf:
		return columnSums(tfidf)
	case BasisMean:
		return probability.Mean(P)
	case BasisVariance:
		return probability.Variance(probability.Background(dtm, total), P)
	case BasisEntropy:
		// Entropy keeps its ranked order like every other basis; it is
		// not collapsed into an unordered set.
		return probability.Entropy(P)
	}
	return nil // unreachable, the basis is validated upfront
}

// preprocess normalizes every document and returns the corpus handed to
// the vectorizer along with per-document token counts.
func (b *Builder) preprocess(texts []string, opts Options) ([]string, []int, error) {
	cfg := textproc.Config{
		Lower:             opts.Lower,
		RemovePunctuation: opts.RemovePunctuation,
		RemoveNumbers:     opts.RemoveNumbers,
		FoldDiacritics:    opts.FoldDiacritics,
	}

	docs := make([]string, len(texts))
	lengths := make([]int, len(texts))
	for i, text := range texts {
		tokens := textproc.Tokenize(textproc.Normalize(text, cfg))
		if opts.Stem {
			stemmed, err := textproc.StemTokens(tokens, b.language)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: stemming: %v", ErrUnsupportedOption, err)
			}
			tokens = stemmed
		}
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("%w: document %d has no tokens", ErrInvalidInput, i)
		}
		docs[i] = strings.Join(tokens, " ")
		lengths[i] = len(tokens)
	}
	return docs, lengths, nil
}

// assemble applies the finishing steps in fixed order: exclusions first,
// then missing include terms appended, then the optional alphabetical
// sort. Truncation already happened at ranking, so exclusions may shrink
// the result below size and inclusions may grow it above.
func assemble(ranked []string, opts Options) []string {
	out := make([]string, 0, len(ranked)+len(opts.Include))
	for _, term := range ranked {
		if !slices.Contains(opts.Exclude, term) {
			out = append(out, term)
		}
	}
	for _, term := range opts.Include {
		if !slices.Contains(out, term) {
			out = append(out, term)
		}
	}
	if opts.SortWords {
		sort.Strings(out)
	}
	return out
}

func truncate(list []string, size int) []string {
	if size < len(list) {
		return list[:size]
	}
	return list
}

func intColumnSums(m [][]int) []float64 {
	if len(m) == 0 {
		return nil
	}
	sums := make([]float64, len(m[0]))
	for _, row := range m {
		for t, v := range row {
			sums[t] += float64(v)
		}
	}
	return sums
}

func columnSums(m [][]float64) []float64 {
	if len(m) == 0 {
		return nil
	}
	sums := make([]float64, len(m[0]))
	for _, row := range m {
		for t, v := range row {
			sums[t] += v
		}
	}
	return sums
}
