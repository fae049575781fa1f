package stoplist

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/happyhackingspace/stoplist/internal/textproc"
)

// TextBuilder extracts a stoplist from a single text. Without a corpus
// there are no document-level statistics, so terms rank by raw frequency
// alone and the Basis option is ignored.
type TextBuilder struct {
	language string
}

// NewTextBuilder returns a TextBuilder for the given language. The
// language only matters when stemming is requested.
func NewTextBuilder(language string) *TextBuilder {
	return &TextBuilder{language: strings.ToLower(language)}
}

// Build extracts the stoplist. Unlike the corpus pipeline the optional
// alphabetical sort runs before exclusions and inclusions, so include
// terms always land at the end of the list.
func (b *TextBuilder) Build(text string, opts Options) ([]string, error) {
	top, _, err := b.rankTerms(text, opts)
	if err != nil {
		return nil, err
	}
	return finishText(top, opts), nil
}

// BuildScored extracts the stoplist with each term's frequency attached.
// Include terms missing from the text carry score 0.
func (b *TextBuilder) BuildScored(text string, opts Options) ([]Entry, error) {
	top, counts, err := b.rankTerms(text, opts)
	if err != nil {
		return nil, err
	}

	terms := finishText(top, opts)
	entries := make([]Entry, len(terms))
	for i, term := range terms {
		entries[i] = Entry{Term: term, Score: float64(counts[term])}
	}
	return entries, nil
}

// rankTerms tokenizes the text and returns the size most frequent terms,
// most frequent first. Ties keep the order terms first appear in the
// text. An empty or fully stripped text yields an empty list.
func (b *TextBuilder) rankTerms(text string, opts Options) ([]string, map[string]int, error) {
	if opts.Size <= 0 {
		return nil, nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidInput, opts.Size)
	}

	cfg := textproc.Config{
		Lower:             opts.Lower,
		RemovePunctuation: opts.RemovePunctuation,
		RemoveNumbers:     opts.RemoveNumbers,
		FoldDiacritics:    opts.FoldDiacritics,
	}
	tokens := textproc.Tokenize(textproc.Normalize(text, cfg))
	if opts.Stem {
		stemmed, err := textproc.StemTokens(tokens, b.language)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: stemming: %v", ErrUnsupportedOption, err)
		}
		tokens = stemmed
	}

	counts := make(map[string]int, len(tokens))
	var order []string
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return truncate(order, opts.Size), counts, nil
}

// finishText applies the single-text finishing order: sort, then
// exclusions, then missing include terms appended.
func finishText(top []string, opts Options) []string {
	terms := make([]string, len(top))
	copy(terms, top)
	if opts.SortWords {
		sort.Strings(terms)
	}

	out := make([]string, 0, len(terms)+len(opts.Include))
	for _, term := range terms {
		if !slices.Contains(opts.Exclude, term) {
			out = append(out, term)
		}
	}
	for _, term := range opts.Include {
		if !slices.Contains(out, term) {
			out = append(out, term)
		}
	}
	return out
}
