package stoplist

// Basis selects the statistic that ranks vocabulary terms.
type Basis string

// Supported ranking bases.
const (
	BasisFrequency Basis = "frequency" // raw occurrence counts
	BasisTfidf     Basis = "tfidf"     // summed TF-IDF weight
	BasisMean      Basis = "mean"      // mean per-document probability
	BasisVariance  Basis = "variance"  // deviation from the corpus background rate
	BasisEntropy   Basis = "entropy"   // dispersion across documents
	BasisZou       Basis = "zou"       // Borda fusion of mean, variance and entropy
)

func (b Basis) valid() bool {
	switch b {
	case BasisFrequency, BasisTfidf, BasisMean, BasisVariance, BasisEntropy, BasisZou:
		return true
	}
	return false
}

// Options control a single stoplist build.
type Options struct {
	// Basis is the ranking statistic. TextBuilder ignores it and always
	// counts raw frequency.
	Basis Basis

	// Size caps the list length before Include and Exclude adjust it.
	Size int

	// SortWords returns the list alphabetically instead of by rank.
	SortWords bool

	Lower             bool
	RemovePunctuation bool
	RemoveNumbers     bool

	// FoldDiacritics strips combining marks before tokenization (ā -> a).
	FoldDiacritics bool

	// Stem reduces tokens to snowball stems; the builder's language must
	// have a stemmer.
	Stem bool

	// Include lists terms appended to the result when missing; Exclude
	// lists terms that never appear in it.
	Include []string
	Exclude []string
}

// DefaultOptions returns the standard build configuration: the composite
// zou basis, 100 terms, alphabetical output, with lowercasing and
// punctuation and number removal switched on.
func DefaultOptions() Options {
	return Options{
		Basis:             BasisZou,
		Size:              100,
		SortWords:         true,
		Lower:             true,
		RemovePunctuation: true,
		RemoveNumbers:     true,
	}
}
