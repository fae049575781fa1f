package stoplist

import "errors"

// Sentinel errors returned by the builders. They arrive wrapped with
// detail; test with errors.Is.
var (
	// ErrInvalidInput reports an empty corpus, a document with no tokens,
	// a non-positive size, or vectorizer matrices whose vocabularies
	// disagree.
	ErrInvalidInput = errors.New("stoplist: invalid input")

	// ErrUnsupportedBasis reports a basis name outside the supported set.
	ErrUnsupportedBasis = errors.New("stoplist: unsupported basis")

	// ErrUnsupportedOption reports an option combination the build cannot
	// honor, such as scored output for the composite basis.
	ErrUnsupportedOption = errors.New("stoplist: unsupported option")

	// ErrMissingCapability reports construction without a vectorizer
	// capability.
	ErrMissingCapability = errors.New("stoplist: missing vectorizer capability")
)
