// Package textproc normalizes raw documents into the token stream the
// stoplist builders count.
package textproc

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/unicode/norm"
)

// punctuation characters are replaced by spaces so adjoining words never
// fuse into one token: ASCII marks plus the guillemets common in classical
// editions.
const punctuation = "\"#$%&'()*+,-/:;<=>@[\\]^_`{|}~.?!«»"

const digits = "0123456789"

var (
	punctReplacer = spaceReplacer(punctuation)
	digitReplacer = spaceReplacer(digits)
)

func spaceReplacer(chars string) *strings.Replacer {
	pairs := make([]string, 0, 2*len([]rune(chars)))
	for _, r := range chars {
		pairs = append(pairs, string(r), " ")
	}
	return strings.NewReplacer(pairs...)
}

// Config selects which normalization steps Normalize applies.
type Config struct {
	Lower             bool
	RemovePunctuation bool
	RemoveNumbers     bool
	FoldDiacritics    bool
}

// Normalize applies the configured steps in fixed order: lowercasing,
// punctuation replacement, digit replacement, diacritic folding.
func Normalize(text string, cfg Config) string {
	if cfg.Lower {
		text = strings.ToLower(text)
	}
	if cfg.RemovePunctuation {
		text = punctReplacer.Replace(text)
	}
	if cfg.RemoveNumbers {
		text = digitReplacer.Replace(text)
	}
	if cfg.FoldDiacritics {
		text = FoldDiacritics(text)
	}
	return text
}

// FoldDiacritics removes combining marks after NFD decomposition, so
// editorial macrons and accents collapse onto their base letters (ā -> a).
func FoldDiacritics(text string) string {
	decomposed := norm.NFD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Tokenize splits normalized text into whitespace-delimited tokens.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// StemTokens reduces every token to its snowball stem for the given
// language. Languages without a snowball stemmer yield an error.
func StemTokens(tokens []string, language string) ([]string, error) {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		stemmed, err := snowball.Stem(tok, language, true)
		if err != nil {
			return nil, err
		}
		out[i] = stemmed
	}
	return out, nil
}
