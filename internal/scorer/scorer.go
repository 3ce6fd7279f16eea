// Package scorer grades a candidate translation against a human reference
// using METEOR and sentence-level BLEU, following NLTK's default
// parameters for both: BLEU is a uniform 4-gram geometric mean with
// brevity penalty and no smoothing; METEOR aligns unigrams in exact and
// stemmed stages with alpha=0.9, beta=3, gamma=0.5.
package scorer

import (
	"strings"
	"unicode"
)

// Result holds both metric values, each in [0,1].
type Result struct {
	Meteor float64
	BLEU   float64
}

// Score tokenizes both texts and computes the two metrics. lang selects
// the stemmer for METEOR's stemmed stage ("fr" for French, anything else
// stems as English). The second return is false when either text
// tokenizes to zero tokens; that is a defined degenerate case, not an
// error, and the Result is then meaningless.
func Score(candidate, reference, lang string) (Result, bool) {
	candTokens := Tokenize(candidate)
	refTokens := Tokenize(reference)
	if len(candTokens) == 0 || len(refTokens) == 0 {
		return Result{}, false
	}
	return Result{
		Meteor: meteorScore(candTokens, refTokens, lang),
		BLEU:   bleuScore(candTokens, refTokens),
	}, true
}

// Tokenize lower-cases text and splits it into word tokens: runs of
// letters and digits, with each punctuation character kept as its own
// token. Whitespace only separates.
func Tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()
	return tokens
}
