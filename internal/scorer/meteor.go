package scorer

import (
	"math"
	"sort"

	"github.com/kljensen/snowball/english"
	"github.com/kljensen/snowball/french"
)

const (
	meteorAlpha = 0.9
	meteorBeta  = 3.0
	meteorGamma = 0.5
)

// meteorScore computes the METEOR metric over tokenized texts. Unigrams
// are aligned in two stages, exact match then stemmed match, each greedy
// from the end of the candidate. The harmonic mean of precision and
// recall (recall-weighted by alpha) is discounted by a fragmentation
// penalty over contiguous match chunks.
func meteorScore(candidate, reference []string, lang string) float64 {
	matches := alignTokens(candidate, reference, lang)
	m := float64(len(matches))
	if m == 0 {
		return 0
	}
	precision := m / float64(len(candidate))
	recall := m / float64(len(reference))
	fmean := (precision * recall) / (meteorAlpha*precision + (1-meteorAlpha)*recall)
	frag := float64(countChunks(matches)) / m
	penalty := meteorGamma * math.Pow(frag, meteorBeta)
	return (1 - penalty) * fmean
}

type match struct {
	cand int
	ref  int
}

type indexedToken struct {
	pos  int
	word string
}

func alignTokens(candidate, reference []string, lang string) []match {
	cand := enumerate(candidate)
	ref := enumerate(reference)

	exact, cand, ref := matchStage(cand, ref)
	stemmed, _, _ := matchStage(stemAll(cand, lang), stemAll(ref, lang))

	all := append(exact, stemmed...)
	sort.Slice(all, func(i, j int) bool { return all[i].cand < all[j].cand })
	return all
}

// matchStage pairs each candidate token with an equal reference token,
// scanning both lists from the end and consuming matched tokens. It
// returns the pairs and the unmatched remainders of both lists.
func matchStage(cand, ref []indexedToken) ([]match, []indexedToken, []indexedToken) {
	var matches []match
	for i := len(cand) - 1; i >= 0; i-- {
		for j := len(ref) - 1; j >= 0; j-- {
			if cand[i].word == ref[j].word {
				matches = append(matches, match{cand: cand[i].pos, ref: ref[j].pos})
				cand = append(cand[:i], cand[i+1:]...)
				ref = append(ref[:j], ref[j+1:]...)
				break
			}
		}
	}
	return matches, cand, ref
}

// countChunks counts maximal runs of matches that are adjacent in both
// texts; fewer chunks means a less fragmented alignment. Expects matches
// sorted by candidate position.
func countChunks(matches []match) int {
	chunks := 1
	for i := 0; i+1 < len(matches); i++ {
		if matches[i+1].cand == matches[i].cand+1 && matches[i+1].ref == matches[i].ref+1 {
			continue
		}
		chunks++
	}
	return chunks
}

func enumerate(tokens []string) []indexedToken {
	out := make([]indexedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = indexedToken{pos: i, word: tok}
	}
	return out
}

func stemAll(tokens []indexedToken, lang string) []indexedToken {
	out := make([]indexedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = indexedToken{pos: tok.pos, word: stem(tok.word, lang)}
	}
	return out
}

func stem(word, lang string) string {
	if lang == "fr" {
		return french.Stem(word, true)
	}
	return english.Stem(word, true)
}
