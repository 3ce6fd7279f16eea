package scorer

import (
	"math"
	"strings"
)

const bleuMaxOrder = 4

// bleuScore computes sentence-level BLEU over tokenized texts: the
// geometric mean of modified n-gram precisions up to 4-grams with uniform
// weights, scaled by the brevity penalty. Without smoothing, any zero
// precision sends the whole score to zero.
func bleuScore(candidate, reference []string) float64 {
	if len(candidate) == 0 {
		return 0
	}
	logSum := 0.0
	for n := 1; n <= bleuMaxOrder; n++ {
		p := modifiedPrecision(candidate, reference, n)
		if p == 0 {
			return 0
		}
		logSum += math.Log(p) / bleuMaxOrder
	}
	score := math.Exp(logSum)
	if c, r := len(candidate), len(reference); c < r {
		score *= math.Exp(1 - float64(r)/float64(c))
	}
	return score
}

// modifiedPrecision is the fraction of candidate n-grams found in the
// reference, with per-gram counts clipped to their reference counts.
func modifiedPrecision(candidate, reference []string, n int) float64 {
	candCounts := ngramCounts(candidate, n)
	if len(candCounts) == 0 {
		return 0
	}
	refCounts := ngramCounts(reference, n)
	clipped, total := 0, 0
	for gram, count := range candCounts {
		total += count
		if rc := refCounts[gram]; rc < count {
			clipped += rc
		} else {
			clipped += count
		}
	}
	return float64(clipped) / float64(total)
}

func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}
