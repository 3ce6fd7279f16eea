// Package normalizer shields medical abbreviations through opaque machine
// translation. Protect swaps each source-language term for its
// target-language equivalent before the model sees the text, so the terms
// survive translation verbatim; Restore maps equivalents back afterwards.
package normalizer

import (
	"strings"

	"github.com/valpere/medtran/internal"
	"github.com/valpere/medtran/internal/lexicon"
)

// Protect replaces every literal occurrence of each source-language
// lexicon term in text with its target-language equivalent, in table
// order. Substitution is naive sequential replacement: no word-boundary
// awareness, no longest-match handling, and no guard against an
// equivalent containing another entry's term. Empty input is returned
// unchanged.
func Protect(text string, d internal.Direction) string {
	for _, e := range lexicon.Entries(d) {
		text = strings.ReplaceAll(text, e.SourceTerm, e.TargetTerm)
	}
	return text
}

// Restore is the inverse of Protect: it replaces every literal occurrence
// of each target-language equivalent with its source-language term, in
// table order. Text already free of equivalents passes through unchanged.
func Restore(text string, d internal.Direction) string {
	for _, e := range lexicon.Entries(d) {
		text = strings.ReplaceAll(text, e.TargetTerm, e.SourceTerm)
	}
	return text
}
