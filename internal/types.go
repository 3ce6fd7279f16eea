package internal

import (
	"fmt"
	"strings"
	"time"
)

// Direction identifies which way a request translates.
type Direction int

const (
	ToFrench Direction = iota // English source, French target
	ToEnglish                 // French source, English target
)

// ParseTarget maps the user-supplied target language to a Direction.
// Accepted values are french, fr, english and en, case-insensitively.
func ParseTarget(target string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "french", "fr":
		return ToFrench, nil
	case "english", "en":
		return ToEnglish, nil
	default:
		return 0, fmt.Errorf("unsupported target language %q", target)
	}
}

// Source returns the ISO 639-1 code of the direction's source language.
func (d Direction) Source() string {
	if d == ToFrench {
		return "en"
	}
	return "fr"
}

// Target returns the ISO 639-1 code of the direction's target language.
func (d Direction) Target() string {
	if d == ToFrench {
		return "fr"
	}
	return "en"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == ToFrench {
		return ToEnglish
	}
	return ToFrench
}

func (d Direction) String() string {
	if d == ToFrench {
		return "en-fr"
	}
	return "fr-en"
}

type TranslationRequest struct {
	ID          string    `json:"id"`
	Direction   Direction `json:"direction"`
	SourceText  string    `json:"source_text"`
	GroundTruth string    `json:"ground_truth,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// TranslationResult is the outcome of a completed request. Meteor and
// BLEU are nil unless a ground truth was supplied and both sides
// produced at least one token.
type TranslationResult struct {
	TranslatedText string   `json:"translated_text"`
	Meteor         *float64 `json:"meteor_score"`
	BLEU           *float64 `json:"bleu_score"`
}
