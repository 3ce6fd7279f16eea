// Package service runs the translation pipeline for one request:
// validate, protect domain abbreviations, invoke the direction's engine,
// restore abbreviations, and optionally score the result against a
// reference. Errors are typed so the transport layer can map them to
// status codes without string matching.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/valpere/medtran/internal"
	"github.com/valpere/medtran/internal/engine"
	"github.com/valpere/medtran/internal/normalizer"
	"github.com/valpere/medtran/internal/scorer"
	"github.com/valpere/medtran/internal/validator"
)

// ValidationError rejects a request before translation is attempted.
// Its message is client-facing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// TranslationError reports a failed engine invocation. The underlying
// error is preserved; its message is surfaced to the client.
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string { return "Translation error: " + e.Err.Error() }

func (e *TranslationError) Unwrap() error { return e.Err }

// Request carries the raw client fields. Exactly one of EnglishText and
// FrenchText is authoritative, chosen by TargetLanguage; the other is
// ignored. Ground truth fields match the target language. ID is optional
// and only used to correlate log lines.
type Request struct {
	ID                 string
	TargetLanguage     string
	EnglishText        string
	FrenchText         string
	GroundTruthEnglish string
	GroundTruthFrench  string
}

// Service holds the per-direction engines and the optional output
// validator. All fields are set at construction and read-only after,
// safe for concurrent requests.
type Service struct {
	toFrench  engine.Engine
	toEnglish engine.Engine
	check     *validator.Validator
	log       *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithValidator enables the warn-only post-translation language check.
func WithValidator(v *validator.Validator) Option {
	return func(s *Service) { s.check = v }
}

// WithLogger replaces the default nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

func New(toFrench, toEnglish engine.Engine, opts ...Option) *Service {
	s := &Service{
		toFrench:  toFrench,
		toEnglish: toEnglish,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Translate runs the full pipeline. It returns a complete result or a
// typed error (*ValidationError before translation, *TranslationError on
// engine failure); never both, never a partial result.
func (s *Service) Translate(ctx context.Context, req Request) (internal.TranslationResult, error) {
	vr, err := s.validate(req)
	if err != nil {
		return internal.TranslationResult{}, err
	}
	d := vr.Direction

	protected := normalizer.Protect(vr.SourceText, d)
	out, err := s.engineFor(d).Translate(ctx, protected)
	if err != nil {
		s.log.Error("translation failed",
			zap.String("request_id", vr.ID),
			zap.String("direction", d.String()),
			zap.Error(err))
		return internal.TranslationResult{}, &TranslationError{Err: err}
	}

	// The engine output is target-language text, so re-abbreviation reads
	// the table from the reverse direction: any source-language
	// abbreviation the model carried through comes out in its
	// target-language form.
	out = normalizer.Restore(strings.TrimSpace(out), d.Reverse())

	if s.check != nil {
		if ok, verr := s.check.IsValid(out, d); !ok {
			s.log.Warn("translated text may not be in the target language",
				zap.String("direction", d.String()),
				zap.Error(verr))
		}
	}

	result := internal.TranslationResult{TranslatedText: out}

	// The reference is protected with the same direction as the input and
	// never restored before tokenization; scoring always compares against
	// the protected form.
	if vr.GroundTruth != "" {
		if r, ok := scorer.Score(out, normalizer.Protect(vr.GroundTruth, d), d.Target()); ok {
			result.Meteor = &r.Meteor
			result.BLEU = &r.BLEU
		}
	}

	s.log.Info("translated",
		zap.String("request_id", vr.ID),
		zap.String("direction", d.String()),
		zap.Int("source_len", len(vr.SourceText)),
		zap.Int("result_len", len(out)),
		zap.Bool("scored", result.Meteor != nil))

	return result, nil
}

// validate checks the target language first, then the presence of the
// direction's source text, in that order, and builds the validated
// request the rest of the pipeline runs on.
func (s *Service) validate(req Request) (internal.TranslationRequest, error) {
	var vr internal.TranslationRequest

	d, err := internal.ParseTarget(req.TargetLanguage)
	if err != nil {
		return vr, &ValidationError{Message: "Invalid language specified"}
	}

	vr = internal.TranslationRequest{
		ID:        req.ID,
		Direction: d,
		Timestamp: time.Now(),
	}
	if d == internal.ToFrench {
		if req.EnglishText == "" {
			return vr, &ValidationError{Message: "English text is required"}
		}
		vr.SourceText = req.EnglishText
		vr.GroundTruth = req.GroundTruthFrench
		return vr, nil
	}
	if req.FrenchText == "" {
		return vr, &ValidationError{Message: "French text is required"}
	}
	vr.SourceText = req.FrenchText
	vr.GroundTruth = req.GroundTruthEnglish
	return vr, nil
}

func (s *Service) engineFor(d internal.Direction) engine.Engine {
	if d == internal.ToFrench {
		return s.toFrench
	}
	return s.toEnglish
}
