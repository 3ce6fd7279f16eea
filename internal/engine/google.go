package engine

import (
	"context"
	"fmt"
	"strings"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/valpere/medtran/internal"
)

// GoogleEngine translates through the Google Cloud Translation API with
// the language pair fixed at construction. The client is dialed once and
// reused; callers should Close it on shutdown.
type GoogleEngine struct {
	client *translate.Client
	source language.Tag
	target language.Tag
}

func NewGoogle(ctx context.Context, cfg Config, d internal.Direction) (*GoogleEngine, error) {
	var opts []option.ClientOption
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}

	source, target := directionTags(d)
	return &GoogleEngine{client: client, source: source, target: target}, nil
}

func (e *GoogleEngine) Name() string {
	return "google"
}

func (e *GoogleEngine) Translate(ctx context.Context, text string) (string, error) {
	translations, err := e.client.Translate(ctx, []string{text}, e.target, &translate.Options{
		Source: e.source,
		Format: translate.Text,
	})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return strings.TrimSpace(translations[0].Text), nil
}

func (e *GoogleEngine) Close() error {
	return e.client.Close()
}

func directionTags(d internal.Direction) (source, target language.Tag) {
	if d == internal.ToFrench {
		return language.English, language.French
	}
	return language.French, language.English
}
