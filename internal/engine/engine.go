// Package engine wraps the opaque translation models behind a uniform
// interface. One Engine instance is built per direction at startup and
// is safe for concurrent use; the two directions are served by separate
// instances that are never interchangeable.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/valpere/medtran/internal"
)

// Engine translates text for the single direction it was built with.
type Engine interface {
	Name() string
	Translate(ctx context.Context, text string) (string, error)
}

// Config carries the provider settings for one engine instance.
type Config struct {
	Provider    string        `mapstructure:"provider" json:"provider"`
	BaseURL     string        `mapstructure:"base_url" json:"base_url"`
	Model       string        `mapstructure:"model" json:"model"`
	APIKey      string        `mapstructure:"api_key" json:"api_key"`
	Credentials string        `mapstructure:"credentials" json:"credentials"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
}

// New builds the engine for one direction from its provider config. An
// empty provider selects opus.
func New(ctx context.Context, cfg Config, d internal.Direction) (Engine, error) {
	switch cfg.Provider {
	case "", "opus":
		return NewOpus(cfg, d), nil
	case "google":
		return NewGoogle(ctx, cfg, d)
	case "openai":
		return NewOpenAI(cfg, d), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", cfg.Provider)
	}
}

func languageNames(d internal.Direction) (source, target string) {
	if d == internal.ToFrench {
		return "English", "French"
	}
	return "French", "English"
}
