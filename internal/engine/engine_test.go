package engine

import (
	"context"
	"testing"

	"github.com/valpere/medtran/internal"
)

func TestNew_DefaultProviderIsOpus(t *testing.T) {
	eng, err := New(context.Background(), Config{}, internal.ToFrench)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eng.Name() != "opus" {
		t.Errorf("expected opus engine, got %q", eng.Name())
	}
}

func TestNew_OpenAIProvider(t *testing.T) {
	eng, err := New(context.Background(), Config{Provider: "openai", APIKey: "k"}, internal.ToEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eng.Name() != "openai" {
		t.Errorf("expected openai engine, got %q", eng.Name())
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	if _, err := New(context.Background(), Config{Provider: "deepl"}, internal.ToFrench); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestLanguageNames(t *testing.T) {
	if src, tgt := languageNames(internal.ToFrench); src != "English" || tgt != "French" {
		t.Errorf("expected English→French, got %s→%s", src, tgt)
	}
	if src, tgt := languageNames(internal.ToEnglish); src != "French" || tgt != "English" {
		t.Errorf("expected French→English, got %s→%s", src, tgt)
	}
}
