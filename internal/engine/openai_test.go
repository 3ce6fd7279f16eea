package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/valpere/medtran/internal"
)

func chatCompletionStub(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		resp := map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestOpenAIEngine_Translate_Success(t *testing.T) {
	server := chatCompletionStub(t, "Le patient est stable.")
	defer server.Close()

	eng := NewOpenAI(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"}, internal.ToFrench)

	got, err := eng.Translate(context.Background(), "The patient is stable.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Le patient est stable." {
		t.Errorf("expected translation, got %q", got)
	}
}

func TestOpenAIEngine_Translate_CleansChatArtifacts(t *testing.T) {
	server := chatCompletionStub(t, "Here's the translation: «Le patient est stable.»")
	defer server.Close()

	eng := NewOpenAI(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"}, internal.ToFrench)

	got, err := eng.Translate(context.Background(), "The patient is stable.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Le patient est stable." {
		t.Errorf("expected cleaned translation, got %q", got)
	}
}

func TestOpenAIEngine_Translate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"choices": []interface{}{},
		})
	}))
	defer server.Close()

	eng := NewOpenAI(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"}, internal.ToFrench)

	if _, err := eng.Translate(context.Background(), "Hello"); err == nil {
		t.Error("expected error for empty choices")
	}
}

func TestOpenAIEngine_Name(t *testing.T) {
	if name := NewOpenAI(Config{APIKey: "k"}, internal.ToEnglish).Name(); name != "openai" {
		t.Errorf("expected 'openai', got %q", name)
	}
}

func TestNewOpenAI_DefaultModel(t *testing.T) {
	eng := NewOpenAI(Config{APIKey: "k"}, internal.ToFrench)
	if eng.model == "" {
		t.Error("expected a default model")
	}
}
