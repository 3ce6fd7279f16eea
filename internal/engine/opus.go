package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/valpere/medtran/internal"
)

const (
	defaultOpusBaseURL = "http://localhost:8000"
	opusModelEnFr      = "Helsinki-NLP/opus-mt-en-fr"
	opusModelFrEn      = "Helsinki-NLP/opus-mt-fr-en"
)

// OpusEngine calls an inference server hosting the Helsinki-NLP opus-mt
// models. It speaks the Hugging Face text-translation wire format, so the
// base URL may point at a local server or at the hosted inference API.
type OpusEngine struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

func NewOpus(cfg Config, d internal.Direction) *OpusEngine {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpusBaseURL
	}
	model := cfg.Model
	if model == "" {
		if d == internal.ToFrench {
			model = opusModelEnFr
		} else {
			model = opusModelFrEn
		}
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &OpusEngine{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (e *OpusEngine) Name() string {
	return "opus"
}

func (e *OpusEngine) Translate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", e.baseURL, e.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return "", fmt.Errorf("model server returned status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("model server returned status %d", resp.StatusCode)
	}

	var out []struct {
		TranslationText string `json:"translation_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty response from model server")
	}

	return strings.TrimSpace(out[0].TranslationText), nil
}

// IsAvailable probes the model endpoint so startup can fail fast when the
// inference server is unreachable.
func (e *OpusEngine) IsAvailable(ctx context.Context) error {
	url := fmt.Sprintf("%s/models/%s", e.baseURL, e.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("model server not available: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("model server returned status %d", resp.StatusCode)
	}
	return nil
}

func (e *OpusEngine) Model() string {
	return e.model
}
