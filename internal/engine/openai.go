package engine

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/valpere/medtran/internal"
	"github.com/valpere/medtran/internal/postprocess"
)

// OpenAIEngine translates through a chat-completion model. Chat models
// like to wrap or annotate their answers, so output goes through
// postprocess.Clean before it is returned.
type OpenAIEngine struct {
	client *openai.Client
	model  string
	source string
	target string
}

func NewOpenAI(cfg Config, d internal.Direction) *OpenAIEngine {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	source, target := languageNames(d)
	return &OpenAIEngine{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
		source: source,
		target: target,
	}
}

func (e *OpenAIEngine) Name() string {
	return "openai"
}

func (e *OpenAIEngine) Translate(ctx context.Context, text string) (string, error) {
	systemPrompt := fmt.Sprintf(`You are a professional medical translator. Translate the following text from %s to %s.
Only respond with the translation, nothing else. No explanations, no quotes, just the translation.
Keep abbreviations and clinical shorthand exactly as written.`, e.source, e.target)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   4096,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return strings.TrimSpace(postprocess.Clean(resp.Choices[0].Message.Content)), nil
}
