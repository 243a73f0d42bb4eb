package provider

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/miaomiao/deepsearch/pkg/config"
)

// OpenAI generates text through any OpenAI-compatible endpoint
// (OpenAI itself, OpenRouter, local gateways with a base_url).
type OpenAI struct {
	id    string
	model llms.Model
}

func NewOpenAI(id string, cfg config.ProviderConfig) (*OpenAI, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("openai client: %w", err)
	}

	return &OpenAI{id: id, model: model}, nil
}

func (o *OpenAI) ID() string {
	return o.id
}

// Model exposes the underlying chat model so the agent loop can reuse
// the same configured backend for tool-calling conversations.
func (o *OpenAI) Model() llms.Model {
	return o.model
}

func (o *OpenAI) Generate(ctx context.Context, req Request) (string, error) {
	var messages []llms.MessageContent
	if req.System != "" {
		messages = append(messages, llms.MessageContent{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(req.System)},
		})
	}
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(req.Prompt)},
	})

	resp, err := o.model.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return resp.Choices[0].Content, nil
}
