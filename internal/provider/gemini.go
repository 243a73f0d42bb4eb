package provider

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/miaomiao/deepsearch/pkg/config"
)

// Gemini generates text through the native Gemini API. With grounding
// enabled, every call carries the GoogleSearch tool so the model answers
// from live web results and cites sources.
type Gemini struct {
	id        string
	model     string
	grounding bool
	client    *genai.Client
}

func NewGemini(ctx context.Context, id string, cfg config.ProviderConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &Gemini{
		id:        id,
		model:     model,
		grounding: cfg.Grounding,
		client:    client,
	}, nil
}

func (g *Gemini) ID() string {
	return g.id
}

func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	genCfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if g.grounding {
		genCfg.Tools = []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
