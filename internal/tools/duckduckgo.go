package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tmc/langchaingo/tools/duckduckgo"
)

// DuckDuckGoTool is the ungrounded fallback search: plain result snippets
// without LLM synthesis, for when no grounded provider is configured.
type DuckDuckGoTool struct {
	client *duckduckgo.Tool
}

func NewDuckDuckGoTool() (*DuckDuckGoTool, error) {
	ddg, err := duckduckgo.New(5, duckduckgo.DefaultUserAgent)
	if err != nil {
		return nil, err
	}
	return &DuckDuckGoTool{client: ddg}, nil
}

func (d *DuckDuckGoTool) Name() string {
	return "duckduckgo_search"
}

func (d *DuckDuckGoTool) Description() string {
	return "Search the web with DuckDuckGo and return raw result snippets. Prefer gemini_search when available; use this as a fallback."
}

func (d *DuckDuckGoTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The search query to look up",
			},
		},
		"required": []string{"query"},
	}
}

func (d *DuckDuckGoTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}

	res, err := d.client.Call(ctx, args.Query)
	if err != nil {
		return "", fmt.Errorf("search failed: %w", err)
	}
	return res, nil
}
