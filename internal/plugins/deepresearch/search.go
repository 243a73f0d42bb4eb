package deepresearch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/miaomiao/deepsearch/internal/provider"
)

// searchSystemPrompt steers the grounded provider toward citing sources.
const searchSystemPrompt = "You are a web search expert leveraging Gemini and Google Search, " +
	"able to perform searches based on keywords or questions provided by the user " +
	"and return detailed results while clearly citing their sources."

// SearchTool forwards a query to a web-grounded provider from the host's
// provider registry and returns the answer verbatim. Missing providers and
// upstream failures come back as tool output text, never as a failure that
// would abort the conversation turn.
type SearchTool struct {
	providers  *provider.Registry
	providerID string
}

func NewSearchTool(providers *provider.Registry, providerID string) *SearchTool {
	if providerID == "" {
		providerID = defaultSearchProviderID
	}
	return &SearchTool{
		providers:  providers,
		providerID: providerID,
	}
}

func (s *SearchTool) Name() string {
	return "gemini_search"
}

func (s *SearchTool) Description() string {
	return "Use Gemini's search capabilities to perform web searches and generate detailed search results for the query."
}

func (s *SearchTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Keywords or questions to search on the web.",
			},
		},
		"required": []string{"query"},
	}
}

func (s *SearchTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %v", err)
	}

	prov, ok := s.providers.Get(s.providerID)
	if !ok {
		return fmt.Sprintf("provider `%s` not found, check configuration", s.providerID), nil
	}

	// The query is passed through unchanged; search grounding is a property
	// of the provider configuration, not of this call.
	answer, err := prov.Generate(ctx, provider.Request{
		Prompt: args.Query,
		System: searchSystemPrompt,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return fmt.Sprintf("search failed: %v", err), nil
	}

	return answer, nil
}
