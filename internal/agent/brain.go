package agent

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"github.com/miaomiao/deepsearch/internal/governance"
	"github.com/miaomiao/deepsearch/internal/observability"
	"github.com/miaomiao/deepsearch/internal/tools"
)

// Brain turns an inbound chat message into a reply.
type Brain interface {
	Think(ctx context.Context, chatID string, input string) (string, error)
}

// HistoryStore persists the conversation per chat.
type HistoryStore interface {
	AddMessage(chatID string, role string, content string) error
	History(chatID string, limit int) ([]llms.MessageContent, error)
}

// historyWindow is how many stored messages are replayed into each turn.
const historyWindow = 8

// ReActBrain runs a tool-calling loop against a single chat model:
// reason, call tools, observe, repeat until the model answers in text.
type ReActBrain struct {
	model    llms.Model
	registry *tools.Registry
	history  HistoryStore
	policy   governance.PolicyEngine
	logger   *observability.Logger
	maxSteps int
}

func NewReActBrain(model llms.Model, registry *tools.Registry, history HistoryStore, policy governance.PolicyEngine, logger *observability.Logger) *ReActBrain {
	return &ReActBrain{
		model:    model,
		registry: registry,
		history:  history,
		policy:   policy,
		logger:   logger,
		maxSteps: 10,
	}
}

func (b *ReActBrain) Think(ctx context.Context, chatID string, input string) (string, error) {
	available := b.registry.All()

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(BuildSystemPrompt(available))},
		},
	}
	if past, err := b.history.History(chatID, historyWindow); err == nil {
		messages = append(messages, past...)
	}
	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(input)},
	})

	llmTools := make([]llms.Tool, 0, len(available))
	for _, t := range available {
		llmTools = append(llmTools, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}

	var final string
	for step := 0; step < b.maxSteps; step++ {
		resp, err := b.model.GenerateContent(ctx, messages, llms.WithTools(llmTools))
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("model returned no choices")
		}
		choice := resp.Choices[0]
		b.logger.LogLLM(chatID, choice.Content, len(choice.ToolCalls))

		var assistantParts []llms.ContentPart
		if choice.Content != "" {
			assistantParts = append(assistantParts, llms.TextContent{Text: choice.Content})
		}
		for _, tc := range choice.ToolCalls {
			assistantParts = append(assistantParts, tc)
		}
		messages = append(messages, llms.MessageContent{
			Role:  llms.ChatMessageTypeAI,
			Parts: assistantParts,
		})

		if len(choice.ToolCalls) == 0 {
			final = choice.Content
			break
		}

		for _, tc := range choice.ToolCalls {
			result := b.runTool(ctx, chatID, tc)
			messages = append(messages, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{
					llms.ToolCallResponse{
						ToolCallID: tc.ID,
						Name:       tc.FunctionCall.Name,
						Content:    result,
					},
				},
			})
		}
	}

	if final == "" {
		final = "I ran out of reasoning steps before reaching an answer. Please try a narrower question."
	}

	// Best effort; a persistence failure must not eat the reply.
	if err := b.history.AddMessage(chatID, "human", input); err != nil {
		b.logger.LogError(chatID, err)
	}
	if err := b.history.AddMessage(chatID, "ai", final); err != nil {
		b.logger.LogError(chatID, err)
	}

	return final, nil
}

// runTool executes one tool call, gated by policy. Failures become tool
// results for the model to react to instead of aborting the turn.
func (b *ReActBrain) runTool(ctx context.Context, chatID string, tc llms.ToolCall) string {
	name := tc.FunctionCall.Name
	args := tc.FunctionCall.Arguments

	if b.policy != nil {
		res, err := b.policy.Evaluate(ctx, governance.Request{
			Tool:      name,
			Arguments: args,
			ChatID:    chatID,
		})
		if err == nil && res.Effect == governance.EffectDeny {
			return "tool call denied by policy: " + res.Reason
		}
	}

	tool := b.registry.Get(name)
	if tool == nil {
		return fmt.Sprintf("tool %s is not available", name)
	}

	b.logger.LogToolCall(chatID, name, args)
	out, err := tool.Execute(ctx, args)
	if err != nil {
		out = fmt.Sprintf("Error: %v", err)
	}
	b.logger.LogToolResult(chatID, name, clip(out, 2000))
	return out
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
