package agent

import (
	"fmt"
	"strings"

	"github.com/miaomiao/deepsearch/internal/tools"
)

// basePrompt is the bot's standing identity.
const basePrompt = `You are deepsearch, a research assistant that answers with verified, sourced information.

Working style:
- For anything that needs current or factual information from the web, call gemini_search first.
- To study a specific page, article or paper in depth, call read_url with its URL.
- Keep notes on longer research tasks with the documents tool, and cite your sources in the final answer.
- When a tool reports an error, tell the user what went wrong instead of guessing.`

// BuildSystemPrompt appends the live tool list to the base prompt so the
// model always sees its actual capabilities.
func BuildSystemPrompt(available []tools.Tool) string {
	var sb strings.Builder
	sb.WriteString(basePrompt)

	if len(available) > 0 {
		sb.WriteString("\n\n## Available tools\n")
		for _, t := range available {
			fmt.Fprintf(&sb, "- %s: %s\n", t.Name(), t.Description())
		}
	}
	return sb.String()
}
