// Package deepresearch bundles the bot's research tools: Gemini-grounded
// web search, URL reading and markdown note management.
package deepresearch

import (
	"context"
	"path/filepath"

	"github.com/miaomiao/deepsearch/internal/plugin"
)

// defaultSearchProviderID is used when the plugin settings carry no
// search_provider_id.
const defaultSearchProviderID = "gemini_with_search"

type Plugin struct {
	workspace string
}

// New creates the plugin. Documents are kept under <workspace>/documents.
func New(workspace string) *Plugin {
	return &Plugin{workspace: workspace}
}

func (p *Plugin) Name() string {
	return "deepresearch"
}

func (p *Plugin) Initialize(ctx context.Context, host *plugin.Host) error {
	providerID := host.Settings.Get("search_provider_id", defaultSearchProviderID)

	host.Tools.Register(NewSearchTool(host.Providers, providerID))
	host.Tools.Register(NewReaderTool())

	docs, err := NewDocumentsTool(filepath.Join(p.workspace, "documents"))
	if err != nil {
		return err
	}
	host.Tools.Register(docs)

	return nil
}

func (p *Plugin) Terminate(ctx context.Context) error {
	return nil
}
