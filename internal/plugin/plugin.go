package plugin

import (
	"context"

	"github.com/miaomiao/deepsearch/internal/observability"
	"github.com/miaomiao/deepsearch/internal/provider"
	"github.com/miaomiao/deepsearch/internal/tools"
	"github.com/miaomiao/deepsearch/pkg/config"
)

// Plugin is a self-contained extension loaded at startup. Initialize is
// called once after the host's registries are built; Terminate runs on
// shutdown in reverse registration order.
type Plugin interface {
	Name() string
	Initialize(ctx context.Context, host *Host) error
	Terminate(ctx context.Context) error
}

// Host is the surface a plugin sees: the bot's provider and tool
// registries, the plugin's own settings block and the event logger.
type Host struct {
	Providers *provider.Registry
	Tools     *tools.Registry
	Settings  config.PluginSettings
	Logger    *observability.Logger
}
