package plugin

import (
	"context"
	"log"

	"github.com/miaomiao/deepsearch/internal/observability"
	"github.com/miaomiao/deepsearch/internal/provider"
	"github.com/miaomiao/deepsearch/internal/tools"
	"github.com/miaomiao/deepsearch/pkg/config"
)

// Manager owns the plugin lifecycle. A plugin that fails to initialize
// is logged and skipped; it never takes the bot down.
type Manager struct {
	cfg       *config.Config
	providers *provider.Registry
	tools     *tools.Registry
	logger    *observability.Logger
	plugins   []Plugin
	active    []Plugin
}

func NewManager(cfg *config.Config, providers *provider.Registry, registry *tools.Registry, logger *observability.Logger) *Manager {
	return &Manager{
		cfg:       cfg,
		providers: providers,
		tools:     registry,
		logger:    logger,
	}
}

func (m *Manager) Register(p Plugin) {
	m.plugins = append(m.plugins, p)
}

// InitializeAll initializes every registered plugin with its own host view.
func (m *Manager) InitializeAll(ctx context.Context) {
	for _, p := range m.plugins {
		host := &Host{
			Providers: m.providers,
			Tools:     m.tools,
			Settings:  m.cfg.Plugin(p.Name()),
			Logger:    m.logger,
		}
		if err := p.Initialize(ctx, host); err != nil {
			log.Printf("plugin %s failed to initialize: %v", p.Name(), err)
			m.logger.LogPlugin(p.Name(), "failed")
			continue
		}
		m.active = append(m.active, p)
		m.logger.LogPlugin(p.Name(), "initialized")
	}
}

// TerminateAll shuts down initialized plugins in reverse order.
func (m *Manager) TerminateAll(ctx context.Context) {
	for i := len(m.active) - 1; i >= 0; i-- {
		p := m.active[i]
		if err := p.Terminate(ctx); err != nil {
			log.Printf("plugin %s failed to terminate: %v", p.Name(), err)
			continue
		}
		m.logger.LogPlugin(p.Name(), "terminated")
	}
	m.active = nil
}
