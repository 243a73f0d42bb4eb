package provider

import (
	"context"
	"fmt"

	"github.com/miaomiao/deepsearch/pkg/config"
)

// BuildRegistry constructs every enabled provider from config. Disabled
// entries are skipped; an unknown type is a configuration error.
func BuildRegistry(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	for id, pc := range cfg.Providers {
		if !pc.Enabled {
			continue
		}

		var (
			p   Provider
			err error
		)
		switch pc.Type {
		case "gemini":
			p, err = NewGemini(ctx, id, pc)
		case "openai", "openrouter":
			p, err = NewOpenAI(id, pc)
		default:
			return nil, fmt.Errorf("provider %s: unknown type %q", id, pc.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", id, err)
		}

		registry.Register(p)
	}

	return registry, nil
}
