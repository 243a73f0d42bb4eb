package provider

import (
	"context"
)

// Request is a single text-generation call.
type Request struct {
	Prompt string
	System string
}

// Provider is a configured text-generation backend. Whether a provider
// grounds its answers in live web search is a property of its
// configuration, not of the individual call.
type Provider interface {
	ID() string
	Generate(ctx context.Context, req Request) (string, error)
}
