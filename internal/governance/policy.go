package governance

import (
	"context"
	"fmt"
	"regexp"
)

// Effect is the result of a policy evaluation.
type Effect string

const (
	EffectAllow Effect = "allow"
	EffectDeny  Effect = "deny"
)

// Request carries the context of a tool call to be evaluated.
type Request struct {
	Tool      string
	Arguments string
	ChatID    string
}

// Result is the outcome of a policy evaluation.
type Result struct {
	Effect Effect
	Reason string
}

// PolicyEngine gates tool calls before the agent executes them.
type PolicyEngine interface {
	Evaluate(ctx context.Context, req Request) (Result, error)
}

// Engine is a deny-list policy: blocked tool names plus blocked argument
// patterns. Everything not matched is allowed.
type Engine struct {
	deniedTools map[string]bool
	deniedArgs  []*regexp.Regexp
}

func New() *Engine {
	return &Engine{
		deniedTools: make(map[string]bool),
	}
}

func (e *Engine) DenyTool(name string) {
	e.deniedTools[name] = true
}

func (e *Engine) DenyArguments(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	e.deniedArgs = append(e.deniedArgs, re)
	return nil
}

func (e *Engine) Evaluate(ctx context.Context, req Request) (Result, error) {
	if e.deniedTools[req.Tool] {
		return Result{
			Effect: EffectDeny,
			Reason: fmt.Sprintf("tool '%s' is restricted by system policy", req.Tool),
		}, nil
	}

	for _, re := range e.deniedArgs {
		if re.MatchString(req.Arguments) {
			return Result{
				Effect: EffectDeny,
				Reason: fmt.Sprintf("arguments match restricted pattern: %s", re.String()),
			}, nil
		}
	}

	return Result{
		Effect: EffectAllow,
		Reason: "approved by default policy",
	}, nil
}
