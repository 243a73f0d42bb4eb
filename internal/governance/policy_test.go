package governance

import (
	"context"
	"testing"
)

func TestEngineDefaults(t *testing.T) {
	engine := New()

	res, err := engine.Evaluate(context.Background(), Request{Tool: "gemini_search"})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if res.Effect != EffectAllow {
		t.Errorf("expected allow, got %s (%s)", res.Effect, res.Reason)
	}
}

func TestEngineDenyTool(t *testing.T) {
	engine := New()
	engine.DenyTool("documents")

	res, err := engine.Evaluate(context.Background(), Request{Tool: "documents"})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if res.Effect != EffectDeny {
		t.Errorf("expected deny, got %s", res.Effect)
	}
}

func TestEngineDenyArguments(t *testing.T) {
	engine := New()
	if err := engine.DenyArguments(`(?i)\b(localhost|127\.0\.0\.1|169\.254\.)`); err != nil {
		t.Fatal(err)
	}

	res, _ := engine.Evaluate(context.Background(), Request{
		Tool:      "read_url",
		Arguments: `{"url":"http://localhost:8080/admin"}`,
	})
	if res.Effect != EffectDeny {
		t.Error("local URL should be denied")
	}

	res, _ = engine.Evaluate(context.Background(), Request{
		Tool:      "read_url",
		Arguments: `{"url":"https://example.com/article"}`,
	})
	if res.Effect != EffectAllow {
		t.Errorf("public URL should be allowed, got %s", res.Reason)
	}
}

func TestEngineBadPattern(t *testing.T) {
	engine := New()
	if err := engine.DenyArguments(`([`); err == nil {
		t.Error("invalid regexp should be rejected")
	}
}
