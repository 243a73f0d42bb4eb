package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
app:
  name: deepsearch
  workspace: ./ws
  chat_provider: openrouter
gateways:
  telegram:
    token: ${DEEPSEARCH_TEST_TG_TOKEN}
    enabled: true
providers:
  gemini_with_search:
    type: gemini
    api_key: key-1
    model: gemini-2.0-flash
    grounding: true
    enabled: true
  openrouter:
    type: openai
    api_key: key-2
    model: qwen/qwen-2.5-72b
    base_url: https://openrouter.ai/api/v1
    enabled: true
memory:
  path: ./data/history.db
plugins:
  deepresearch:
    search_provider_id: gemini_with_search
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	os.Setenv("DEEPSEARCH_TEST_TG_TOKEN", "tg-secret")
	defer os.Unsetenv("DEEPSEARCH_TEST_TG_TOKEN")

	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.App.ChatProvider != "openrouter" {
		t.Errorf("chat_provider = %q, want openrouter", cfg.App.ChatProvider)
	}

	gw, ok := cfg.Gateway("telegram")
	if !ok {
		t.Fatal("telegram gateway should be enabled")
	}
	if gw.Token != "tg-secret" {
		t.Errorf("token env expansion failed, got %q", gw.Token)
	}

	p, ok := cfg.Providers["gemini_with_search"]
	if !ok {
		t.Fatal("gemini_with_search provider missing")
	}
	if !p.Grounding {
		t.Error("grounding should be true")
	}

	if got := cfg.Plugin("deepresearch").Get("search_provider_id", "fallback"); got != "gemini_with_search" {
		t.Errorf("plugin setting = %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "app:\n  name: x\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.App.Workspace != "./workspace" {
		t.Errorf("workspace default = %q", cfg.App.Workspace)
	}
	if cfg.Memory.Path != "deepsearch.db" {
		t.Errorf("memory path default = %q", cfg.Memory.Path)
	}
	if _, ok := cfg.Gateway("telegram"); ok {
		t.Error("unset gateway should not be enabled")
	}
}

func TestPluginSettingsGet(t *testing.T) {
	s := PluginSettings{"a": "1", "b": ""}
	if got := s.Get("a", "d"); got != "1" {
		t.Errorf("Get(a) = %q", got)
	}
	if got := s.Get("b", "d"); got != "d" {
		t.Errorf("empty value should fall back, got %q", got)
	}
	if got := s.Get("missing", "d"); got != "d" {
		t.Errorf("missing key should fall back, got %q", got)
	}

	var nilSettings PluginSettings
	if got := nilSettings.Get("x", "d"); got != "d" {
		t.Errorf("nil settings should fall back, got %q", got)
	}
}
