package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App       AppConfig                 `yaml:"app"`
	Gateways  map[string]GatewayConfig  `yaml:"gateways"`
	Providers map[string]ProviderConfig `yaml:"providers"`
	Memory    MemoryConfig              `yaml:"memory"`
	Plugins   map[string]PluginSettings `yaml:"plugins"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	Workspace    string `yaml:"workspace"`
	ChatProvider string `yaml:"chat_provider"`
}

type GatewayConfig struct {
	Token   string `yaml:"token"`
	Enabled bool   `yaml:"enabled"`
}

type ProviderConfig struct {
	Type      string `yaml:"type"`
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Grounding bool   `yaml:"grounding"`
	Enabled   bool   `yaml:"enabled"`
}

type MemoryConfig struct {
	Path string `yaml:"path"`
}

// PluginSettings is the free-form option block a plugin receives.
type PluginSettings map[string]string

// Get returns the value for key, or fallback when the key is absent or empty.
func (s PluginSettings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Load reads and parses a YAML config file. Token and api_key fields may
// reference environment variables as ${VAR}; they are expanded here so
// secrets can live in the environment instead of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for name, gw := range cfg.Gateways {
		gw.Token = os.ExpandEnv(gw.Token)
		cfg.Gateways[name] = gw
	}
	for name, p := range cfg.Providers {
		p.APIKey = os.ExpandEnv(p.APIKey)
		cfg.Providers[name] = p
	}

	if cfg.App.Workspace == "" {
		cfg.App.Workspace = "./workspace"
	}
	if cfg.Memory.Path == "" {
		cfg.Memory.Path = "deepsearch.db"
	}

	return &cfg, nil
}

// Plugin returns the settings block for the named plugin. A plugin with
// no config section gets an empty block, so lookups fall back to defaults.
func (c *Config) Plugin(name string) PluginSettings {
	if s, ok := c.Plugins[name]; ok {
		return s
	}
	return PluginSettings{}
}

// Gateway returns the named gateway config if it is enabled and has a token.
func (c *Config) Gateway(name string) (GatewayConfig, bool) {
	gw, ok := c.Gateways[name]
	if ok && gw.Enabled && gw.Token != "" {
		return gw, true
	}
	return GatewayConfig{}, false
}
