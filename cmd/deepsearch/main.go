package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tmc/langchaingo/llms"

	"github.com/miaomiao/deepsearch/internal/agent"
	"github.com/miaomiao/deepsearch/internal/gateway"
	"github.com/miaomiao/deepsearch/internal/governance"
	"github.com/miaomiao/deepsearch/internal/observability"
	"github.com/miaomiao/deepsearch/internal/plugin"
	"github.com/miaomiao/deepsearch/internal/plugins/deepresearch"
	"github.com/miaomiao/deepsearch/internal/provider"
	"github.com/miaomiao/deepsearch/internal/store"
	"github.com/miaomiao/deepsearch/internal/tools"
	"github.com/miaomiao/deepsearch/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	// Secrets can live in .env; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	observability.PrintBanner()
	logger := observability.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := provider.BuildRegistry(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to build providers: %v", err)
	}
	log.Printf("providers: %v", providers.IDs())

	registry := tools.NewRegistry()
	if ddg, err := tools.NewDuckDuckGoTool(); err != nil {
		log.Printf("warning: duckduckgo tool unavailable: %v", err)
	} else {
		registry.Register(ddg)
	}

	plugins := plugin.NewManager(cfg, providers, registry, logger)
	plugins.Register(deepresearch.New(cfg.App.Workspace))
	plugins.InitializeAll(ctx)

	history, err := store.Open(cfg.Memory.Path)
	if err != nil {
		log.Fatalf("failed to open history store: %v", err)
	}
	defer history.Close()

	policy := governance.New()
	// Keep the reader away from local and link-local targets.
	_ = policy.DenyArguments(`(?i)\b(localhost|127\.0\.0\.1|0\.0\.0\.0|169\.254\.|\[::1\])`)
	_ = policy.DenyArguments(`(?i)file://`)

	model := buildChatModel(cfg)
	brain := agent.NewReActBrain(model, registry, history, policy, logger)

	var gateways []gateway.Messenger
	if tg, ok := cfg.Gateway("telegram"); ok {
		g, err := gateway.NewTelegram(tg.Token, brain)
		if err != nil {
			log.Fatalf("telegram gateway: %v", err)
		}
		gateways = append(gateways, g)
	}
	if dc, ok := cfg.Gateway("discord"); ok {
		g, err := gateway.NewDiscord(dc.Token, brain)
		if err != nil {
			log.Fatalf("discord gateway: %v", err)
		}
		gateways = append(gateways, g)
	}
	if len(gateways) == 0 {
		log.Fatal("no gateway enabled in config")
	}

	for _, g := range gateways {
		g := g
		go func() {
			if err := g.Start(); err != nil {
				log.Printf("gateway stopped with error: %v", err)
				stop()
			}
		}()
	}

	<-ctx.Done()

	for _, g := range gateways {
		_ = g.Stop()
	}
	plugins.TerminateAll(context.Background())

	// Let final log lines flush.
	time.Sleep(200 * time.Millisecond)
	log.Println("deepsearch stopped")
}

// buildChatModel picks the conversation model from config. The agent
// loop needs tool calling, which runs over the OpenAI-compatible path.
func buildChatModel(cfg *config.Config) llms.Model {
	name := cfg.App.ChatProvider
	pc, ok := cfg.Providers[name]
	if !ok || !pc.Enabled {
		log.Fatalf("chat_provider %q is not an enabled provider", name)
	}

	switch pc.Type {
	case "openai", "openrouter":
		p, err := provider.NewOpenAI(name, pc)
		if err != nil {
			log.Fatalf("chat provider %s: %v", name, err)
		}
		return p.Model()
	default:
		log.Fatalf("chat provider %s: type %q does not support the tool-calling chat loop", name, pc.Type)
		return nil
	}
}
