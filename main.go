package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/lumena-studio/concierge/internal/assistant/gateway"
	"github.com/lumena-studio/concierge/internal/assistant/model"
	"github.com/lumena-studio/concierge/internal/assistant/orchestrator"
	"github.com/lumena-studio/concierge/internal/assistant/repo"
	"github.com/lumena-studio/concierge/internal/core"
	errx "github.com/lumena-studio/concierge/internal/core/error"
	logx "github.com/lumena-studio/concierge/pkg/logger"
	pkgredis "github.com/lumena-studio/concierge/pkg/redis"
)

// AppConfig defines all configurable parameters for the concierge core,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure. Redis is optional; without a URL the in-memory
	// stores are used.
	Redis pkgredis.Config

	// LLM provider
	APIKey  string `envconfig:"OPENAI_API_KEY"`
	BaseURL string `envconfig:"OPENAI_BASE_URL"`

	// Core configs
	Gateway      model.GatewayConfig
	Conversation model.ConversationConfig
	Cache        model.CacheConfig
	Persona      model.PersonaConfig
	Fallback     model.FallbackConfig
}

func main() {
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Environment)})

	cacheTTL, err := time.ParseDuration(envCfg.Cache.TTL)
	if err != nil {
		log.Fatalf("Invalid RESPONSE_CACHE_TTL '%s': %v", envCfg.Cache.TTL, err)
	}
	idleTTL, err := time.ParseDuration(envCfg.Conversation.IdleTTL)
	if err != nil {
		log.Fatalf("Invalid CONVERSATION_IDLE_TTL '%s': %v", envCfg.Conversation.IdleTTL, err)
	}

	// ====================================================
	// Pick the store backends: redis when configured, in-memory otherwise.
	var (
		sessions model.ConversationRepository
		cache    model.ResponseCache
	)
	if envCfg.Redis.Enabled() {
		rdb, err := envCfg.Redis.New()
		if err != nil {
			log.Fatalf("Failed to initialise Redis client: %v", err)
		}
		defer rdb.Close()

		sessions = repo.NewRedisConversationRepository(rdb, idleTTL)
		cache = repo.NewRedisResponseCache(rdb, cacheTTL)
		logx.Info().Msg("using redis session store and response cache")
	} else {
		sessions = repo.NewMemoryConversationRepository(idleTTL)
		cache = repo.NewMemoryResponseCache(cacheTTL)
		logx.Info().Msg("no REDIS_URL set, using in-memory stores")
	}

	// A missing credential is not fatal: the orchestrator runs in
	// fallback-only mode and every reply steers toward the team.
	var gw gateway.Gateway
	og, err := gateway.NewOpenAI(ctx, envCfg.APIKey, envCfg.BaseURL, envCfg.Gateway)
	switch {
	case err == nil:
		gw = og
	case errx.IsNotConfigured(err):
		logx.Warn().Msg("OPENAI_API_KEY not configured, running in fallback-only mode")
	default:
		log.Fatalf("Failed to initialise model gateway: %v", err)
	}

	orc, err := orchestrator.New(ctx, orchestrator.Config{
		Gateway:      gw,
		Sessions:     sessions,
		Cache:        cache,
		Conversation: envCfg.Conversation,
		Persona:      envCfg.Persona,
		Fallback:     envCfg.Fallback,
	})
	if err != nil {
		log.Fatalf("Failed to build orchestrator: %v", err)
	}

	// ====================================================
	// Scripted conversation driver, handy for poking at the core without
	// the website in front of it.
	testMessages := []struct {
		description string
		message     string
	}{
		{
			description: "Initial greeting and service inquiry",
			message:     "Hi! What services do you offer?",
		},
		{
			description: "Pricing question",
			message:     "How much does a new website cost?",
		},
		{
			description: "Follow-up with thanks",
			message:     "Thanks, that helps a lot!",
		},
	}

	conversationID := "local-demo-conversation-1"

	for i, test := range testMessages {
		fmt.Printf("\nTest %d: %s\n", i+1, test.description)
		fmt.Printf("Message: %q\n", test.message)

		response := orc.ProcessMessage(ctx, model.ChatInput{
			ConversationID: conversationID,
			Message:        test.message,
		})

		fmt.Printf("Reply %d [%s/%s]: %s\n", i+1, response.Type, response.SuggestedAction, response.Message)
		fmt.Println("────────────────────────────────────────────")

		// slight delay between messages for readability
		time.Sleep(500 * time.Millisecond)
	}

	orc.ClearConversation(ctx, conversationID)
	fmt.Println("\nDemo conversation cleared.")
}
