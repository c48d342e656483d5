package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"

	"github.com/lumena-studio/concierge/internal/assistant/model"
	errx "github.com/lumena-studio/concierge/internal/core/error"
	logx "github.com/lumena-studio/concierge/pkg/logger"
)

// Gateway is the single external dependency of the core: one blocking
// round-trip to the completion provider per inbound message. No internal
// retry; retry policy, if any, belongs to the orchestrator.
type Gateway interface {
	Complete(ctx context.Context, messages []*schema.Message) (string, error)
}

// OpenAIGateway wraps the eino OpenAI chat model with the fixed sampling
// parameters from config.
type OpenAIGateway struct {
	chatModel *openai.ChatModel
	modelName string
}

// NewOpenAI builds the gateway. It returns errx.ErrNotConfigured when the
// credential is missing or an obvious placeholder, so the caller can run in
// fallback-only mode instead of failing every request later.
func NewOpenAI(ctx context.Context, apiKey, baseURL string, cfg model.GatewayConfig) (*OpenAIGateway, error) {
	if !usableKey(apiKey) {
		return nil, errx.ErrNotConfigured
	}

	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:           apiKey,
		BaseURL:          baseURL,
		Model:            cfg.Model,
		MaxTokens:        &cfg.MaxTokens,
		Temperature:      &cfg.Temperature,
		PresencePenalty:  &cfg.PresencePenalty,
		FrequencyPenalty: &cfg.FrequencyPenalty,
	})
	if err != nil {
		logx.Error().Err(err).Str("model", cfg.Model).Msg("error creating OpenAI chat model")
		return nil, fmt.Errorf("error creating OpenAI chat model: %w", err)
	}

	return &OpenAIGateway{chatModel: cm, modelName: cfg.Model}, nil
}

// Complete performs a single completion round-trip and returns the generated
// text. Network faults, provider errors and malformed payloads all surface
// as a wrapped GatewayError.
func (g *OpenAIGateway) Complete(ctx context.Context, messages []*schema.Message) (string, error) {
	out, err := g.chatModel.Generate(ctx, messages)
	if err != nil {
		logx.Error().Err(err).Str("model", g.modelName).Msg("completion request failed")
		return "", errx.WrapGateway(err)
	}
	if out == nil || out.Content == "" {
		logx.Error().Str("model", g.modelName).Msg("provider returned empty completion")
		return "", errx.WrapGateway(fmt.Errorf("empty completion"))
	}

	if out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
		logx.Debug().
			Str("model", g.modelName).
			Int("prompt_tokens", out.ResponseMeta.Usage.PromptTokens).
			Int("completion_tokens", out.ResponseMeta.Usage.CompletionTokens).
			Int("total_tokens", out.ResponseMeta.Usage.TotalTokens).
			Msg("LLM usage")
	}

	return out.Content, nil
}

// usableKey filters out absent keys and the placeholder values people leave
// in .env files.
func usableKey(key string) bool {
	key = strings.TrimSpace(key)
	if len(key) < 20 {
		return false
	}
	if strings.HasPrefix(key, "your_") || strings.Contains(key, "api-key-here") {
		return false
	}
	return true
}

var _ Gateway = (*OpenAIGateway)(nil)
