// Package orchestrator composes the assistant core per inbound message:
// cache lookup, session update, prompt build, gateway call, classification,
// cache write. Its contract is total: every valid inbound message resolves
// to a Response, never an error; failures go to the fallback policy and a
// side-channel error log.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lumena-studio/concierge/internal/assistant/classify"
	"github.com/lumena-studio/concierge/internal/assistant/conversations"
	"github.com/lumena-studio/concierge/internal/assistant/gateway"
	"github.com/lumena-studio/concierge/internal/assistant/model"
	"github.com/lumena-studio/concierge/internal/assistant/prompts"
	logx "github.com/lumena-studio/concierge/pkg/logger"
)

// Config holds everything needed to compose the orchestrator end-to-end.
// Gateway may be nil: that is the not-configured mode, every message then
// short-circuits to the discovery fallback before any cache or session work.
type Config struct {
	Gateway      gateway.Gateway
	Sessions     model.ConversationRepository
	Cache        model.ResponseCache
	Conversation model.ConversationConfig
	Persona      model.PersonaConfig
	Fallback     model.FallbackConfig
}

type Orchestrator struct {
	gw           gateway.Gateway
	sessions     *conversations.Manager
	cache        model.ResponseCache
	fallback     model.FallbackConfig
	systemPrompt string
	now          func() time.Time
}

// New validates the wiring and renders the persona instruction once; the
// persona inputs are static for the process lifetime.
func New(ctx context.Context, cfg Config) (*Orchestrator, error) {
	if cfg.Sessions == nil {
		return nil, fmt.Errorf("session repository is nil")
	}
	if cfg.Cache == nil {
		return nil, fmt.Errorf("response cache is nil")
	}

	systemPrompt, err := prompts.RenderPersonaSystem(ctx, cfg.Persona)
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		gw:           cfg.Gateway,
		sessions:     conversations.NewManager(cfg.Sessions, cfg.Conversation),
		cache:        cfg.Cache,
		fallback:     cfg.Fallback,
		systemPrompt: systemPrompt,
		now:          time.Now,
	}, nil
}

// ProcessMessage runs the per-message state machine and always returns a
// usable Response.
func (o *Orchestrator) ProcessMessage(ctx context.Context, in model.ChatInput) model.Response {
	requestID := uuid.NewString()
	logx.Debug().
		Str("request_id", requestID).
		Str("conversation_id", in.ConversationID).
		Int("message_len", len(in.Message)).
		Msg("processing message")

	if o.gw == nil {
		logx.Warn().Str("request_id", requestID).Msg("gateway not configured, serving discovery fallback")
		return o.notConfiguredResponse(in.ConversationID)
	}

	if cached, err := o.cache.Lookup(ctx, in.Message); err != nil {
		// a broken cache degrades to a miss, never to a failed request
		logx.Warn().Err(err).Str("request_id", requestID).Msg("cache lookup failed")
	} else if cached != nil {
		logx.Debug().Str("request_id", requestID).Msg("returning cached response")
		out := *cached
		out.ConversationID = in.ConversationID
		out.Cached = true
		return out
	}

	if err := o.sessions.AppendUser(ctx, in.ConversationID, in.Message); err != nil {
		logx.Error().Err(err).Str("request_id", requestID).Msg("failed to append user turn")
		return o.unavailableResponse(in.ConversationID)
	}

	messages, err := o.sessions.BuildPrompt(ctx, in.ConversationID, o.systemPrompt)
	if err != nil {
		logx.Error().Err(err).Str("request_id", requestID).Msg("failed to build prompt")
		return o.unavailableResponse(in.ConversationID)
	}

	reply, err := o.gw.Complete(ctx, messages)
	if err != nil {
		logx.Error().Err(err).Str("request_id", requestID).Msg("gateway call failed")
		return o.unavailableResponse(in.ConversationID)
	}

	classification := classify.Classify(reply, in.Message)

	if err := o.sessions.AppendAssistant(ctx, in.ConversationID, reply); err != nil {
		// the reply already exists; losing the transcript turn is logged, not fatal
		logx.Error().Err(err).Str("request_id", requestID).Msg("failed to append assistant turn")
	}

	resp := model.Response{
		Message:         reply,
		Type:            classification.Type,
		SuggestedAction: classification.SuggestedAction,
		ConversationID:  in.ConversationID,
		Timestamp:       o.now().UTC(),
	}

	if IsCommonQuestion(in.Message) {
		if err := o.cache.Store(ctx, in.Message, &resp); err != nil {
			logx.Warn().Err(err).Str("request_id", requestID).Msg("cache store failed")
		}
	}

	return resp
}

// ClearConversation drops the transcript for the id. Clearing an unknown id
// is a no-op; store failures are logged and absorbed.
func (o *Orchestrator) ClearConversation(ctx context.Context, conversationID string) {
	if err := o.sessions.Clear(ctx, conversationID); err != nil {
		logx.Error().Err(err).Str("conversation_id", conversationID).Msg("failed to clear conversation")
	}
}
