package orchestrator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumena-studio/concierge/internal/assistant/model"
	"github.com/lumena-studio/concierge/internal/assistant/orchestrator"
	"github.com/lumena-studio/concierge/internal/assistant/repo"
)

type stubGateway struct {
	reply   string
	err     error
	calls   int
	prompts [][]*schema.Message
}

func (s *stubGateway) Complete(_ context.Context, messages []*schema.Message) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, messages)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type errCache struct{}

func (errCache) Lookup(context.Context, string) (*model.Response, error) {
	return nil, errors.New("cache down")
}

func (errCache) Store(context.Context, string, *model.Response) error {
	return errors.New("cache down")
}

var testFallback = model.FallbackConfig{
	NotConfiguredMessage: "Hi! I'm Skye, and I'm here to help you explore how Lumena Studio can grow your business. What type of business do you have?",
	UnavailableMessage:   "I'm having trouble connecting to my AI brain right now, but I'd still love to help! Let's set up a quick chat with Jordan and the team.",
}

type fixture struct {
	orc      *orchestrator.Orchestrator
	gw       *stubGateway
	sessions *repo.MemoryConversationRepository
}

func newFixture(t *testing.T, gw *stubGateway) *fixture {
	t.Helper()

	sessions := repo.NewMemoryConversationRepository(time.Hour)
	cfg := orchestrator.Config{
		Sessions:     sessions,
		Cache:        repo.NewMemoryResponseCache(time.Hour),
		Conversation: model.ConversationConfig{WindowTurns: 10},
		Persona:      model.PersonaConfig{AssistantName: "Skye", BusinessName: "Lumena Studio", PrincipalName: "Jordan"},
		Fallback:     testFallback,
	}
	if gw != nil {
		cfg.Gateway = gw
	}

	orc, err := orchestrator.New(context.Background(), cfg)
	require.NoError(t, err)
	return &fixture{orc: orc, gw: gw, sessions: sessions}
}

func TestProcessMessageNotConfigured(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	resp := f.orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c1", Message: "hello"})

	assert.Equal(t, model.TypeDiscovery, resp.Type)
	assert.Equal(t, model.ActionLearnMore, resp.SuggestedAction)
	assert.Equal(t, "c1", resp.ConversationID)
	assert.Equal(t, testFallback.NotConfiguredMessage, resp.Message)
	assert.NotContains(t, resp.Message, "trouble")

	// short-circuits before any session work
	n, err := f.sessions.MessageCount(ctx, "c1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProcessMessageCallFailed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &stubGateway{err: errors.New("provider 500")})

	resp := f.orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c1", Message: "hello"})

	assert.Equal(t, model.TypeError, resp.Type)
	assert.Equal(t, model.ActionBookCall, resp.SuggestedAction)
	assert.Equal(t, testFallback.UnavailableMessage, resp.Message)
	assert.Contains(t, resp.Message, "trouble")
}

func TestProcessMessagePricingScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &stubGateway{reply: "Great question — what's your timeline?"})

	resp := f.orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c1", Message: "how much does it cost"})

	assert.Equal(t, model.TypeServiceInquiry, resp.Type)
	assert.Equal(t, model.ActionBookCall, resp.SuggestedAction)
	assert.Equal(t, "Great question — what's your timeline?", resp.Message)
	assert.False(t, resp.Cached)

	// both turns landed in the transcript
	n, err := f.sessions.MessageCount(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestProcessMessagePromptShape(t *testing.T) {
	ctx := context.Background()
	gw := &stubGateway{reply: "Thanks for sharing!"}
	f := newFixture(t, gw)

	f.orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c1", Message: "we run a coffee shop"})

	require.Len(t, gw.prompts, 1)
	prompt := gw.prompts[0]
	require.Len(t, prompt, 2)
	assert.Equal(t, schema.System, prompt[0].Role)
	assert.Contains(t, prompt[0].Content, "Lumena Studio")
	assert.Equal(t, schema.User, prompt[1].Role)
	assert.Equal(t, "we run a coffee shop", prompt[1].Content)
}

func TestProcessMessageCachesCommonQuestions(t *testing.T) {
	ctx := context.Background()
	gw := &stubGateway{reply: "We offer marketing, web and branding. What type of business do you have?"}
	f := newFixture(t, gw)

	first := f.orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c1", Message: "what services do you offer"})
	second := f.orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c2", Message: "what services do you offer"})

	assert.Equal(t, 1, gw.calls, "second request must be served from cache")

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, "c2", second.ConversationID)

	// identical payload apart from conversation id and the cache marker
	assert.Equal(t, first.Message, second.Message)
	assert.Equal(t, first.Type, second.Type)
	assert.Equal(t, first.SuggestedAction, second.SuggestedAction)
	assert.Equal(t, first.Timestamp, second.Timestamp)
}

func TestProcessMessageDoesNotCacheUncommonQuestions(t *testing.T) {
	ctx := context.Background()
	gw := &stubGateway{reply: "Interesting, go on."}
	f := newFixture(t, gw)

	f.orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c1", Message: "my dog ate my invoice"})
	f.orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c1", Message: "my dog ate my invoice"})

	assert.Equal(t, 2, gw.calls)
}

func TestClearConversationResetsPrompt(t *testing.T) {
	ctx := context.Background()
	gw := &stubGateway{reply: "Tell me about your business!"}
	f := newFixture(t, gw)

	f.orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c1", Message: "first message"})
	f.orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c1", Message: "second message"})

	f.orc.ClearConversation(ctx, "c1")
	// clearing an absent id is a no-op
	f.orc.ClearConversation(ctx, "never-seen")

	f.orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c1", Message: "fresh start"})

	require.Len(t, gw.prompts, 3)
	fresh := gw.prompts[2]
	require.Len(t, fresh, 2, "prompt after reset must carry no prior turns")
	assert.Equal(t, schema.System, fresh[0].Role)
	assert.Equal(t, "fresh start", fresh[1].Content)
}

func TestProcessMessageSurvivesCacheFailure(t *testing.T) {
	ctx := context.Background()
	gw := &stubGateway{reply: "Still here. What type of business do you have?"}

	orc, err := orchestrator.New(ctx, orchestrator.Config{
		Gateway:      gw,
		Sessions:     repo.NewMemoryConversationRepository(time.Hour),
		Cache:        errCache{},
		Conversation: model.ConversationConfig{WindowTurns: 10},
		Persona:      model.PersonaConfig{AssistantName: "Skye", BusinessName: "Lumena Studio", PrincipalName: "Jordan"},
		Fallback:     testFallback,
	})
	require.NoError(t, err)

	resp := orc.ProcessMessage(ctx, model.ChatInput{ConversationID: "c1", Message: "what services do you offer"})

	assert.Equal(t, 1, gw.calls, "a broken cache degrades to a miss")
	assert.Equal(t, model.TypeDiscovery, resp.Type)
	assert.Equal(t, gw.reply, resp.Message)
}

func TestNewRejectsMissingStores(t *testing.T) {
	ctx := context.Background()

	_, err := orchestrator.New(ctx, orchestrator.Config{
		Cache: repo.NewMemoryResponseCache(time.Hour),
	})
	assert.Error(t, err)

	_, err = orchestrator.New(ctx, orchestrator.Config{
		Sessions: repo.NewMemoryConversationRepository(time.Hour),
	})
	assert.Error(t, err)
}
