package conversations

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/lumena-studio/concierge/internal/assistant/model"
)

// Manager owns the transcript lifecycle for the orchestrator: appending
// turns and assembling the bounded prompt. Only the most recent windowTurns
// turns reach the prompt; older turns stay in the store.
type Manager struct {
	conversationRepo model.ConversationRepository
	windowTurns      int
}

func NewManager(conversationRepo model.ConversationRepository, config model.ConversationConfig) *Manager {
	return &Manager{
		conversationRepo: conversationRepo,
		windowTurns:      config.WindowTurns,
	}
}

func (m *Manager) AppendUser(ctx context.Context, conversationID string, content string) error {
	return m.conversationRepo.AddMessage(ctx, conversationID, schema.UserMessage(content))
}

func (m *Manager) AppendAssistant(ctx context.Context, conversationID string, content string) error {
	return m.conversationRepo.AddMessage(ctx, conversationID, schema.AssistantMessage(content, nil))
}

// BuildPrompt assembles the gateway message list: the system instruction
// first, then at most the last windowTurns transcript turns in original
// order. Order is a correctness requirement, not a presentation choice.
func (m *Manager) BuildPrompt(ctx context.Context, conversationID string, systemPrompt string) ([]*schema.Message, error) {
	history, err := m.conversationRepo.LoadHistory(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
	}
	messages = append(messages, trimTail(history.Messages, m.windowTurns)...)

	return messages, nil
}

func (m *Manager) Clear(ctx context.Context, conversationID string) error {
	return m.conversationRepo.ClearHistory(ctx, conversationID)
}

// ====================== Helper function ======================
func trimTail(messages []*schema.Message, maxTurns int) []*schema.Message {
	if maxTurns <= 0 || len(messages) <= maxTurns {
		result := make([]*schema.Message, len(messages))
		copy(result, messages)
		return result
	}
	source := messages[len(messages)-maxTurns:]
	result := make([]*schema.Message, len(source))
	copy(result, source)
	return result
}
