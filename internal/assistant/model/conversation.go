package model

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

type ConversationRepository interface {
	// AddMessage appends a turn to the conversation transcript
	AddMessage(ctx context.Context, conversationID string, message *schema.Message) error

	// LoadHistory retrieves the full transcript for a conversation
	LoadHistory(ctx context.Context, conversationID string) (*ConversationHistory, error)

	// ClearHistory removes the transcript for a conversation; clearing an
	// absent conversation is a no-op
	ClearHistory(ctx context.Context, conversationID string) error

	// MessageCount returns the number of turns in the transcript
	MessageCount(ctx context.Context, conversationID string) (int, error)
}

// ConversationHistory represents loaded transcript data with metadata.
type ConversationHistory struct {
	ConversationID string
	Messages       []*schema.Message
}
