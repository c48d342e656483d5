package repo

import (
	"context"
	"sync"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/lumena-studio/concierge/internal/assistant/model"
)

type memorySession struct {
	messages []*schema.Message
	touched  time.Time
}

// MemoryConversationRepository is the in-process transcript store used when
// no Redis URL is configured, and as a deterministic fake in tests. The
// mutex is held across read-modify-write so concurrent appends to the same
// conversation cannot interleave or drop turns. Sessions idle past idleTTL
// are evicted lazily on access.
type MemoryConversationRepository struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	idleTTL  time.Duration
	now      func() time.Time
}

func NewMemoryConversationRepository(idleTTL time.Duration) *MemoryConversationRepository {
	return &MemoryConversationRepository{
		sessions: make(map[string]*memorySession),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// live returns the session for the id, evicting it first when idle-expired.
// Callers must hold the mutex.
func (r *MemoryConversationRepository) live(conversationID string) *memorySession {
	s, ok := r.sessions[conversationID]
	if !ok {
		return nil
	}
	if r.idleTTL > 0 && r.now().Sub(s.touched) > r.idleTTL {
		delete(r.sessions, conversationID)
		return nil
	}
	return s
}

func (r *MemoryConversationRepository) AddMessage(_ context.Context, conversationID string, message *schema.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.live(conversationID)
	if s == nil {
		s = &memorySession{}
		r.sessions[conversationID] = s
	}
	m := *message
	s.messages = append(s.messages, &m)
	s.touched = r.now()
	return nil
}

func (r *MemoryConversationRepository) LoadHistory(_ context.Context, conversationID string) (*model.ConversationHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.live(conversationID)
	if s == nil {
		return &model.ConversationHistory{ConversationID: conversationID, Messages: []*schema.Message{}}, nil
	}

	msgs := make([]*schema.Message, len(s.messages))
	copy(msgs, s.messages)
	return &model.ConversationHistory{ConversationID: conversationID, Messages: msgs}, nil
}

func (r *MemoryConversationRepository) ClearHistory(_ context.Context, conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, conversationID)
	return nil
}

func (r *MemoryConversationRepository) MessageCount(_ context.Context, conversationID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.live(conversationID)
	if s == nil {
		return 0, nil
	}
	return len(s.messages), nil
}

var _ model.ConversationRepository = (*MemoryConversationRepository)(nil)
