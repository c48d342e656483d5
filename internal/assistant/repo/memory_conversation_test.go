package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryConversationAppendOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryConversationRepository(time.Hour)

	require.NoError(t, store.AddMessage(ctx, "c1", schema.UserMessage("first")))
	require.NoError(t, store.AddMessage(ctx, "c1", schema.AssistantMessage("second", nil)))
	require.NoError(t, store.AddMessage(ctx, "c1", schema.UserMessage("third")))

	history, err := store.LoadHistory(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, history.Messages, 3)
	assert.Equal(t, "first", history.Messages[0].Content)
	assert.Equal(t, "second", history.Messages[1].Content)
	assert.Equal(t, "third", history.Messages[2].Content)

	n, err := store.MessageCount(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMemoryConversationUnknownIDIsEmpty(t *testing.T) {
	store := NewMemoryConversationRepository(time.Hour)

	history, err := store.LoadHistory(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, history.Messages)
	assert.Equal(t, "missing", history.ConversationID)
}

func TestMemoryConversationClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryConversationRepository(time.Hour)

	require.NoError(t, store.AddMessage(ctx, "c1", schema.UserMessage("hello")))
	require.NoError(t, store.ClearHistory(ctx, "c1"))
	require.NoError(t, store.ClearHistory(ctx, "c1"))

	history, err := store.LoadHistory(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, history.Messages)
}

func TestMemoryConversationIdleEviction(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryConversationRepository(30 * time.Minute)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.AddMessage(ctx, "c1", schema.UserMessage("hello")))

	// an append refreshes the idle clock
	now = now.Add(20 * time.Minute)
	require.NoError(t, store.AddMessage(ctx, "c1", schema.UserMessage("still here")))

	now = now.Add(20 * time.Minute)
	history, err := store.LoadHistory(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, history.Messages, 2)

	// idle past the TTL the session is gone
	now = now.Add(31 * time.Minute)
	history, err = store.LoadHistory(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, history.Messages)
}

func TestMemoryConversationConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryConversationRepository(time.Hour)

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = store.AddMessage(ctx, "c1", schema.UserMessage(fmt.Sprintf("w%d-%d", w, i)))
			}
		}(w)
	}
	wg.Wait()

	n, err := store.MessageCount(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, writers*perWriter, n)
}
