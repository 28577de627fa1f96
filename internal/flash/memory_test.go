package flash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_PushAndPopAll(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Push(ctx, "browser-1", "first"))
	assert.NoError(t, store.Push(ctx, "browser-1", "second"))
	assert.NoError(t, store.Push(ctx, "browser-2", "other"))

	messages, err := store.PopAll(ctx, "browser-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, messages)

	// popping drains the queue
	messages, err = store.PopAll(ctx, "browser-1")
	assert.NoError(t, err)
	assert.Empty(t, messages)

	// other browsers are unaffected
	messages, err = store.PopAll(ctx, "browser-2")
	assert.NoError(t, err)
	assert.Equal(t, []string{"other"}, messages)
}

func TestMemoryStore_PopUnknownKey(t *testing.T) {
	store := NewMemoryStore()

	messages, err := store.PopAll(context.Background(), "never-seen")
	assert.NoError(t, err)
	assert.Empty(t, messages)
}
