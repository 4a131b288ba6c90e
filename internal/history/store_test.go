package history_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Swethareddy21395/EchoText/internal/history"
	"github.com/Swethareddy21395/EchoText/pkg/audio"
)

func newEntry(id string) *history.Entry {
	return &history.Entry{
		ID:        id,
		Text:      "hello",
		Language:  "en",
		Voice:     "warm",
		Payload:   "AAEC",
		Format:    audio.DefaultFormat(),
		CreatedAt: time.Now(),
	}
}

func TestStore_AddAndGet(t *testing.T) {
	store := history.NewStore(zap.NewNop(), 10)

	store.Add(newEntry("a"))

	entry, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "hello", entry.Text)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStore_ListMostRecentFirst(t *testing.T) {
	store := history.NewStore(zap.NewNop(), 10)

	store.Add(newEntry("a"))
	store.Add(newEntry("b"))
	store.Add(newEntry("c"))

	entries := store.List()
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
	assert.Equal(t, "a", entries[2].ID)
}

func TestStore_EvictsOldestWhenFull(t *testing.T) {
	store := history.NewStore(zap.NewNop(), 3)

	for i := 0; i < 5; i++ {
		store.Add(newEntry(fmt.Sprintf("entry-%d", i)))
	}

	assert.Len(t, store.List(), 3)

	_, ok := store.Get("entry-0")
	assert.False(t, ok, "oldest entry should have been evicted")

	_, ok = store.Get("entry-4")
	assert.True(t, ok)
}

func TestStore_Clear(t *testing.T) {
	store := history.NewStore(zap.NewNop(), 10)

	store.Add(newEntry("a"))
	store.Add(newEntry("b"))
	store.Clear()

	assert.Empty(t, store.List())

	_, ok := store.Get("a")
	assert.False(t, ok)
}
