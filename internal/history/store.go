// Package history keeps a bounded in-memory record of recent
// syntheses so they can be replayed or downloaded until cleared.
package history

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/Swethareddy21395/EchoText/pkg/audio"
)

// Entry is one completed synthesis: the request that produced it and
// the base64 PCM payload returned by the provider.
type Entry struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Language  string       `json:"language"`
	Voice     string       `json:"voice"`
	Payload   string       `json:"payload"`
	Format    audio.Format `json:"format"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Store defines the interface for recording and retrieving syntheses.
// Eviction is LRU: once the store is full, the oldest entry is dropped.
type Store interface {
	Add(entry *Entry)
	Get(id string) (*Entry, bool)
	List() []*Entry
	Clear()
}

// NewStore creates a Store bounded to size entries.
func NewStore(logger *zap.Logger, size int) Store {
	cache, err := lru.New[string, *Entry](size)
	if err != nil {
		// Only reachable with a non-positive size, which the provider
		// constructor guards against.
		panic(err)
	}

	return &lruStore{
		logger: logger.Named("history_store"),
		cache:  cache,
	}
}

type lruStore struct {
	logger *zap.Logger
	cache  *lru.Cache[string, *Entry]
}

// Add records a synthesis.
func (s *lruStore) Add(entry *Entry) {
	s.cache.Add(entry.ID, entry)
	s.logger.Debug("Stored synthesis in history",
		zap.String("id", entry.ID),
		zap.Int("entries", s.cache.Len()),
	)
}

// Get retrieves a synthesis by id.
func (s *lruStore) Get(id string) (*Entry, bool) {
	return s.cache.Get(id)
}

// List returns the stored entries, most recent first.
func (s *lruStore) List() []*Entry {
	keys := s.cache.Keys() // oldest to newest

	entries := make([]*Entry, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		if entry, ok := s.cache.Peek(keys[i]); ok {
			entries = append(entries, entry)
		}
	}

	return entries
}

// Clear discards every stored entry.
func (s *lruStore) Clear() {
	s.cache.Purge()
	s.logger.Debug("Cleared synthesis history")
}
