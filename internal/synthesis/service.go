package synthesis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Swethareddy21395/EchoText/internal/history"
	"github.com/Swethareddy21395/EchoText/pkg/audio"
)

// maxTextLength caps the synthesized text at the provider's input limit.
const maxTextLength = 4096

// ErrNotFound indicates a synthesis id with no history entry, either
// never issued or already evicted.
var ErrNotFound = errors.New("synthesis not found")

// Service orchestrates speech synthesis: it validates requests, calls
// the provider, records results in history, and packages stored
// payloads into playable WAV containers on demand.
type Service struct {
	logger   *zap.Logger
	provider Provider
	store    history.Store
}

// NewService creates a new synthesis Service.
func NewService(logger *zap.Logger, provider Provider, store history.Store) *Service {
	return &Service{
		logger:   logger.Named("synthesis_service"),
		provider: provider,
		store:    store,
	}
}

// Synthesize validates the request, obtains audio from the provider,
// and records the result in history.
func (s *Service) Synthesize(ctx context.Context, req Request) (*history.Entry, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	result, err := s.provider.Synthesize(ctx, req)
	if err != nil {
		return nil, err
	}

	entry := &history.Entry{
		ID:        newID(),
		Text:      req.Text,
		Language:  req.Language,
		Voice:     req.Voice,
		Payload:   result.Payload,
		Format:    result.Format,
		CreatedAt: time.Now().UTC(),
	}
	s.store.Add(entry)

	s.logger.Info("Synthesis completed",
		zap.String("id", entry.ID),
		zap.String("language", entry.Language),
		zap.String("voice", entry.Voice),
	)

	return entry, nil
}

// Speech builds a playable WAV container for a stored synthesis. The
// payload is decoded from its transport encoding and wrapped with a
// RIFF/WAVE header; nothing is returned on failure.
func (s *Service) Speech(id string) (audio.Container, error) {
	entry, ok := s.store.Get(id)
	if !ok {
		return audio.Container{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	pcm, err := audio.DecodeBase64(entry.Payload)
	if err != nil {
		return audio.Container{}, fmt.Errorf("stored payload for %s is corrupt: %w", id, err)
	}

	return audio.EncodeWAV(pcm, entry.Format)
}

// History returns the recorded syntheses, most recent first.
func (s *Service) History() []*history.Entry {
	return s.store.List()
}

// ClearHistory discards all recorded syntheses.
func (s *Service) ClearHistory() {
	s.store.Clear()
	s.logger.Info("Synthesis history cleared")
}

func validateRequest(req Request) error {
	if req.Text == "" {
		return newError(ErrKindInvalidRequest, "text must not be empty")
	}
	if len(req.Text) > maxTextLength {
		return newError(ErrKindInvalidRequest,
			fmt.Sprintf("text exceeds the %d character limit", maxTextLength))
	}
	if _, ok := supportedLanguages[req.Language]; !ok {
		return newError(ErrKindInvalidRequest,
			fmt.Sprintf("unsupported language %q", req.Language))
	}
	if _, ok := voiceStyles[req.Voice]; !ok {
		return newError(ErrKindInvalidRequest,
			fmt.Sprintf("unknown voice style %q", req.Voice))
	}

	return nil
}

func newID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}

	return hex.EncodeToString(b[:])
}
