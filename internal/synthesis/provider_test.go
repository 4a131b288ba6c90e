package synthesis_test

import (
	"context"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Swethareddy21395/EchoText/internal/config"
	"github.com/Swethareddy21395/EchoText/internal/synthesis"
)

// The provider rejects an unknown voice style before any remote call,
// so callers that skip service-level validation still get a
// categorized error rather than an empty voice on the wire.
func TestOpenAIProvider_UnknownVoiceStyle(t *testing.T) {
	cfg := &config.Config{}
	cfg.OpenAI.Model = "tts-1"

	provider := synthesis.NewOpenAIProvider(zap.NewNop(), cfg, openai.NewClient("test-key"))

	_, err := provider.Synthesize(context.Background(), synthesis.Request{
		Text:     "hello",
		Language: "en",
		Voice:    "android",
	})

	var synthErr *synthesis.Error
	require.ErrorAs(t, err, &synthErr)
	assert.Equal(t, synthesis.ErrKindInvalidRequest, synthErr.Kind)
	assert.Contains(t, synthErr.Message, "android")
}
