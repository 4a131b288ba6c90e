// Package synthesis orchestrates speech synthesis requests against a
// remote provider and packages the results for playback.
package synthesis

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Swethareddy21395/EchoText/internal/config"
	"github.com/Swethareddy21395/EchoText/pkg/audio"
)

// Request describes one synthesis call: the text to speak, the target
// language code, and the voice style name.
type Request struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Voice    string `json:"voice"`
}

// Result carries the synthesized audio as a base64 PCM payload, the
// transport encoding used throughout the service, together with the
// payload's PCM layout.
type Result struct {
	Payload string
	Format  audio.Format
}

// Provider defines the interface for a remote speech synthesis service.
type Provider interface {
	Synthesize(ctx context.Context, req Request) (*Result, error)
}

// NewOpenAIProvider creates a Provider backed by the OpenAI speech API.
// The provider requests raw PCM and re-encodes it as base64 for
// transport.
func NewOpenAIProvider(logger *zap.Logger, cfg *config.Config, client *openai.Client) Provider {
	model := openai.SpeechModel(cfg.OpenAI.Model)
	if model == "" {
		model = openai.TTSModel1
	}

	return &openAIProvider{
		logger: logger.Named("openai_provider"),
		client: client,
		model:  model,
		format: audio.Format{
			SampleRate:    cfg.Audio.SampleRate,
			NumChannels:   cfg.Audio.NumChannels,
			BitsPerSample: cfg.Audio.BitsPerSample,
		},
	}
}

type openAIProvider struct {
	logger *zap.Logger
	client *openai.Client
	model  openai.SpeechModel
	format audio.Format
}

// Synthesize sends a speech request to OpenAI and returns the audio as
// a base64 PCM payload.
func (p *openAIProvider) Synthesize(ctx context.Context, req Request) (*Result, error) {
	voice, ok := voiceStyles[req.Voice]
	if !ok {
		return nil, newError(ErrKindInvalidRequest, fmt.Sprintf("unknown voice style %q", req.Voice))
	}

	p.logger.Info("Sending speech request to OpenAI",
		zap.String("model", string(p.model)),
		zap.String("voice", string(voice)),
		zap.String("language", req.Language),
		zap.Int("textLength", len(req.Text)),
	)

	speech, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          p.model,
		Input:          req.Text,
		Voice:          voice,
		ResponseFormat: openai.SpeechResponseFormatPcm,
	})
	if err != nil {
		p.logger.Error("Failed to get speech from OpenAI", zap.Error(err))

		return nil, classifyProviderError(err)
	}
	defer speech.Close()

	pcm, err := io.ReadAll(speech)
	if err != nil {
		p.logger.Error("Failed to read speech response body", zap.Error(err))

		return nil, &Error{Kind: ErrKindNetwork, Message: "failed to read the speech response", Err: err}
	}

	if len(pcm) == 0 {
		p.logger.Warn("OpenAI returned an empty speech response")

		return nil, newError(ErrKindProvider, "speech service returned no audio")
	}

	p.logger.Info("Received speech from OpenAI", zap.Int("pcmBytes", len(pcm)))

	return &Result{
		Payload: base64.StdEncoding.EncodeToString(pcm),
		Format:  p.format,
	}, nil
}
