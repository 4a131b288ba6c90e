package server_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Swethareddy21395/EchoText/internal/config"
	"github.com/Swethareddy21395/EchoText/internal/history"
	"github.com/Swethareddy21395/EchoText/internal/server"
	"github.com/Swethareddy21395/EchoText/internal/synthesis"
	"github.com/Swethareddy21395/EchoText/pkg/audio"
)

// fakeProvider returns canned results without calling a remote service.
type fakeProvider struct {
	pcm []byte
	err error
}

func (f *fakeProvider) Synthesize(_ context.Context, _ synthesis.Request) (*synthesis.Result, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &synthesis.Result{
		Payload: base64.StdEncoding.EncodeToString(f.pcm),
		Format:  audio.DefaultFormat(),
	}, nil
}

func newTestServer(t *testing.T, provider synthesis.Provider) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	store := history.NewStore(logger, 10)
	service := synthesis.NewService(logger, provider, store)

	cfg := &config.Config{}
	cfg.Server.Addr = ":0"

	return server.NewServer(logger, cfg, service).Handler()
}

func synthesize(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/synthesize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestSynthesizeAndFetchSpeech(t *testing.T) {
	pcm := []byte{0x00, 0x01, 0x02, 0x03}
	handler := newTestServer(t, &fakeProvider{pcm: pcm})

	rec := synthesize(t, handler, `{"text":"hello","language":"en","voice":"warm"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Entry     history.Entry `json:"entry"`
		MIME      string        `json:"mime"`
		SpeechURL string        `json:"speechUrl"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Entry.ID)
	assert.Equal(t, "audio/wav", resp.MIME)
	assert.Equal(t, base64.StdEncoding.EncodeToString(pcm), resp.Entry.Payload)

	req := httptest.NewRequest(http.MethodGet, resp.SpeechURL, nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/wav", rec.Header().Get("Content-Type"))

	wav := rec.Body.Bytes()
	require.Len(t, wav, 44+len(pcm))
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, pcm, wav[44:])
}

func TestSynthesize_InvalidJSON(t *testing.T) {
	handler := newTestServer(t, &fakeProvider{})

	rec := synthesize(t, handler, `{"text":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSynthesize_UnknownVoice(t *testing.T) {
	handler := newTestServer(t, &fakeProvider{})

	rec := synthesize(t, handler, `{"text":"hello","language":"en","voice":"robot"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "voice style")
}

func TestSynthesize_ProviderErrorsMapToStatuses(t *testing.T) {
	cases := map[synthesis.ErrorKind]int{
		synthesis.ErrKindRateLimit:       http.StatusTooManyRequests,
		synthesis.ErrKindPolicyViolation: http.StatusUnprocessableEntity,
		synthesis.ErrKindAuth:            http.StatusBadGateway,
		synthesis.ErrKindNetwork:         http.StatusBadGateway,
		synthesis.ErrKindProvider:        http.StatusBadGateway,
	}

	for kind, wantStatus := range cases {
		handler := newTestServer(t, &fakeProvider{err: &synthesis.Error{Kind: kind, Message: "boom"}})

		rec := synthesize(t, handler, `{"text":"hello","language":"en","voice":"warm"}`)
		assert.Equal(t, wantStatus, rec.Code, "kind %s", kind)
	}
}

func TestSpeech_UnknownID(t *testing.T) {
	handler := newTestServer(t, &fakeProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/speech/nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHistoryListAndClear(t *testing.T) {
	handler := newTestServer(t, &fakeProvider{pcm: []byte{0x01, 0x02}})

	for i := 0; i < 3; i++ {
		rec := synthesize(t, handler, `{"text":"hello","language":"en","voice":"warm"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listResp struct {
		Entries []history.Entry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Entries, 3)

	req = httptest.NewRequest(http.MethodDelete, "/api/history", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Entries)
}

func TestVoices(t *testing.T) {
	handler := newTestServer(t, &fakeProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/voices", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "warm")
	assert.Contains(t, rec.Body.String(), "en")
}

func TestHealthz(t *testing.T) {
	handler := newTestServer(t, &fakeProvider{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
