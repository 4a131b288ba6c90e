// Package server exposes the synthesis service over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Swethareddy21395/EchoText/internal/config"
	"github.com/Swethareddy21395/EchoText/internal/synthesis"
	"github.com/Swethareddy21395/EchoText/pkg/audio"
)

// maxRequestBodySize bounds synthesis request bodies well above the
// text length limit.
const maxRequestBodySize = 64 << 10

// Server is the HTTP front end: it accepts synthesis requests, serves
// playable WAV bodies, and manages the history list.
type Server struct {
	logger          *zap.Logger
	service         *synthesis.Service
	httpSrv         *http.Server
	shutdownTimeout time.Duration
}

// NewServer creates the HTTP server with all routes registered. It does
// not start listening; that is tied to the application lifecycle.
func NewServer(logger *zap.Logger, cfg *config.Config, service *synthesis.Service) *Server {
	s := &Server{
		logger:          logger.Named("http_server"),
		service:         service,
		shutdownTimeout: cfg.Server.ShutdownTimeout(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/synthesize", s.handleSynthesize)
	mux.HandleFunc("GET /api/speech/{id}", s.handleSpeech)
	mux.HandleFunc("GET /api/voices", s.handleVoices)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("DELETE /api/history", s.handleClearHistory)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.httpSrv = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	return s
}

// Handler returns the route table, used directly in tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req synthesis.Request

	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.writeErrorMessage(w, http.StatusBadRequest, "request body is not valid JSON")

		return
	}

	entry, err := s.service.Synthesize(r.Context(), req)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"entry":     entry,
		"mime":      audio.MIMETypeWAV,
		"speechUrl": "/api/speech/" + entry.ID,
	})
}

func (s *Server) handleSpeech(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	container, err := s.service.Speech(id)
	if err != nil {
		s.writeError(w, err)

		return
	}

	w.Header().Set("Content-Type", container.MIME)
	w.Header().Set("Content-Length", strconv.Itoa(len(container.Data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", "speech-"+id+".wav"))

	if _, err := w.Write(container.Data); err != nil {
		s.logger.Warn("Failed to write speech response", zap.String("id", id), zap.Error(err))
	}
}

func (s *Server) handleVoices(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"voices":    synthesis.VoiceStyles(),
		"languages": synthesis.Languages(),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"entries": s.service.History(),
	})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, _ *http.Request) {
	s.service.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps service failures to HTTP statuses and user-facing
// messages.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var synthErr *synthesis.Error
	if errors.As(err, &synthErr) {
		status := http.StatusBadGateway
		message := "The speech service could not complete the request."

		switch synthErr.Kind {
		case synthesis.ErrKindInvalidRequest:
			status = http.StatusBadRequest
			message = synthErr.Message
		case synthesis.ErrKindRateLimit:
			status = http.StatusTooManyRequests
			message = "The speech service is rate limiting requests. Try again shortly."
		case synthesis.ErrKindPolicyViolation:
			status = http.StatusUnprocessableEntity
			message = "The text was rejected by the speech service's content policy."
		case synthesis.ErrKindAuth:
			message = "The speech service rejected this deployment's credentials."
		case synthesis.ErrKindNetwork:
			message = "The speech service is unreachable. Try again shortly."
		}

		s.logger.Warn("Synthesis request failed",
			zap.String("kind", string(synthErr.Kind)),
			zap.Error(err),
		)
		s.writeErrorMessage(w, status, message)

		return
	}

	if errors.Is(err, synthesis.ErrNotFound) {
		s.writeErrorMessage(w, http.StatusNotFound, "No synthesis with that id.")

		return
	}

	// Corrupt payload or unrepresentable audio from the provider; the
	// pipeline never returns a partial container.
	if errors.Is(err, audio.ErrMalformedInput) || errors.Is(err, audio.ErrPayloadTooLarge) || errors.Is(err, audio.ErrInvalidFormat) {
		s.logger.Error("Stored audio payload could not be packaged", zap.Error(err))
		s.writeErrorMessage(w, http.StatusBadGateway, "The stored audio payload is not playable.")

		return
	}

	s.logger.Error("Unhandled error in HTTP handler", zap.Error(err))
	s.writeErrorMessage(w, http.StatusInternalServerError, "Internal error.")
}

func (s *Server) writeErrorMessage(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("Failed to encode JSON response", zap.Error(err))
	}
}
