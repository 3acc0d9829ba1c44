package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/tavus-session-proxy/internal/logger"
	"github.com/MikhailRaia/tavus-session-proxy/internal/middleware"
	"github.com/MikhailRaia/tavus-session-proxy/internal/model"
)

// SessionFailedMessage is the only error message a caller ever sees.
const SessionFailedMessage = "Failed to create Tavus session"

type SessionService interface {
	CreateSession(ctx context.Context) (string, error)
}

type Handler struct {
	sessions SessionService
}

func NewHandler(sessions SessionService) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS)

	// promhttp negotiates its own compression.
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.GzipMiddleware)

		r.Get("/ping", h.handlePing)

		// Method, path and body of the inbound request are not inspected.
		// Serverless platforms invoke the function on its own path
		// (/api, /api/index, ...), so every unmatched path creates a session.
		r.HandleFunc("/", h.handleCreateSession)
		r.HandleFunc("/create-conversation", h.handleCreateSession)
		r.NotFound(h.handleCreateSession)
	})

	return r
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	url, err := h.sessions.CreateSession(r.Context())
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Msg("Failed to create Tavus session")

		respondError(w, http.StatusInternalServerError, SessionFailedMessage)
		return
	}

	respondJSON(w, http.StatusOK, model.SessionResponse{URL: url})
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
