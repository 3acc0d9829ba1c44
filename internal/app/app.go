package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/tavus-session-proxy/internal/config"
	"github.com/MikhailRaia/tavus-session-proxy/internal/handler"
	"github.com/MikhailRaia/tavus-session-proxy/internal/service"
	"github.com/MikhailRaia/tavus-session-proxy/internal/tavus"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config  *config.Config
	handler http.Handler
}

func NewApp(cfg *config.Config) *App {
	client := tavus.NewClient(cfg.TavusBaseURL, cfg.TavusAPIKey)

	sessionService := service.NewSessionService(client, cfg.ReplicaID, cfg.PersonaID)

	httpHandler := handler.NewHandler(sessionService)

	return &App{
		config:  cfg,
		handler: httpHandler.RegisterRoutes(),
	}
}

// Handler exposes the routed handler for embedding in other servers.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	if a.config.TavusAPIKey == "" {
		log.Warn().Msg("TAVUS_API_KEY is not set, Tavus will reject conversation requests")
	}

	server := &http.Server{
		Addr:    a.config.ServerAddress,
		Handler: a.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", a.config.ServerAddress).Msg("Starting server")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
