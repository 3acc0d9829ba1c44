// Package api is the serverless entry point. Platforms that invoke a Go
// function per request (Vercel and similar) call Handler directly.
package api

import (
	"net/http"
	"sync"

	"github.com/MikhailRaia/tavus-session-proxy/internal/app"
	"github.com/MikhailRaia/tavus-session-proxy/internal/config"
	"github.com/MikhailRaia/tavus-session-proxy/internal/logger"
)

var (
	initOnce sync.Once
	router   http.Handler

	// loadConfig is replaced in tests.
	loadConfig = config.LoadFromEnv
)

// Handler creates a Tavus conversation session for every invocation.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		cfg := loadConfig()
		logger.InitLogger(cfg.LogLevel)
		router = app.NewApp(cfg).Handler()
	})

	router.ServeHTTP(w, r)
}
