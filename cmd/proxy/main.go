package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/tavus-session-proxy/internal/app"
	"github.com/MikhailRaia/tavus-session-proxy/internal/config"
	"github.com/MikhailRaia/tavus-session-proxy/internal/logger"
)

var memprofile = flag.String("memprofile", "", "write memory profile to `file` on exit")

func writeHeapProfile(path string) {
	f, err := os.Create(path)
	if err == nil {
		runtime.GC()
		pprof.WriteHeapProfile(f)
		_ = f.Close()
	}
}

func main() {
	cfg := config.NewConfig()

	logger.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.NewApp(cfg)
	err := application.Run(ctx)

	if *memprofile != "" {
		writeHeapProfile(*memprofile)
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Error running application")
	}
}
