package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"othello/internal/config"
	httpserver "othello/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	configPath := flag.String("config", "", "path to JSON config file")
	logLevel := flag.String("log-level", "", "log level (overrides config)")
	flag.Parse()

	file, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level := file.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	config.SetupLogging(level)

	cfg := file.Engine()
	h := httpserver.NewHandler(cfg, httpserver.WithMaxRequestDepth(file.RequestDepth()))
	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpserver.NewRouter(h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().
		Str("addr", *addr).
		Int("max_depth", cfg.Search.MaxDepth).
		Int("generations", cfg.Genetic.Generations).
		Msg("listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("bye")
}
