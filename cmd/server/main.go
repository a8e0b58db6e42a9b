package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/surveymail/surveymail/internal/config"
	"github.com/surveymail/surveymail/internal/email"
	"github.com/surveymail/surveymail/internal/handler"
	"github.com/surveymail/surveymail/internal/logger"
	"github.com/surveymail/surveymail/internal/middleware"
	"github.com/surveymail/surveymail/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", handler.Version).Msg("starting surveymail server")

	// Missing delivery credentials are reported per request, not fatal at
	// startup, but worth a warning in the log.
	if err := cfg.Brevo.Validate(); err != nil {
		log.Warn().Msg("delivery configuration incomplete; submissions will fail until BREVO_API_KEY, TO_EMAIL and FROM_EMAIL are set")
	}

	// Initialize email sender
	sender := email.NewBrevoSender(cfg.Brevo.APIKey)

	// Initialize handlers and middleware
	h := handler.New(log, cfg, sender)
	mw := middleware.New(log)

	// Set up router
	r := router.New(h, mw)

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
