package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"socialCPT/cmd/app"
	"socialCPT/internal/config"
	handlers "socialCPT/internal/handler"
	"socialCPT/internal/logger"
	"socialCPT/internal/metrics"
	"socialCPT/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, _, services, err := app.App(ctx, cfg, log)
	if err != nil {
		log.WithField("error", err.Error()).Fatal("Failed to start application")
	}
	defer func() {
		if err := db.CloseDB(); err != nil {
			logger.LogError(log, "Failed to close database", err, nil)
		}
	}()

	handler := handlers.NewHandlers(services, cfg, log)

	router := mux.NewRouter()
	router.Use(metrics.InstrumentHandler)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	handler.RegisterRoutes(router)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(services.Token, services.User, log),
		middleware.CORS(cfg.CORSAllowedOrigin),
		middleware.Logging(log),
		middleware.RequestID,
		middleware.Recover(log),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           handlerChain,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithField("error", err.Error()).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.LogError(log, "Graceful shutdown failed", err, nil)
	}
}
