package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventease/config"
	authadapter "eventease/internal/adapters/auth"
	"eventease/internal/adapters/email"
	"eventease/internal/adapters/genai"
	delivery "eventease/internal/delivery/http"
	"eventease/internal/delivery/http/controllers"
	"eventease/internal/delivery/http/middleware"
	"eventease/internal/kv"
	"eventease/internal/repository/kvstore"
	"eventease/internal/services"

	_ "eventease/docs"
)

// @title EventEase API
// @version 1.0
// @description Backend for the EventEase admin dashboard.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

	store, err := kv.New(cfg)
	if err != nil {
		logger.Error("failed to initialize key-value store", "backend", cfg.KVBackend, "err", err)
		os.Exit(1)
	}

	userRepo := kvstore.NewUserRepository(store)
	entityRepo := kvstore.NewEntityRepository(store)
	if cfg.TenancyShared {
		entityRepo = kvstore.NewSharedEntityRepository(store)
	}

	mailer, err := email.NewMailer(cfg.Mailer)
	if err != nil {
		logger.Error("failed to initialize mailer", "err", err)
		os.Exit(1)
	}

	hasher := authadapter.NewBcryptHasher(10)
	tokens := authadapter.NewJWTCodec(cfg.JWTSecret)

	authService := services.NewAuthService(userRepo, hasher, tokens, cfg.JWTExpiry)
	eventService := services.NewEventService(entityRepo, mailer, logger)
	prediction := genai.NewClient(cfg.GeminiEndpoint, cfg.GeminiModel, cfg.GeminiAPIKey, nil)

	mux := delivery.NewRouter(
		controllers.NewAuthController(logger, authService),
		controllers.NewDBController(logger, eventService),
		controllers.NewEventController(logger, eventService),
		controllers.NewPredictionController(logger, prediction),
		tokens,
	)

	handler := middleware.LoggingMiddleware(logger, mux)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "kv_backend", cfg.KVBackend, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
