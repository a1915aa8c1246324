package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloodlink/auth-service/internal/config"
	"github.com/bloodlink/auth-service/internal/domain"
	"github.com/bloodlink/auth-service/internal/infrastructure/mongodb"
	"github.com/bloodlink/auth-service/internal/pkg/logger"
	"github.com/bloodlink/auth-service/internal/security"
	"github.com/bloodlink/auth-service/internal/service"
	"github.com/bloodlink/auth-service/internal/transport/rest"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogLevel != "" {
		_ = os.Setenv("LOG_LEVEL", cfg.LogLevel)
	}
	if cfg.LogFormat != "" {
		_ = os.Setenv("LOG_FORMAT", cfg.LogFormat)
	}

	logger.Init()
	log := logger.Log.With().
		Str("service", "bloodbank-auth").
		Str("env", cfg.AppEnv).
		Logger()

	// Root ctx with signal cancellation
	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- Mongo ----
	// A missing URI is not fatal: the service starts degraded and the auth
	// endpoints answer "Database not configured" until one is provided.
	var store domain.UserRepository
	if cfg.MongoURI == "" {
		log.Warn().Msg("MONGO_URI not set, starting without a database")
	} else {
		client, err := mongo.Connect(rootCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Warn().Err(err).Msg("mongo connect failed (continuing degraded)")
		} else {
			defer func() {
				disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = client.Disconnect(disconnectCtx)
			}()

			repo := mongodb.New(client.Database(cfg.MongoDB))

			pingCtx, cancel := context.WithTimeout(rootCtx, 5*time.Second)
			if err := repo.Ping(pingCtx); err != nil {
				log.Warn().Err(err).Msg("mongo ping failed (continuing, /test will report it)")
			} else {
				log.Info().Str("db", cfg.MongoDB).Msg("mongo connected")
			}
			cancel()

			idxCtx, cancel := context.WithTimeout(rootCtx, 5*time.Second)
			if err := repo.EnsureIndexes(idxCtx); err != nil {
				log.Warn().Err(err).Msg("email index create failed")
			}
			cancel()

			store = repo
		}
	}

	// ---- Application service ----
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	svc := service.NewAuthService(store, hasher)
	h := rest.NewHandler(svc, store, cfg.MongoDB, cfg.MongoURI != "")

	// ---- Router ----
	httpHandler := rest.NewRouter(rest.RouterDeps{Handler: h})

	// ---- HTTP server ----
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server crashed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info().Msg("shutdown complete")
}
