// @title        Container Console API
// @version      1.0
// @description  JSON surface of the container monitoring console.
// @host         localhost:3001
// @BasePath     /
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

	"github.com/lelouchhh/vk-2025/internal/api"
	"github.com/lelouchhh/vk-2025/internal/api/metrics"
	"github.com/lelouchhh/vk-2025/internal/core/ports"
	"github.com/lelouchhh/vk-2025/internal/core/service"
	"github.com/lelouchhh/vk-2025/internal/infrastructure/backend"
	"github.com/lelouchhh/vk-2025/internal/infrastructure/db/bolt"
	"github.com/lelouchhh/vk-2025/internal/infrastructure/db/memory"
	"github.com/lelouchhh/vk-2025/internal/infrastructure/db/redis"
	"github.com/lelouchhh/vk-2025/internal/pkg/config"
	"github.com/lelouchhh/vk-2025/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openTokenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Session.Store).Msg("open token store")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("close token store")
		}
	}()

	session := service.NewSession(store, logger.Component("session"))
	if err := session.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("starting without a session")
	}
	if session.Authenticated() {
		metrics.SessionActive.Set(1)
	}

	client := backend.NewClient(cfg.BackendURL, session, backend.WithLogger(logger.Component("backend")))

	e, err := api.NewRouter(api.Deps{
		Client:                client,
		Session:               session,
		Store:                 store,
		StoreName:             cfg.Session.Store,
		RegisterRedirectDelay: cfg.RegisterRedirectDelay,
		Log:                   logger.Component("http"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("backend", client.String()).
			Str("store", cfg.Session.Store).
			Msg("console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}

// openTokenStore builds the configured token store and its close function.
func openTokenStore(ctx context.Context, cfg *config.Config) (ports.TokenStore, func() error, error) {
	switch cfg.Session.Store {
	case config.StoreBolt:
		db, err := bolt.Open(cfg.Bolt.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return bolt.NewTokenStore(db, cfg.Session.Key), db.Close, nil
	case config.StoreRedis:
		store, err := redis.Open(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB, Key: cfg.Session.Key})
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.StoreMemory:
		return memory.NewTokenStore(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown token store %q", cfg.Session.Store)
	}
}
