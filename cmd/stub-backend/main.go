package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lelouchhh/vk-2025/internal/pkg/config"
	"github.com/lelouchhh/vk-2025/internal/stub"
	"github.com/lelouchhh/vk-2025/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "stub-backend",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := stub.NewServer(stub.Config{
		JWTSecret:  cfg.Stub.JWTSecret,
		TokenTTL:   24 * time.Hour,
		Containers: stub.SeedContainers(time.Now().UTC()),
		Log:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Stub.Port).Msg("stub backend listening")
		if err := e.Start(":" + cfg.Stub.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}
