package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/edukshare-max/fastapi-backend/internal/config"
	"github.com/edukshare-max/fastapi-backend/internal/infra"
	"github.com/edukshare-max/fastapi-backend/internal/router"
)

func main() {
	// Structured logger. Pretty console in dev, JSON in production
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	db, err := infra.NewCosmosDatabase(cfg.CosmosURI, cfg.CosmosDatabase)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to cosmos db")
	}
	log.Info().Str("database", cfg.CosmosDatabase).Msg("conexión a Cosmos DB establecida")

	r := router.New(cfg, db)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("backend SASU escuchando")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("cerrando servidor...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("cosmos disconnect error")
	}
}
