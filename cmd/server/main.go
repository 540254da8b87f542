package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/medcore/healthcare-api/internal/api"
	"github.com/medcore/healthcare-api/internal/crypto"
	"github.com/medcore/healthcare-api/internal/infrastructure/audit"
	"github.com/medcore/healthcare-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/medcore/healthcare-api/internal/infrastructure/db/redis"
	"github.com/medcore/healthcare-api/internal/pkg/config"
	"github.com/medcore/healthcare-api/pkg/logger"
)

func main() {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// logger is not up yet
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	cipher, err := crypto.NewCipherFromBase64(cfg.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid encryption key")
	}

	db, err := postgres.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	deps := api.Deps{
		DB:     db,
		Cipher: cipher,
		Config: cfg,
		Logger: log,
	}

	if cfg.Redis.Addr != "" {
		rdb, err := redisinfra.Connect(ctx, redisinfra.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		deps.Redis = rdb
	} else {
		log.Warn().Msg("redis not configured; login throttling disabled")
	}

	dispatcher := audit.NewDispatcher(0, postgres.NewAuditRepository(db), log)
	dispatcher.Start(ctx)
	deps.Audit = dispatcher

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
	log.Info().Msg("server stopped")
}
