package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rohanp2002/project-x-backend/internal/api/handlers"
	"github.com/rohanp2002/project-x-backend/internal/api/router"
	"github.com/rohanp2002/project-x-backend/internal/domain/quote"
	"github.com/rohanp2002/project-x-backend/internal/domain/user"
	"github.com/rohanp2002/project-x-backend/internal/domain/watchlist"
	"github.com/rohanp2002/project-x-backend/internal/infra/cache"
	"github.com/rohanp2002/project-x-backend/internal/infra/database/postgres"
	"github.com/rohanp2002/project-x-backend/internal/infra/memory"
	"github.com/rohanp2002/project-x-backend/internal/infra/tradingview"
	"github.com/rohanp2002/project-x-backend/internal/pkg/config"
	"github.com/rohanp2002/project-x-backend/internal/pkg/logger"
	authservice "github.com/rohanp2002/project-x-backend/internal/service/auth"
	quoteservice "github.com/rohanp2002/project-x-backend/internal/service/quote"
)

const (
	serviceName    = "project-x-api"
	serviceVersion = "0.3.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logger.Init(logger.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		FileEnabled:    cfg.Logging.FileEnabled,
		FilePath:       cfg.Logging.FilePath,
		RotationSize:   cfg.Logging.RotationSize,
		RetentionDays:  cfg.Logging.RetentionDays,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	gin.SetMode(cfg.Server.Mode)

	log.Info().Str("version", serviceVersion).Msg("Starting Project X API server...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stores. Without DATABASE_URL the watchlist and users live in process
	// memory, which is enough for local development.
	var (
		dbPool    *postgres.Pool
		watchRepo watchlist.Repository
		userRepo  user.Repository
	)
	if cfg.Database.URL != "" {
		dbPool, err = postgres.NewPool(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer dbPool.Close()

		if err := postgres.RunMigrations(ctx, cfg.Database.URL); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}

		watchRepo = postgres.NewWatchlistRepository(dbPool.Pool)
		userRepo = postgres.NewUserRepository(dbPool.Pool)
	} else {
		log.Warn().Msg("DATABASE_URL not set, using in-memory stores")
		watchRepo = memory.NewWatchlistRepository()
		userRepo = memory.NewUserRepository()
	}

	// Quote cache. Redis when reachable, otherwise in-process; the cache
	// is a latency optimization and must never affect correctness.
	var (
		quoteCache quote.Cache
		redisStore *cache.RedisStore
	)
	redisStore, err = cache.NewRedisStore(ctx, cfg.Redis.URL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, using in-memory quote cache")
		quoteCache = cache.NewMemoryStore()
	} else {
		defer redisStore.Close()
		quoteCache = redisStore
	}

	quoteSource := tradingview.NewClient(tradingview.Config{
		BaseURL:  cfg.Quote.BaseURL,
		Screener: cfg.Quote.Screener,
		Exchange: cfg.Quote.Exchange,
		Timeout:  cfg.Quote.Timeout,
	})

	quoteSvc := quoteservice.NewService(quoteSource, quoteCache, cfg.Quote.CacheTTL)
	authSvc := authservice.NewService(userRepo, []byte(cfg.Auth.JWTSecret), cfg.Auth.AccessTokenTTL)

	var cachePinger handlers.Pinger
	if redisStore != nil {
		cachePinger = redisStore
	}

	var accessLogger *zerolog.Logger
	if cfg.Logging.FileEnabled {
		al := logger.NewAccessLogger(cfg.Logging.FilePath, cfg.Logging.RotationSize, cfg.Logging.RetentionDays)
		accessLogger = &al
	}

	engine := router.New(&router.Config{
		HealthHandler:    handlers.NewHealthHandler(dbPool, cachePinger),
		StockHandler:     handlers.NewStockHandler(quoteSvc),
		WatchlistHandler: handlers.NewWatchlistHandler(watchRepo),
		AuthHandler:      handlers.NewAuthHandler(authSvc),
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AccessLogger:     accessLogger,
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("address", addr).Msg("API server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start API server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Project X API server stopped")
}
