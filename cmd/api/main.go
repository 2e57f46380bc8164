package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/adapter/repo"
	"server/internal/http/handlers"
	"server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/notify"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	jobRepo := repo.NewJobRepository(infra.NewSQLRunner(dbpool, logger))
	if err := jobRepo.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate schema")
	}

	// Notification channel is optional; without REDIS_URL workers poll the DB.
	var notifier notify.Notifier = notify.NewNoop(logger)
	redisClient, err := infra.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, continuing without notification channel")
	} else if redisClient != nil {
		defer redisClient.Close()
		notifier = notify.NewRedisNotifier(redisClient, logger)
		logger.Info().Msg("connected to redis")
	}

	if cfg.SeedDemoJobs {
		if err := repo.SeedExampleJobs(ctx, jobRepo); err != nil {
			logger.Warn().Err(err).Msg("failed to seed example jobs")
		}
	}

	app := handlers.NewApp(jobRepo, notifier, logger, redisClient != nil)
	router := httpapi.NewRouter(app, logger, cfg.AllowedOrigins)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
