package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"scoring-api/internal/platform/config"
	"scoring-api/internal/platform/httpserver"
	"scoring-api/internal/platform/logger"
	platformredis "scoring-api/internal/platform/redis"
	"scoring-api/internal/scoring/auth"
	"scoring-api/internal/scoring/service"
	"scoring-api/internal/scoring/store"
	httptransport "scoring-api/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in internal/scoring.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, logCloser, err := logger.New(cfg.LogPath)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logCloser.Close()

	redisClient, err := platformredis.New(cfg.RedisDSN, cfg.StoreConnectTimeout)
	if err != nil {
		log.Error("store connection failed", "dsn", cfg.RedisDSN, "err", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	st := store.NewRedis(redisClient.Client,
		store.WithLogger(log),
		store.WithRetryPolicy(store.RetryPolicy{
			MaxAttempts: cfg.StoreMaxRetries,
			Backoff:     cfg.StoreBackoff,
		}),
	)

	svc, err := service.New(st, auth.New(cfg.Salt, cfg.AdminSalt), service.WithLogger(log))
	if err != nil {
		log.Error("service init failed", "err", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(httptransport.NewHandler(svc, log))
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting scoring-api", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}
}
