// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"chatcart/internal/config"
	"chatcart/internal/domain/ports/repository"
	"chatcart/internal/infra/commerce"
	"chatcart/internal/infra/logging"
	"chatcart/internal/infra/memory"
	"chatcart/internal/infra/metrics"
	red "chatcart/internal/infra/redis"
	"chatcart/internal/infra/sched"
	"chatcart/internal/infra/web"
	"chatcart/internal/usecase"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	_ = godotenv.Load()
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, no sampling)")
	seed := flag.Bool("seed", false, "load demo subscriptions on startup")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode, *seed)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("[DEV MODE] Enabled")
	}

	// ---- Metrics ----
	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Repositories ----
	subRepo := memory.NewSubscriptionRepo()
	convRepo := memory.NewConversationRepo()
	if cfg.Runtime.Seed {
		if err := memory.SeedSubscriptions(ctx, subRepo); err != nil {
			log.Fatalf("seed: %v", err)
		}
		logger.Info().Msg("demo subscriptions loaded")
	}

	// ---- Redis (optional) ----
	var prefRepo repository.PreferenceRepository = memory.NewPreferenceRepo()
	var limiter web.RateLimiter
	if cfg.Redis.Addr != "" {
		redisClient, err := red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer redisClient.Close()
		prefRepo = red.NewPreferenceRepo(redisClient)
		limiter = red.NewRateLimiter(redisClient)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	} else {
		logger.Info().Msg("redis not configured; using in-memory preferences, no rate limiting")
	}

	// ---- Commerce adapter ----
	lookup := commerce.NewRyeAdapter(cfg.Commerce.APIKey, cfg.Commerce.BaseURL, cfg.Commerce.Timeout, logger)

	// ---- Use cases ----
	subUC := usecase.NewSubscriptionUseCase(subRepo, logger)
	convUC := usecase.NewConversationUseCase(convRepo)
	checkoutUC := usecase.NewCheckoutUseCase(lookup, subUC, convUC, logger)
	settingsUC := usecase.NewSettingsUseCase(prefRepo)

	// ---- HTTP server ----
	srv := web.NewServer(checkoutUC, convUC, subUC, settingsUC, lookup, limiter, cfg.RateLimit.LookupPerMinute, logger)
	srv.WatchStore()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Stats worker ----
	worker := sched.NewStatsWorker(30*time.Second, subUC, logger)
	go func() { _ = worker.Run(ctx) }()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown error")
	}
}
