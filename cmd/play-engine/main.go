package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/KenjaminButton/aws-courtvision-ai/internal/cache"
	"github.com/KenjaminButton/aws-courtvision-ai/internal/config"
	"github.com/KenjaminButton/aws-courtvision-ai/internal/consumer"
	"github.com/KenjaminButton/aws-courtvision-ai/internal/detector"
	"github.com/KenjaminButton/aws-courtvision-ai/internal/engine"
	"github.com/KenjaminButton/aws-courtvision-ai/internal/handlers"
	"github.com/KenjaminButton/aws-courtvision-ai/internal/publisher"
	"github.com/KenjaminButton/aws-courtvision-ai/internal/retry"
	"github.com/KenjaminButton/aws-courtvision-ai/internal/store"
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/contracts"
	"github.com/KenjaminButton/aws-courtvision-ai/sports/basketball"
)

func main() {
	fmt.Println("=== CourtVision Play Engine v0 ===")

	cfg := config.Load()

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Connected to Redis")

	// Connect to Postgres
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		fmt.Printf("❌ Failed to connect to Postgres: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		fmt.Printf("❌ Failed to ping Postgres: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Connected to Postgres")

	// Basketball tuning
	hoopsConfig := basketball.NewConfig()
	classifier := basketball.NewClassifier()
	fmt.Printf("✓ Basketball config loaded: windows=%v, streak>=%d, momentum_deficit>=%d\n",
		hoopsConfig.WindowSizes, hoopsConfig.StreakLength, hoopsConfig.MomentumMargin)

	// Components
	streamConsumer := consumer.NewStreamConsumer(redisClient, cfg.ConsumerID, cfg.GroupName)
	durableStore := store.New(db)
	stateCache := cache.NewRedisWriter(redisClient)
	patternPublisher := publisher.NewStreamPublisher(redisClient)
	retryPolicy := retry.NewPolicy(cfg.RetryMaxAttempts, cfg.RetryInitialDelay)

	detectors := []contracts.PatternDetector{
		detector.NewScoringRunDetector(hoopsConfig),
		detector.NewHotStreakDetector(hoopsConfig, classifier),
		detector.NewMomentumShiftDetector(hoopsConfig),
	}

	playEngine := engine.NewEngine(
		streamConsumer,
		durableStore,
		stateCache,
		patternPublisher,
		classifier,
		detectors,
		retryPolicy,
		cfg.ScanEvery,
	)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	engineCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- playEngine.Start(engineCtx, cfg.StreamKey)
	}()

	// Ops HTTP surface
	handler := handlers.NewHandler(playEngine)
	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: handler.Router()}
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("❌ HTTP server error: %v\n", err)
		}
	}()

	// Metrics reporter
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-engineCtx.Done():
				return
			case <-ticker.C:
				m := playEngine.GetMetrics()
				fmt.Printf("📊 Metrics: processed=%d duplicates=%d malformed=%d failures=%d patterns=%d\n",
					m.Processed, m.Duplicates, m.Malformed, m.Failures, m.PatternsDetected)
			}
		}
	}()

	fmt.Println("✓ Play Engine started")
	fmt.Printf("  Consumer ID: %s\n", cfg.ConsumerID)
	fmt.Printf("  Group Name: %s\n", cfg.GroupName)
	fmt.Printf("  Stream: %s\n", cfg.StreamKey)
	fmt.Printf("  Ops HTTP: %s\n", cfg.HTTPAddr)

	// Wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		fmt.Printf("\n⚠️ Received signal: %v\n", sig)
		cancel()
	case err := <-errChan:
		if err != nil {
			fmt.Printf("❌ Play engine error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("🛑 Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("⚠️ Error stopping HTTP server: %v\n", err)
	}
	if err := redisClient.Close(); err != nil {
		fmt.Printf("⚠️ Error closing Redis: %v\n", err)
	}

	fmt.Println("✓ Shutdown complete")
}
