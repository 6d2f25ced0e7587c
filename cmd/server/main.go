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

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rhuselid/gmcareer/internal/api"
	"github.com/rhuselid/gmcareer/internal/league"
	"github.com/rhuselid/gmcareer/internal/services"
	"github.com/rhuselid/gmcareer/internal/simulator"
	"github.com/rhuselid/gmcareer/internal/store"
	"github.com/rhuselid/gmcareer/pkg/config"
	"github.com/rhuselid/gmcareer/pkg/database"
	"github.com/rhuselid/gmcareer/pkg/logger"
	"github.com/rhuselid/gmcareer/pkg/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	serviceLog := logger.WithService("gmcareer")

	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	st := store.New(db.DB)
	if err := st.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient := connectRedis(ctx, cfg.RedisURL, serviceLog)
	if redisClient != nil {
		defer redisClient.Close()
	}

	cache := services.NewCacheService(redisClient)
	hub := services.NewHub(serviceLog, cfg.CorsOrigins)
	go hub.Run(ctx)

	opts := league.Options{
		Tuning: simulator.Tuning{
			HomeFieldBonus: cfg.HomeFieldBonus,
			PartitionNoise: cfg.PartitionNoise,
		},
		TotalWeeks:         cfg.TotalWeeks,
		DevelopmentWorkers: cfg.DevelopmentWorkers,
		Seed:               cfg.SimSeed,
		ResultTTL:          cfg.ResultCacheTTL,
		Cache:              cache,
		Broadcaster:        hub,
	}
	if cfg.PublishResults && redisClient != nil {
		opts.Publisher = services.NewResultPublisher(redisClient, services.PublisherConfig{
			BreakerThreshold: uint32(cfg.PublisherBreakerThreshold),
		}, serviceLog)
	}
	svc := league.NewService(st, opts, serviceLog)

	if cfg.AutoSimEnabled {
		scheduler := services.NewScheduler(serviceLog)
		err := scheduler.AddJob("auto_sim", "Automatic week simulation", cfg.AutoSimSchedule, func(ctx context.Context) error {
			report, err := svc.SimulateWeek(ctx)
			if errors.Is(err, utils.ErrSeasonComplete) {
				serviceLog.Info("Season complete, auto simulation idle")
				return nil
			}
			if err != nil {
				return err
			}
			logger.WithWeek(report.Season, report.Week).WithField("games", len(report.Games)).Info("Auto simulation finished week")
			return nil
		})
		if err != nil {
			log.Fatalf("Failed to schedule auto simulation: %v", err)
		}
		if err := scheduler.Start(); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	router := api.NewRouter(api.Dependencies{
		Config: cfg,
		League: svc,
		Hub:    hub,
		DB:     db,
		Logger: serviceLog,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // sim-all runs a whole season
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exited")
}

// connectRedis returns nil when no URL is configured or redis is
// unreachable; the cache then falls back to process memory.
func connectRedis(ctx context.Context, url string, log logrus.FieldLogger) *redis.Client {
	if url == "" {
		log.Info("REDIS_URL not set, using in-memory result cache")
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.WithError(err).Warn("Failed to parse Redis URL, using in-memory result cache")
		return nil
	}
	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Warn("Failed to connect to Redis, using in-memory result cache")
		client.Close()
		return nil
	}
	return client
}
