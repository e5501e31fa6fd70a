package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/farmsight/farm-health-api/internal/api"
	"github.com/farmsight/farm-health-api/internal/infrastructure/ai"
	"github.com/farmsight/farm-health-api/internal/infrastructure/config"
	mongodb "github.com/farmsight/farm-health-api/internal/infrastructure/db/mongo"
	redisdb "github.com/farmsight/farm-health-api/internal/infrastructure/db/redis"
	"github.com/farmsight/farm-health-api/internal/infrastructure/queue"
	"github.com/farmsight/farm-health-api/internal/infrastructure/storage"
	"github.com/farmsight/farm-health-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	uploads, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload store init failed")
	}

	classifier := ai.NewClient(ai.Config{
		BaseURL: cfg.AI.BaseURL,
		Timeout: cfg.AI.Timeout,
	}, rand.New(rand.NewSource(time.Now().UnixNano())), log)

	dispatcher := queue.NewDispatcher(0, mongodb.NewActivityRepository(db), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Mongo:      db,
		Redis:      rdb,
		Classifier: classifier,
		Uploads:    uploads,
		Activity:   dispatcher,
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		Logger:     log,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("farm health API starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
