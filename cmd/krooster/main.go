package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tarpediem/krooster/internal/client"
	"github.com/tarpediem/krooster/internal/config"
	"github.com/tarpediem/krooster/internal/httpapi"
	"github.com/tarpediem/krooster/internal/logger"
	"github.com/tarpediem/krooster/internal/service"
	"github.com/tarpediem/krooster/internal/store"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "krooster")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var kv store.KV
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv = store.NewRedisKV(redisClient)
		log.Info("Redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		kv = store.NewMemoryKV()
		log.Info("Using in-memory cache")
	}

	api := client.New(cfg.API.BaseURL, cfg.API.Timeout, cfg.API.RetryCount, log)

	schedule := service.NewScheduleService(api, kv, cfg.Cache.TTL, log)
	importSvc := service.NewImportService(api, kv, log)
	exportSvc := service.NewExportService(api, log)

	router := httpapi.NewRouter(log)
	router.RegisterEmployeeRoutes(httpapi.NewEmployeeHandler(schedule, importSvc, log))
	router.RegisterScheduleRoutes(httpapi.NewScheduleHandler(schedule, exportSvc, log))
	router.RegisterLeaveRoutes(httpapi.NewLeaveHandler(schedule, log))
	router.RegisterMissionRoutes(httpapi.NewMissionHandler(schedule, log))
	router.RegisterAIRoutes(httpapi.NewAIHandler(schedule, log))
	router.RegisterHealthRoutes()

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		cancel()
	case err := <-errCh:
		log.Error("HTTP server exited", zap.Error(err))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
