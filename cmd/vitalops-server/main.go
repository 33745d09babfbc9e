package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JaiMadhav/VitalOps/common/database"
	"github.com/JaiMadhav/VitalOps/common/logger"
	mqttcommon "github.com/JaiMadhav/VitalOps/common/mqtt"
	commonredis "github.com/JaiMadhav/VitalOps/common/redis"
	"github.com/JaiMadhav/VitalOps/internal/config"
	"github.com/JaiMadhav/VitalOps/internal/consumer"
	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/fixtures"
	httpapi "github.com/JaiMadhav/VitalOps/internal/http"
	"github.com/JaiMadhav/VitalOps/internal/repository"
	"github.com/JaiMadhav/VitalOps/internal/service"
	"github.com/JaiMadhav/VitalOps/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "vitalops-server")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seq, err := loadObservations(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to load observations", zap.Error(err))
	}
	repo := repository.NewMemoryObservationRepo(seq)
	log.Info("Observations loaded",
		zap.String("data_source", cfg.DataSource),
		zap.String("subject_id", cfg.Subject.ID),
		zap.Int("count", repo.Len()),
	)

	// Redis 不可用时退化为进程内缓存，不发布事件
	var kv store.KV = store.NewMemoryKV()
	var events service.EventPublisher = service.NopPublisher{}
	if cfg.Redis.Enabled {
		redisClient := commonredis.NewRedisClient(&cfg.Redis.RedisConfig)
		if err := commonredis.Ping(ctx, redisClient); err != nil {
			log.Warn("Redis unavailable, using in-memory cache", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			_ = commonredis.Close(redisClient)
		} else {
			defer commonredis.Close(redisClient)
			kv = store.NewRedisKV(redisClient)
			events = service.NewStreamPublisher(redisClient, cfg.Events.Stream, cfg.Events.MaxLen)
			log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr), zap.String("stream", cfg.Events.Stream))
		}
	}

	svc := service.NewHealthDataService(repo, kv, events, fixtures.StaticOverview{}, cfg.Subject.ID, cfg.Cache.TTL, log)
	if _, err := svc.RefreshSnapshot(ctx); err != nil {
		log.Fatal("Failed to refresh snapshot cache", zap.Error(err))
	}

	if cfg.MQTT.Enabled {
		mqttClient, err := mqttcommon.NewClient(&cfg.MQTT.MQTTConfig, log)
		if err != nil {
			log.Warn("MQTT unavailable, ingestion disabled", zap.String("broker", cfg.MQTT.Broker), zap.Error(err))
		} else {
			defer mqttClient.Disconnect()
			c := consumer.NewObservationConsumer(mqttClient, svc, cfg.MQTT.Topic, cfg.MQTT.QoS, log)
			go func() {
				if err := c.Start(ctx); err != nil {
					log.Error("Observation consumer failed", zap.Error(err))
				}
			}()
		}
	}

	router := httpapi.NewRouter(log)
	router.RegisterHealthRoutes(httpapi.NewHealthHandler(svc, log))
	router.RegisterHealthzRoute()

	srv := service.NewServer(cfg.HTTP.Addr, router.Handler(), log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server failed", zap.Error(err))
		}
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop HTTP server", zap.Error(err))
	}
}

// loadObservations 启动时装载一次观测序列
func loadObservations(ctx context.Context, cfg *config.Config, log *zap.Logger) ([]domain.HealthObservation, error) {
	if cfg.DataSource != config.DataSourcePostgres {
		return fixtures.Observations(time.Now()), nil
	}

	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}
	defer database.Close(db)

	return repository.NewPostgresObservationRepo(db, cfg.Subject.ID, log).List(ctx)
}
