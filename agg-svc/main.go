package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"food-ordering/agg-svc/internal/service"
	"food-ordering/config"
	"food-ordering/internal/logging"
	"food-ordering/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	baseLogger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer baseLogger.Sync()
	logger := logging.Service(baseLogger, "agg-svc")

	if cfg.Kafka.Broker == "" {
		logger.Fatal("KAFKA_BROKER is required")
	}
	if cfg.Redis.Host == "" {
		logger.Fatal("REDIS_HOST is required")
	}

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewBoardStore(rdb), logger)
	logger.Info("Consuming order events",
		zap.String("topic", cfg.Kafka.OrdersTopic),
		zap.String("group", cfg.Kafka.GroupID))
	if err := consumer.Start(ctx); err != nil {
		logger.Error("Consumer stopped", zap.Error(err))
		return
	}
	logger.Info("Aggregation Service stopped")
}
