package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-ordering/config"
	httpapi "food-ordering/dish-svc/internal/api/http"
	"food-ordering/internal/logging"
	"food-ordering/internal/orderclient"
	"food-ordering/internal/service"
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
	logger := logging.Service(baseLogger, "dish-svc")

	db := config.MustInitPostgres(cfg.DB)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	var board service.BoardReader
	if cfg.Redis.Host != "" {
		rdb := config.MustInitRedis(cfg.Redis)
		defer rdb.Close()
		board = storage.NewBoardStore(rdb)
	} else {
		logger.Info("REDIS_HOST not set, live board disabled")
	}

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(cfg.Kafka); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	var remote service.RemoteSender
	if cfg.OrderServer.RemoteEnabled {
		remote = orderclient.New(cfg.OrderServer.Addr(), cfg.OrderServer.ReadTimeout)
	}

	catalog := service.NewCatalogService(repo)
	resolver, err := service.NewResolver(cfg.Placement.Resolver, catalog)
	if err != nil {
		logger.Fatal("Invalid placement config", zap.Error(err))
	}
	recorder := service.NewOrderRecorder(repo, publisher, logger)
	placer := service.NewOrderPlacer(remote, recorder, resolver, cfg.Placement.SplitByRestaurant, logger)
	orders := service.NewOrderService(repo, catalog, service.ReceiptQRGenerator{BaseURL: cfg.ReceiptBaseURL})

	handler := httpapi.NewHandler(catalog, orders, placer, board, logger)
	srv := httpapi.NewServer(cfg.HTTPAddr, httpapi.NewRouter(handler))

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Dish Service starting",
			zap.String("addr", cfg.HTTPAddr),
			zap.Bool("remote_orders", remote != nil),
			zap.String("resolver", cfg.Placement.Resolver),
			zap.Bool("split_by_restaurant", cfg.Placement.SplitByRestaurant))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	logger.Info("Dish Service stopped")
}
