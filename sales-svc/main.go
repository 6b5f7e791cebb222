package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warung-qris/config"
	"warung-qris/logger"
	httpapi "warung-qris/sales-svc/internal/api/http"
	"warung-qris/sales-svc/internal/service"
	"warung-qris/sales-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger, err := logger.New("sales-svc", cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer logger.Sync()

	if !cfg.RedisEnabled() || !cfg.KafkaEnabled() {
		logger.Fatal("sales-svc needs REDIS_HOST and KAFKA_BROKER")
	}

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	store := storage.NewStore(rdb, storage.DefaultTTL)
	consumer := service.NewConsumer(reader, store, logger)
	handler := httpapi.NewHandler(service.NewReportService(store), logger)
	srv := httpapi.NewServer(cfg.Addr(), httpapi.NewRouter(handler))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go consumer.Start(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("sales service starting", zap.String("addr", srv.Addr), zap.String("topic", cfg.PaymentsTopic))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
