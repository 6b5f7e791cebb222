package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warung-qris/config"
	"warung-qris/logger"
	httpapi "warung-qris/shop-svc/internal/api/http"
	"warung-qris/shop-svc/internal/service"
	"warung-qris/shop-svc/internal/storage"

	"go.uber.org/zap"
)

type repository interface {
	service.MenuRepository
	service.OrderRepository
	service.PaymentRepository
}

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger, err := logger.New("shop-svc", cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer logger.Sync()

	var db *sql.DB
	if cfg.StorageDriver == config.StoragePostgres {
		db = config.MustInitPostgres(cfg, logger)
		defer db.Close()
	}

	repo, err := openStorage(cfg, db)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	if _, err := repo.LoadMenu(); err != nil {
		logger.Fatal("failed to load menu", zap.Error(err))
	}

	menuSvc := service.NewMenuService(repo)
	orderSvc := service.NewOrderService(repo, menuSvc, service.SystemClock{})
	paymentSvc := service.NewPaymentService(repo, repo, service.NewQRGenerator(cfg.MerchantID, logger), cfg.MerchantName).
		WithLogger(logger)

	if cfg.RedisEnabled() {
		rdb := config.MustInitRedis(cfg, logger)
		defer rdb.Close()
		paymentSvc.WithCache(storage.NewRedisCache(rdb, cfg.PaymentCacheTTL))
	}
	if cfg.KafkaEnabled() {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		paymentSvc.WithPublisher(storage.NewKafkaPublisher(writer))
	}

	pages, err := httpapi.NewRenderer()
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}

	handler := httpapi.NewHandler(menuSvc, orderSvc, paymentSvc, pages, httpapi.NewFlashStore([]byte(cfg.SessionSecret)), logger)
	srv := httpapi.NewServer(cfg.Addr(), httpapi.NewRouter(handler, cfg.StaticDir))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("storage ready",
		zap.String("driver", cfg.StorageDriver),
		zap.Bool("redis", cfg.RedisEnabled()),
		zap.Bool("kafka", cfg.KafkaEnabled()))
	if err := httpapi.StartServer(srv, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func openStorage(cfg *config.Config, db *sql.DB) (repository, error) {
	switch cfg.StorageDriver {
	case config.StorageFile:
		return storage.NewFileStore(cfg.DataDir), nil
	case config.StorageMemory:
		return storage.NewMemoryStore(nil), nil
	case config.StoragePostgres:
		repo := storage.NewPostgresRepository(db)
		if err := repo.RunMigrations(cfg.MigrationsDir); err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
