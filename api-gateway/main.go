package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"warung-qris/api-gateway/internal/gateway"
	"warung-qris/config"
	"warung-qris/logger"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Redirects are passed through so the browser follows shop-svc's 303s itself.
func newUpstreamClient() *http.Client {
	return &http.Client{
		Timeout: 15 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger, err := logger.New("api-gateway", cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		ShopSvcURL:  cfg.ShopSvcURL,
		SalesSvcURL: cfg.SalesSvcURL,
	}, newUpstreamClient(), logger)

	handler := cors.Default().Handler(gw.SetupRoutes())

	logger.Info("api gateway starting",
		zap.String("addr", cfg.Addr()),
		zap.String("shop", cfg.ShopSvcURL),
		zap.String("sales", cfg.SalesSvcURL))
	srv := &http.Server{Addr: cfg.Addr(), Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
