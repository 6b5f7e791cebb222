package service

import (
	"context"

	"warung-qris/sales-svc/internal/domain"
	"warung-qris/sales-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordSale(ctx context.Context, event domain.PaymentEvent) error
	RecordExpired(ctx context.Context, event domain.PaymentEvent) error
	DailyReport(ctx context.Context, date string) (*domain.DailyReport, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessPayment(ctx context.Context, event domain.PaymentEvent) error
}

type ReportInterface interface {
	Daily(ctx context.Context, date string) (*domain.DailyReport, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ ReportInterface   = (*ReportService)(nil)
)
