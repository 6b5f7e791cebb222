package service

import (
	"context"
	"encoding/json"
	"errors"

	"warung-qris/sales-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
	}
}

// Start reads payment events until ctx is cancelled. Undecodable messages and
// store failures are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("sales consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("sales consumer stopped")
				return
			}
			c.Logger.Warn("read message", zap.Error(err))
			continue
		}

		var event domain.PaymentEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("decode payment event", zap.ByteString("key", message.Key), zap.Error(err))
			continue
		}

		if err := c.ProcessPayment(ctx, event); err != nil {
			c.Logger.Error("process payment event",
				zap.String("payment_id", event.PaymentID),
				zap.String("type", event.Type),
				zap.Error(err))
		}
	}
}

func (c *Consumer) ProcessPayment(ctx context.Context, event domain.PaymentEvent) error {
	var err error
	switch event.Type {
	case domain.EventPaymentPaid:
		err = c.Store.RecordSale(ctx, event)
	case domain.EventPaymentExpired:
		err = c.Store.RecordExpired(ctx, event)
	default:
		return nil
	}

	if errors.Is(err, domain.ErrDuplicateEvent) {
		c.Logger.Debug("duplicate payment event", zap.String("payment_id", event.PaymentID))
		return nil
	}
	if err != nil {
		return err
	}

	c.Logger.Info("payment event recorded",
		zap.String("payment_id", event.PaymentID),
		zap.String("type", event.Type),
		zap.Int("item_id", event.ItemID),
		zap.Int("quantity", event.Quantity))
	return nil
}
