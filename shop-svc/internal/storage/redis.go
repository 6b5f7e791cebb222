package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"warung-qris/shop-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const DefaultPaymentTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func PaymentKey(paymentID string) string {
	return "payment:" + paymentID
}

func (c *RedisCache) Get(ctx context.Context, paymentID string) (*domain.Payment, error) {
	data, err := c.Client.Get(ctx, PaymentKey(paymentID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var payment domain.Payment
	if err := json.Unmarshal(data, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *RedisCache) Set(ctx context.Context, payment *domain.Payment) error {
	data, err := json.Marshal(payment)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, PaymentKey(payment.PaymentID), data, c.TTL).Err()
}
