package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"warung-qris/sales-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	dateLayout = "2006-01-02"
	DefaultTTL = 7 * 24 * time.Hour
)

// Store keeps per-day sales counters in Redis:
//
//	sales:seen:<date>     set of payment ids already counted
//	sales:items:<date>    zset item id -> quantity sold
//	sales:revenue:<date>  paid amount
//	sales:orders:<date>   paid payment count
//	sales:expired:<date>  expired payment count
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func key(kind, date string) string {
	return "sales:" + kind + ":" + date
}

func eventDate(event domain.PaymentEvent) string {
	if event.Timestamp.IsZero() {
		return time.Now().Format(dateLayout)
	}
	return event.Timestamp.Format(dateLayout)
}

func (s *Store) RecordSale(ctx context.Context, event domain.PaymentEvent) error {
	date := eventDate(event)
	if err := s.markSeen(ctx, date, event.PaymentID); err != nil {
		return err
	}

	itemsKey, revenueKey, ordersKey := key("items", date), key("revenue", date), key("orders", date)
	pipe := s.rdb.TxPipeline()
	pipe.ZIncrBy(ctx, itemsKey, float64(event.Quantity), strconv.Itoa(event.ItemID))
	pipe.IncrBy(ctx, revenueKey, event.Amount)
	pipe.Incr(ctx, ordersKey)
	pipe.Expire(ctx, itemsKey, s.ttl)
	pipe.Expire(ctx, revenueKey, s.ttl)
	pipe.Expire(ctx, ordersKey, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) RecordExpired(ctx context.Context, event domain.PaymentEvent) error {
	date := eventDate(event)
	if err := s.markSeen(ctx, date, event.PaymentID); err != nil {
		return err
	}

	expiredKey := key("expired", date)
	pipe := s.rdb.TxPipeline()
	pipe.Incr(ctx, expiredKey)
	pipe.Expire(ctx, expiredKey, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// markSeen returns domain.ErrDuplicateEvent for a payment already counted that day.
func (s *Store) markSeen(ctx context.Context, date, paymentID string) error {
	seenKey := key("seen", date)
	added, err := s.rdb.SAdd(ctx, seenKey, paymentID).Result()
	if err != nil {
		return err
	}
	if added == 0 {
		return domain.ErrDuplicateEvent
	}
	return s.rdb.Expire(ctx, seenKey, s.ttl).Err()
}

func (s *Store) DailyReport(ctx context.Context, date string) (*domain.DailyReport, error) {
	report := &domain.DailyReport{Date: date, Items: []domain.ItemSales{}}

	members, err := s.rdb.ZRevRangeWithScores(ctx, key("items", date), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	for _, member := range members {
		itemID, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			continue
		}
		report.Items = append(report.Items, domain.ItemSales{ItemID: itemID, Quantity: int(member.Score)})
	}

	if report.Revenue, err = s.counter(ctx, key("revenue", date)); err != nil {
		return nil, err
	}
	if report.PaidOrders, err = s.counter(ctx, key("orders", date)); err != nil {
		return nil, err
	}
	if report.ExpiredPayments, err = s.counter(ctx, key("expired", date)); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *Store) counter(ctx context.Context, k string) (int64, error) {
	n, err := s.rdb.Get(ctx, k).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
