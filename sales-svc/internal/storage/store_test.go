package storage_test

import (
	"context"
	"testing"
	"time"

	"warung-qris/sales-svc/internal/domain"
	"warung-qris/sales-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settledAt = time.Date(2024, 1, 31, 14, 25, 17, 0, time.UTC)

func setupStore(t *testing.T) (*miniredis.Miniredis, *storage.Store) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, storage.NewStore(client, time.Hour)
}

func event(paymentID string, itemID, quantity int, amount int64) domain.PaymentEvent {
	return domain.PaymentEvent{
		Type:      domain.EventPaymentPaid,
		PaymentID: paymentID,
		ItemID:    itemID,
		Quantity:  quantity,
		Amount:    amount,
		Timestamp: settledAt,
	}
}

func TestStore_DailyReport(t *testing.T) {
	mr, store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordSale(ctx, event("PAY-1", 4, 3, 90000)))
	require.NoError(t, store.RecordSale(ctx, event("PAY-2", 1, 5, 125000)))
	require.NoError(t, store.RecordSale(ctx, event("PAY-3", 4, 1, 30000)))
	require.NoError(t, store.RecordExpired(ctx, event("PAY-4", 8, 2, 20000)))

	report, err := store.DailyReport(ctx, "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, &domain.DailyReport{
		Date:            "2024-01-31",
		Revenue:         245000,
		PaidOrders:      3,
		ExpiredPayments: 1,
		Items: []domain.ItemSales{
			{ItemID: 1, Quantity: 5},
			{ItemID: 4, Quantity: 4},
		},
	}, report)

	assert.Equal(t, time.Hour, mr.TTL("sales:items:2024-01-31"))
	assert.Equal(t, time.Hour, mr.TTL("sales:seen:2024-01-31"))
}

func TestStore_Duplicates(t *testing.T) {
	_, store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordSale(ctx, event("PAY-1", 4, 3, 90000)))
	assert.ErrorIs(t, store.RecordSale(ctx, event("PAY-1", 4, 3, 90000)), domain.ErrDuplicateEvent)
	assert.ErrorIs(t, store.RecordExpired(ctx, event("PAY-1", 4, 3, 90000)), domain.ErrDuplicateEvent)

	report, err := store.DailyReport(ctx, "2024-01-31")
	require.NoError(t, err)
	assert.EqualValues(t, 90000, report.Revenue)
	assert.EqualValues(t, 1, report.PaidOrders)
	assert.Zero(t, report.ExpiredPayments)
}

func TestStore_EmptyDay(t *testing.T) {
	_, store := setupStore(t)

	report, err := store.DailyReport(context.Background(), "2023-12-25")
	require.NoError(t, err)
	assert.Equal(t, &domain.DailyReport{Date: "2023-12-25", Items: []domain.ItemSales{}}, report)
}
