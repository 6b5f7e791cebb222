package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"warung-qris/sales-svc/internal/domain"
	"warung-qris/sales-svc/internal/mocks"
	"warung-qris/sales-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_Daily(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	svc := service.NewReportService(store)
	ctx := context.Background()

	report := &domain.DailyReport{Date: "2024-01-31", Revenue: 90000, PaidOrders: 1,
		Items: []domain.ItemSales{{ItemID: 4, Quantity: 3}}}
	store.On("DailyReport", mock.Anything, "2024-01-31").Return(report, nil).Once()

	got, err := svc.Daily(ctx, "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, report, got)

	_, err = svc.Daily(ctx, "31-01-2024")
	assert.ErrorIs(t, err, service.ErrInvalidDate)

	store.On("DailyReport", mock.Anything, mock.MatchedBy(func(date string) bool {
		_, err := time.Parse(service.DateLayout, date)
		return err == nil
	})).Return(nil, errors.New("redis down")).Once()

	_, err = svc.Daily(ctx, "")
	assert.EqualError(t, err, "redis down")
}
