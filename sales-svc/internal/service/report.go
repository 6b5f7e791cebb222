package service

import (
	"context"
	"fmt"
	"time"

	"warung-qris/sales-svc/internal/domain"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = fmt.Errorf("date must look like %s", DateLayout)

type ReportService struct {
	store StoreInterface
	now   func() time.Time
}

func NewReportService(store StoreInterface) *ReportService {
	return &ReportService{store: store, now: time.Now}
}

// Daily returns the report for date, or for today when date is empty.
func (s *ReportService) Daily(ctx context.Context, date string) (*domain.DailyReport, error) {
	if date == "" {
		date = s.now().Format(DateLayout)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	return s.store.DailyReport(ctx, date)
}
