package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warung-qris/shop-svc/internal/domain"

	"go.uber.org/zap"
)

// Simulated settlement: a payment counts as paid once PaidAfter has elapsed and
// expires at ExpireAfter.
const (
	PaidAfter   = 10 * time.Second
	ExpireAfter = 20 * time.Second
)

var ErrPaymentNotFound = fmt.Errorf("payment %w", domain.ErrNotFound)

// SimulatedStatus maps time since creation to a payment status.
func SimulatedStatus(elapsed time.Duration) domain.PaymentStatus {
	switch {
	case elapsed < PaidAfter:
		return domain.PaymentStatusPending
	case elapsed < ExpireAfter:
		return domain.PaymentStatusPaid
	default:
		return domain.PaymentStatusExpired
	}
}

func PaymentIDFor(orderID string) string {
	return "PAY-" + orderID
}

type PaymentService struct {
	payments     PaymentRepository
	orders       OrderRepository
	qr           QRGenerator
	merchantName string

	cache     PaymentCache
	publisher PaymentPublisher
	clock     Clock
	logger    *zap.Logger
}

func NewPaymentService(payments PaymentRepository, orders OrderRepository, qr QRGenerator, merchantName string) *PaymentService {
	return &PaymentService{
		payments:     payments,
		orders:       orders,
		qr:           qr,
		merchantName: merchantName,
		clock:        SystemClock{},
		logger:       zap.NewNop(),
	}
}

func (s *PaymentService) WithCache(cache PaymentCache) *PaymentService {
	s.cache = cache
	return s
}

func (s *PaymentService) WithPublisher(publisher PaymentPublisher) *PaymentService {
	s.publisher = publisher
	return s
}

func (s *PaymentService) WithClock(clock Clock) *PaymentService {
	s.clock = clock
	return s
}

func (s *PaymentService) WithLogger(logger *zap.Logger) *PaymentService {
	s.logger = logger
	return s
}

// Create starts a QRIS payment for an order. An order that already has a payment
// gets the existing record back.
func (s *PaymentService) Create(ctx context.Context, orderID string, amount int64, customerName string) (*domain.Payment, error) {
	order, err := s.orders.GetOrder(orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}

	existing, err := s.payments.GetPaymentByOrder(orderID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("load payment: %w", err)
	}

	if amount <= 0 {
		amount = order.Line.TotalPrice
	}
	if customerName == "" {
		customerName = order.Customer.Name
	}

	now := s.clock.Now()
	payment := &domain.Payment{
		PaymentID:     PaymentIDFor(orderID),
		OrderID:       orderID,
		Amount:        amount,
		CustomerName:  customerName,
		CreatedAt:     now,
		UpdatedAt:     now,
		PaymentMethod: domain.PaymentMethodQRIS,
		Status:        domain.PaymentStatusPending,
		QRCode:        s.qr.Generate(amount, orderID, s.merchantName),
	}
	if err := s.payments.CreatePayment(payment); err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}

	s.logger.Info("payment created",
		zap.String("payment_id", payment.PaymentID),
		zap.String("order_id", orderID),
		zap.Int64("amount", amount))
	return payment, nil
}

// Check refreshes a payment's status. Paid and expired are final: once stored they
// are returned as-is and only updated_at moves.
func (s *PaymentService) Check(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, paymentID)
		if err == nil {
			// Cached payments are terminal; the store keeps the settling check's timestamp.
			cached.UpdatedAt = s.clock.Now()
			return cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("payment cache read failed", zap.String("payment_id", paymentID), zap.Error(err))
		}
	}

	payment, err := s.payments.GetPayment(paymentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}

	now := s.clock.Now()
	previous := payment.Status
	if !previous.IsTerminal() {
		payment.Status = SimulatedStatus(now.Sub(payment.CreatedAt))
	}
	payment.UpdatedAt = now

	if err := s.payments.UpdatePayment(payment); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	if payment.Status.IsTerminal() {
		s.remember(ctx, payment)
		if !previous.IsTerminal() {
			s.announce(ctx, payment)
		}
	}
	return payment, nil
}

func (s *PaymentService) FindByOrder(orderID string) (*domain.Payment, error) {
	payment, err := s.payments.GetPaymentByOrder(orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}
	return payment, nil
}

func (s *PaymentService) remember(ctx context.Context, payment *domain.Payment) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, payment); err != nil {
		s.logger.Warn("payment cache write failed", zap.String("payment_id", payment.PaymentID), zap.Error(err))
	}
}

func (s *PaymentService) announce(ctx context.Context, payment *domain.Payment) {
	s.logger.Info("payment settled",
		zap.String("payment_id", payment.PaymentID),
		zap.String("status", string(payment.Status)))

	if s.publisher == nil {
		return
	}

	event := domain.PaymentEvent{
		Type:      domain.EventPaymentExpired,
		PaymentID: payment.PaymentID,
		OrderID:   payment.OrderID,
		Amount:    payment.Amount,
		Status:    payment.Status,
		Timestamp: payment.UpdatedAt,
	}
	if payment.Status == domain.PaymentStatusPaid {
		event.Type = domain.EventPaymentPaid
	}
	if order, err := s.orders.GetOrder(payment.OrderID); err == nil {
		event.ItemID = order.Line.ItemID
		event.Quantity = order.Line.Quantity
	}

	if err := s.publisher.PublishPayment(ctx, event); err != nil {
		s.logger.Warn("payment event publish failed", zap.String("payment_id", payment.PaymentID), zap.Error(err))
	}
}
