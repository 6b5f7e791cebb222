package storage

import (
	"sync"

	"warung-qris/shop-svc/internal/domain"
)

// MemoryStore implements the menu, order and payment repositories in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	menu     domain.Menu
	orders   []domain.Order
	payments []domain.Payment
}

// NewMemoryStore starts with menu, or the default catalog when menu is nil.
func NewMemoryStore(menu domain.Menu) *MemoryStore {
	if menu == nil {
		menu = DefaultMenu()
	}
	return &MemoryStore{menu: copyMenu(menu)}
}

func (s *MemoryStore) LoadMenu() (domain.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMenu(s.menu), nil
}

func (s *MemoryStore) CreateOrder(order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, *order)
	return nil
}

func (s *MemoryStore) GetOrder(orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.OrderID == orderID {
			found := order
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) ListOrders() ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order{}, s.orders...), nil
}

func (s *MemoryStore) CreatePayment(payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, *payment)
	return nil
}

func (s *MemoryStore) GetPayment(paymentID string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, payment := range s.payments {
		if payment.PaymentID == paymentID {
			found := payment
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) GetPaymentByOrder(orderID string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, payment := range s.payments {
		if payment.OrderID == orderID {
			found := payment
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) UpdatePayment(payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].PaymentID == payment.PaymentID {
			s.payments[i] = *payment
			return nil
		}
	}
	return domain.ErrNotFound
}
