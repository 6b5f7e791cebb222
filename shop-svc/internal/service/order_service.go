package service

import (
	"errors"
	"fmt"
	"strings"

	"warung-qris/shop-svc/internal/domain"
)

// OrderIDLayout stamps order ids with second resolution, e.g. 20240131142502.
const OrderIDLayout = "20060102150405"

var ErrOrderNotFound = fmt.Errorf("order %w", domain.ErrNotFound)

type OrderService struct {
	repo  OrderRepository
	items ItemLookup
	clock Clock
}

func NewOrderService(repo OrderRepository, items ItemLookup, clock Clock) *OrderService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &OrderService{repo: repo, items: items, clock: clock}
}

func (s *OrderService) Create(itemID, quantity int, customer domain.Customer, notes string) (*domain.Order, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(customer.Name) == "" {
		return nil, fmt.Errorf("customer name is required: %w", domain.ErrValidation)
	}

	item, err := s.items.Lookup(itemID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	customer.Notes = notes
	order := &domain.Order{
		OrderID:   now.Format(OrderIDLayout),
		Timestamp: now,
		Customer:  customer,
		Line: domain.OrderLine{
			ItemID:     item.ID,
			ItemName:   item.Name,
			Quantity:   quantity,
			UnitPrice:  item.Price,
			TotalPrice: item.Price * int64(quantity),
		},
		Status: domain.OrderStatusPendingPayment,
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return order, nil
}

func (s *OrderService) Find(orderID string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	return order, nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}
