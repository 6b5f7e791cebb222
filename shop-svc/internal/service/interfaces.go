package service

import (
	"context"

	"warung-qris/shop-svc/internal/domain"
)

type MenuRepository interface {
	LoadMenu() (domain.Menu, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID string) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
}

type PaymentRepository interface {
	CreatePayment(payment *domain.Payment) error
	GetPayment(paymentID string) (*domain.Payment, error)
	GetPaymentByOrder(orderID string) (*domain.Payment, error)
	UpdatePayment(payment *domain.Payment) error
}

// PaymentCache holds snapshots of settled payments.
type PaymentCache interface {
	Get(ctx context.Context, paymentID string) (*domain.Payment, error)
	Set(ctx context.Context, payment *domain.Payment) error
}

type PaymentPublisher interface {
	PublishPayment(ctx context.Context, event domain.PaymentEvent) error
}

type ItemLookup interface {
	Lookup(id int) (*domain.MenuItem, error)
}

type MenuServiceInterface interface {
	Menu() (domain.Menu, error)
	Lookup(id int) (*domain.MenuItem, error)
}

type OrderServiceInterface interface {
	Create(itemID, quantity int, customer domain.Customer, notes string) (*domain.Order, error)
	Find(orderID string) (*domain.Order, error)
	List() ([]domain.Order, error)
}

type PaymentServiceInterface interface {
	Create(ctx context.Context, orderID string, amount int64, customerName string) (*domain.Payment, error)
	Check(ctx context.Context, paymentID string) (*domain.Payment, error)
	FindByOrder(orderID string) (*domain.Payment, error)
}

var (
	_ MenuServiceInterface    = (*MenuService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
	_ PaymentServiceInterface = (*PaymentService)(nil)
	_ ItemLookup              = (*MenuService)(nil)
)
