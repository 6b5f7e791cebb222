package domain

import "time"

type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`

	// ImagePath is resolved at load time and never persisted.
	ImagePath string `json:"-"`
}

// Menu maps a category name ("makanan", "minuman", ...) to its items in display order.
type Menu map[string][]MenuItem

type OrderStatus string

const OrderStatusPendingPayment OrderStatus = "pending_payment"

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type OrderLine struct {
	ItemID     int    `json:"item_id"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	TotalPrice int64  `json:"total_price"`
}

type Order struct {
	OrderID   string      `json:"order_id"`
	Timestamp time.Time   `json:"timestamp"`
	Customer  Customer    `json:"customer"`
	Line      OrderLine   `json:"order"`
	Status    OrderStatus `json:"status"`
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusExpired PaymentStatus = "expired"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusExpired
}

const PaymentMethodQRIS = "qris"

type Payment struct {
	PaymentID     string        `json:"payment_id"`
	OrderID       string        `json:"order_id"`
	Amount        int64         `json:"amount"`
	CustomerName  string        `json:"customer_name"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	PaymentMethod string        `json:"payment_method"`
	Status        PaymentStatus `json:"status"`
	QRCode        string        `json:"qr_code"`
}

// PaymentEvent is published once a payment settles as paid or expired.
type PaymentEvent struct {
	Type      string        `json:"type"`
	PaymentID string        `json:"payment_id"`
	OrderID   string        `json:"order_id"`
	ItemID    int           `json:"item_id"`
	Quantity  int           `json:"quantity"`
	Amount    int64         `json:"amount"`
	Status    PaymentStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}

const (
	EventPaymentPaid    = "payment_paid"
	EventPaymentExpired = "payment_expired"
)
