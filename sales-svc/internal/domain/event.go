package domain

import "time"

const (
	EventPaymentPaid    = "payment_paid"
	EventPaymentExpired = "payment_expired"
)

// PaymentEvent mirrors the message shop-svc publishes on the payments topic.
type PaymentEvent struct {
	Type      string    `json:"type"`
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	ItemID    int       `json:"item_id"`
	Quantity  int       `json:"quantity"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type ItemSales struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

type DailyReport struct {
	Date            string      `json:"date"`
	Revenue         int64       `json:"revenue"`
	PaidOrders      int64       `json:"paid_orders"`
	ExpiredPayments int64       `json:"expired_payments"`
	Items           []ItemSales `json:"items"`
}
