package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"warung-qris/shop-svc/internal/domain"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// StatusMessage is the customer-facing text for a payment status.
func StatusMessage(status domain.PaymentStatus) string {
	switch status {
	case domain.PaymentStatusPaid:
		return "Pembayaran berhasil!"
	case domain.PaymentStatusExpired:
		return "Pembayaran kadaluarsa"
	default:
		return "Menunggu pembayaran..."
	}
}

type createPaymentRequest struct {
	OrderID      string `json:"order_id"`
	TotalAmount  int64  `json:"total_amount"`
	Amount       int64  `json:"amount"`
	CustomerName string `json:"customer_name"`
}

type paymentData struct {
	ID      string `json:"id"`
	QRCode  string `json:"qr_code"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
}

type createPaymentResponse struct {
	Status      string      `json:"status"`
	PaymentData paymentData `json:"payment_data"`
}

type paymentStatusData struct {
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type checkPaymentResponse struct {
	Status        string               `json:"status"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	Message       string               `json:"message"`
	Data          paymentStatusData    `json:"data"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "shop-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	req.OrderID = strings.TrimSpace(req.OrderID)
	if req.OrderID == "" {
		writeError(w, http.StatusBadRequest, "order_id is required")
		return
	}

	amount := req.TotalAmount
	if amount <= 0 {
		amount = req.Amount
	}

	payment, err := h.Payments.Create(r.Context(), req.OrderID, amount, req.CustomerName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		h.Logger.Error("create payment", zap.String("order_id", req.OrderID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, createPaymentResponse{
		Status: "success",
		PaymentData: paymentData{
			ID:      payment.PaymentID,
			QRCode:  payment.QRCode,
			OrderID: payment.OrderID,
			Amount:  payment.Amount,
		},
	})
}

func (h *Handler) checkPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["paymentId"]

	payment, err := h.Payments.Check(r.Context(), paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Payment not found")
			return
		}
		h.Logger.Error("check payment", zap.String("payment_id", paymentID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, checkPaymentResponse{
		Status:        "success",
		PaymentStatus: payment.Status,
		Message:       StatusMessage(payment.Status),
		Data: paymentStatusData{
			OrderID:   payment.OrderID,
			Amount:    payment.Amount,
			CreatedAt: payment.CreatedAt,
		},
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		h.Logger.Error("list orders", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: "error", Message: message})
}
