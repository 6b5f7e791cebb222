package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"warung-qris/shop-svc/internal/domain"
	"warung-qris/shop-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	msgItemNotFound  = "Menu tidak ditemukan!"
	msgOrderNotFound = "Pesanan tidak ditemukan!"
	msgInvalidOrder  = "Data pesanan tidak valid"
)

type Handler struct {
	Menu     service.MenuServiceInterface
	Orders   service.OrderServiceInterface
	Payments service.PaymentServiceInterface
	Pages    *Renderer
	Flash    *FlashStore
	Logger   *zap.Logger
}

func NewHandler(menu service.MenuServiceInterface, orders service.OrderServiceInterface, payments service.PaymentServiceInterface, pages *Renderer, flash *FlashStore, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Menu:     menu,
		Orders:   orders,
		Payments: payments,
		Pages:    pages,
		Flash:    flash,
		Logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/", h.index).Methods("GET")
	r.HandleFunc("/menu", h.menu).Methods("GET")
	r.HandleFunc("/order/{itemId}", h.orderForm).Methods("GET")
	r.HandleFunc("/process_order", h.processOrder).Methods("POST")
	r.HandleFunc("/payment/{orderId}", h.paymentPage).Methods("GET")
	r.HandleFunc("/payment_success/{orderId}", h.paymentSuccess).Methods("GET")

	r.HandleFunc("/api/create_payment", h.createPayment).Methods("POST")
	r.HandleFunc("/api/check_payment/{paymentId}", h.checkPayment).Methods("GET")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index", pageData{Title: "Beranda"})
}

func (h *Handler) menu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menu.Menu()
	if err != nil {
		h.fail(w, "load menu", err)
		return
	}
	h.render(w, r, "menu", pageData{Title: "Menu", Menu: menu})
}

func (h *Handler) orderForm(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		h.redirectToMenu(w, r, msgItemNotFound)
		return
	}

	item, err := h.Menu.Lookup(itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.redirectToMenu(w, r, msgItemNotFound)
			return
		}
		h.fail(w, "lookup menu item", err)
		return
	}
	h.render(w, r, "order", pageData{Title: "Pesan " + item.Name, Item: item})
}

func (h *Handler) processOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectToMenu(w, r, msgInvalidOrder)
		return
	}

	itemID, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("item_id")))
	if err != nil {
		h.redirectToMenu(w, r, msgInvalidOrder+": item_id")
		return
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("quantity")))
	if err != nil {
		h.redirectToMenu(w, r, msgInvalidOrder+": quantity")
		return
	}

	customer := domain.Customer{
		Name:    strings.TrimSpace(r.PostFormValue("customer_name")),
		Phone:   strings.TrimSpace(r.PostFormValue("customer_phone")),
		Address: strings.TrimSpace(r.PostFormValue("address")),
	}

	order, err := h.Orders.Create(itemID, quantity, customer, r.PostFormValue("notes"))
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		h.redirectToMenu(w, r, msgItemNotFound)
		return
	case errors.Is(err, domain.ErrValidation):
		h.redirectToMenu(w, r, msgInvalidOrder)
		return
	default:
		h.fail(w, "create order", err)
		return
	}

	h.Logger.Info("order created",
		zap.String("order_id", order.OrderID),
		zap.Int("item_id", order.Line.ItemID),
		zap.Int64("total_price", order.Line.TotalPrice))
	http.Redirect(w, r, "/payment/"+order.OrderID, http.StatusSeeOther)
}

func (h *Handler) paymentPage(w http.ResponseWriter, r *http.Request) {
	order, ok := h.findOrder(w, r)
	if !ok {
		return
	}

	data := pageData{Title: "Pembayaran", Order: order}
	if payment, err := h.Payments.FindByOrder(order.OrderID); err == nil {
		data.Payment = payment
	}
	h.render(w, r, "payment", data)
}

func (h *Handler) paymentSuccess(w http.ResponseWriter, r *http.Request) {
	order, ok := h.findOrder(w, r)
	if !ok {
		return
	}

	data := pageData{Title: "Pembayaran Berhasil", Order: order}
	if payment, err := h.Payments.FindByOrder(order.OrderID); err == nil {
		data.Payment = payment
	}
	h.render(w, r, "success", data)
}

func (h *Handler) findOrder(w http.ResponseWriter, r *http.Request) (*domain.Order, bool) {
	order, err := h.Orders.Find(mux.Vars(r)["orderId"])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.redirectToMenu(w, r, msgOrderNotFound)
			return nil, false
		}
		h.fail(w, "load order", err)
		return nil, false
	}
	return order, true
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	if h.Flash != nil {
		data.Flashes = h.Flash.Pop(w, r)
	}
	if err := h.Pages.Render(w, page, data); err != nil {
		h.Logger.Error("render page", zap.String("page", page), zap.Error(err))
	}
}

func (h *Handler) redirectToMenu(w http.ResponseWriter, r *http.Request, message string) {
	if h.Flash != nil {
		if err := h.Flash.Add(w, r, FlashError, message); err != nil {
			h.Logger.Warn("save flash", zap.Error(err))
		}
	}
	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	h.Logger.Error(op, zap.Error(err))
	http.Error(w, "Terjadi kesalahan pada server", http.StatusInternalServerError)
}
