package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"warung-qris/sales-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Reports service.ReportInterface
	Logger  *zap.Logger
}

func NewHandler(reports service.ReportInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Reports: reports, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/sales/daily", h.getDaily).Methods("GET")
	r.HandleFunc("/api/sales/daily/{date}", h.getDaily).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"service":   "sales-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getDaily(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	if date == "" {
		date = r.URL.Query().Get("date")
	}

	report, err := h.Reports.Daily(r.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Error("daily report", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
