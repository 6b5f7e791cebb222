package httpapi_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	httpapi "warung-qris/shop-svc/internal/api/http"
	"warung-qris/shop-svc/internal/domain"
	"warung-qris/shop-svc/internal/mocks"
	"warung-qris/shop-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2024, 1, 31, 14, 25, 2, 0, time.UTC)

type testServer struct {
	menu     *mocks.MenuServiceInterface
	orders   *mocks.OrderServiceInterface
	payments *mocks.PaymentServiceInterface
	router   *mux.Router
}

func setupTestRouter(t *testing.T) *testServer {
	pages, err := httpapi.NewRenderer()
	require.NoError(t, err)

	s := &testServer{
		menu:     mocks.NewMenuServiceInterface(t),
		orders:   mocks.NewOrderServiceInterface(t),
		payments: mocks.NewPaymentServiceInterface(t),
		router:   mux.NewRouter(),
	}
	handler := httpapi.NewHandler(s.menu, s.orders, s.payments, pages,
		httpapi.NewFlashStore([]byte("0123456789abcdef0123456789abcdef")), nil)
	handler.RegisterRoutes(s.router)
	return s
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

// followFlash requests /menu with the cookies of a redirect response and returns the page body.
func (s *testServer) followFlash(t *testing.T, redirect *httptest.ResponseRecorder) string {
	t.Helper()
	s.menu.On("Menu").Return(domain.Menu{}, nil).Once()

	req := httptest.NewRequest("GET", "/menu", nil)
	for _, c := range redirect.Result().Cookies() {
		req.AddCookie(c)
	}
	recorder := s.do(req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.Body.String()
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		OrderID:   "20240131142502",
		Timestamp: created,
		Customer:  domain.Customer{Name: "Budi", Phone: "0812", Address: "Jl. Mawar 1"},
		Line: domain.OrderLine{
			ItemID: 1, ItemName: "Nasi Goreng Spesial", Quantity: 2, UnitPrice: 25000, TotalPrice: 50000,
		},
		Status: domain.OrderStatusPendingPayment,
	}
}

func samplePayment(status domain.PaymentStatus) *domain.Payment {
	return &domain.Payment{
		PaymentID:     "PAY-20240131142502",
		OrderID:       "20240131142502",
		Amount:        50000,
		CustomerName:  "Budi",
		CreatedAt:     created,
		UpdatedAt:     created,
		PaymentMethod: domain.PaymentMethodQRIS,
		Status:        status,
		QRCode:        "data:image/png;base64,AAAA",
	}
}

func TestHandler_pages(t *testing.T) {
	s := setupTestRouter(t)

	recorder := s.do(httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, recorder.Body.String(), `href="/menu"`)

	s.menu.On("Menu").Return(domain.Menu{
		"minuman": {{ID: 5, Name: "Es Teh Manis", Price: 5000, ImagePath: "/static/images/es_teh.jpg"}},
	}, nil).Once()
	recorder = s.do(httptest.NewRequest("GET", "/menu", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Es Teh Manis")
	assert.Contains(t, recorder.Body.String(), "Rp 5.000")
	assert.Contains(t, recorder.Body.String(), `href="/order/5"`)

	s.menu.On("Menu").Return(nil, errors.New("parse data/menu.json: unexpected EOF")).Once()
	recorder = s.do(httptest.NewRequest("GET", "/menu", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestHandler_orderForm(t *testing.T) {
	s := setupTestRouter(t)

	tests := []struct {
		name             string
		path             string
		prepareMocks     func()
		expectedCode     int
		expectedBody     string
		expectedLocation string
	}{
		{
			name: "success",
			path: "/order/1",
			prepareMocks: func() {
				s.menu.On("Lookup", 1).Return(&domain.MenuItem{ID: 1, Name: "Nasi Goreng Spesial", Price: 25000}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `name="item_id" value="1"`,
		},
		{
			name: "unknown_item",
			path: "/order/9999",
			prepareMocks: func() {
				s.menu.On("Lookup", 9999).Return(nil, service.ErrItemNotFound).Once()
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/menu",
		},
		{
			name:             "non_numeric_id",
			path:             "/order/abc",
			prepareMocks:     func() {},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/menu",
		},
		{
			name: "menu_unreadable",
			path: "/order/2",
			prepareMocks: func() {
				s.menu.On("Lookup", 2).Return(nil, errors.New("load menu: permission denied")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := s.do(httptest.NewRequest("GET", testCase.path, nil))
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
			if testCase.expectedLocation != "" {
				assert.Equal(t, testCase.expectedLocation, recorder.Header().Get("Location"))
			}
		})
	}
}

func TestHandler_unknownItemFlashesOnMenu(t *testing.T) {
	s := setupTestRouter(t)
	s.menu.On("Lookup", 9999).Return(nil, service.ErrItemNotFound).Once()

	redirect := s.do(httptest.NewRequest("GET", "/order/9999", nil))
	require.Equal(t, http.StatusSeeOther, redirect.Code)

	assert.Contains(t, s.followFlash(t, redirect), "Menu tidak ditemukan!")
	s.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_processOrder(t *testing.T) {
	s := setupTestRouter(t)

	validForm := url.Values{
		"item_id":        {"1"},
		"quantity":       {"2"},
		"customer_name":  {"Budi"},
		"customer_phone": {"0812"},
		"address":        {"Jl. Mawar 1"},
		"notes":          {"pedas"},
	}
	customer := domain.Customer{Name: "Budi", Phone: "0812", Address: "Jl. Mawar 1"}

	withField := func(key, value string) url.Values {
		form := url.Values{}
		for k, v := range validForm {
			form[k] = v
		}
		form.Set(key, value)
		return form
	}

	tests := []struct {
		name             string
		form             url.Values
		prepareMocks     func()
		expectedCode     int
		expectedLocation string
		expectedFlash    string
	}{
		{
			name: "success",
			form: validForm,
			prepareMocks: func() {
				s.orders.On("Create", 1, 2, customer, "pedas").Return(sampleOrder(), nil).Once()
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/payment/20240131142502",
		},
		{
			name:             "non_integer_quantity",
			form:             withField("quantity", "dua"),
			prepareMocks:     func() {},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/menu",
			expectedFlash:    "Data pesanan tidak valid",
		},
		{
			name: "zero_quantity",
			form: withField("quantity", "0"),
			prepareMocks: func() {
				s.orders.On("Create", 1, 0, customer, "pedas").
					Return(nil, domain.ErrValidation).Once()
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/menu",
			expectedFlash:    "Data pesanan tidak valid",
		},
		{
			name: "unknown_item",
			form: withField("item_id", "9999"),
			prepareMocks: func() {
				s.orders.On("Create", 9999, 2, customer, "pedas").Return(nil, service.ErrItemNotFound).Once()
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/menu",
			expectedFlash:    "Menu tidak ditemukan!",
		},
		{
			name: "store_failure",
			form: withField("item_id", "3"),
			prepareMocks: func() {
				s.orders.On("Create", 3, 2, customer, "pedas").Return(nil, errors.New("save order: disk full")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/process_order", strings.NewReader(testCase.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			recorder := s.do(req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Equal(t, testCase.expectedLocation, recorder.Header().Get("Location"))
			if testCase.expectedFlash != "" {
				assert.Contains(t, s.followFlash(t, recorder), testCase.expectedFlash)
			}
		})
	}
}

func TestHandler_paymentPage(t *testing.T) {
	s := setupTestRouter(t)

	s.orders.On("Find", "20240131142502").Return(sampleOrder(), nil).Twice()
	s.payments.On("FindByOrder", "20240131142502").Return(nil, service.ErrPaymentNotFound).Once()

	recorder := s.do(httptest.NewRequest("GET", "/payment/20240131142502", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `data-order-id="20240131142502"`)
	assert.Contains(t, body, "Rp 50.000")
	assert.NotContains(t, body, "data-payment-id")

	s.payments.On("FindByOrder", "20240131142502").Return(samplePayment(domain.PaymentStatusPending), nil).Once()
	recorder = s.do(httptest.NewRequest("GET", "/payment/20240131142502", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	body = recorder.Body.String()
	assert.Contains(t, body, `data-payment-id="PAY-20240131142502"`)
	assert.Contains(t, body, `src="data:image/png;base64,AAAA"`)

	s.orders.On("Find", "19990101000000").Return(nil, service.ErrOrderNotFound).Once()
	recorder = s.do(httptest.NewRequest("GET", "/payment/19990101000000", nil))
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/menu", recorder.Header().Get("Location"))
	assert.Contains(t, s.followFlash(t, recorder), "Pesanan tidak ditemukan!")
}

func TestHandler_paymentSuccess(t *testing.T) {
	s := setupTestRouter(t)

	s.orders.On("Find", "20240131142502").Return(sampleOrder(), nil).Twice()
	s.payments.On("FindByOrder", "20240131142502").Return(samplePayment(domain.PaymentStatusPaid), nil).Once()

	recorder := s.do(httptest.NewRequest("GET", "/payment_success/20240131142502", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Pembayaran Berhasil!")
	assert.Contains(t, recorder.Body.String(), "Nasi Goreng Spesial x 2")

	s.payments.On("FindByOrder", "20240131142502").Return(samplePayment(domain.PaymentStatusExpired), nil).Once()
	recorder = s.do(httptest.NewRequest("GET", "/payment_success/20240131142502", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Pembayaran kadaluarsa")

	s.orders.On("Find", "missing").Return(nil, service.ErrOrderNotFound).Once()
	recorder = s.do(httptest.NewRequest("GET", "/payment_success/missing", nil))
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
}

func TestHandler_createPayment(t *testing.T) {
	s := setupTestRouter(t)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"order_id":"20240131142502","total_amount":50000,"customer_name":"Budi"}`,
			prepareMocks: func() {
				s.payments.On("Create", mock.Anything, "20240131142502", int64(50000), "Budi").
					Return(samplePayment(domain.PaymentStatusPending), nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"success","payment_data":{"id":"PAY-20240131142502","qr_code":"data:image/png;base64,AAAA","order_id":"20240131142502","amount":50000}}`,
		},
		{
			name:    "amount_field",
			payload: `{"order_id":"20240131142502","amount":50000}`,
			prepareMocks: func() {
				s.payments.On("Create", mock.Anything, "20240131142502", int64(50000), "").
					Return(samplePayment(domain.PaymentStatusPending), nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"id":"PAY-20240131142502"`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"status":"error"`,
		},
		{
			name:         "missing_order_id",
			payload:      `{"total_amount":50000}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "unknown_order",
			payload: `{"order_id":"19990101000000","total_amount":1}`,
			prepareMocks: func() {
				s.payments.On("Create", mock.Anything, "19990101000000", int64(1), "").
					Return(nil, service.ErrOrderNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "store_failure",
			payload: `{"order_id":"20240131142503","total_amount":1}`,
			prepareMocks: func() {
				s.payments.On("Create", mock.Anything, "20240131142503", int64(1), "").
					Return(nil, errors.New("save payment: disk full")).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `"message":"save payment: disk full"`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := s.do(httptest.NewRequest("POST", "/api/create_payment", bytes.NewBufferString(testCase.payload)))
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_checkPayment(t *testing.T) {
	s := setupTestRouter(t)

	tests := []struct {
		name         string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "pending",
			prepareMocks: func() {
				s.payments.On("Check", mock.Anything, "PAY-20240131142502").
					Return(samplePayment(domain.PaymentStatusPending), nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"status":"success","payment_status":"pending","message":"Menunggu pembayaran...","data":{"order_id":"20240131142502","amount":50000,"created_at":"2024-01-31T14:25:02Z"}}`,
		},
		{
			name: "paid",
			prepareMocks: func() {
				s.payments.On("Check", mock.Anything, "PAY-20240131142502").
					Return(samplePayment(domain.PaymentStatusPaid), nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"payment_status":"paid","message":"Pembayaran berhasil!"`,
		},
		{
			name: "not_found",
			prepareMocks: func() {
				s.payments.On("Check", mock.Anything, "PAY-20240131142502").
					Return(nil, service.ErrPaymentNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `"status":"error"`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := s.do(httptest.NewRequest("GET", "/api/check_payment/PAY-20240131142502", nil))
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
		})
	}
}

func TestHandler_listOrdersAndHealth(t *testing.T) {
	s := setupTestRouter(t)

	s.orders.On("List").Return(nil, nil).Once()
	recorder := s.do(httptest.NewRequest("GET", "/api/orders", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())

	s.orders.On("List").Return([]domain.Order{*sampleOrder()}, nil).Once()
	recorder = s.do(httptest.NewRequest("GET", "/api/orders", nil))
	assert.Contains(t, recorder.Body.String(), `"order":{"item_id":1,"item_name":"Nasi Goreng Spesial"`)

	recorder = s.do(httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"service":"shop-svc"`)
}

func TestRupiah(t *testing.T) {
	tests := map[int64]string{
		0:       "Rp 0",
		500:     "Rp 500",
		5000:    "Rp 5.000",
		50000:   "Rp 50.000",
		1250000: "Rp 1.250.000",
		-8000:   "Rp -8.000",
	}
	for amount, expected := range tests {
		assert.Equal(t, expected, httpapi.Rupiah(amount))
	}
}
