package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"warung-qris/shop-svc/internal/domain"
)

const (
	MenuFile     = "menu.json"
	OrdersFile   = "orders.json"
	PaymentsFile = "payments.json"
)

// FileStore keeps the menu, orders and payments as indented JSON documents. Every
// call reads the whole document, changes it in memory and writes it back through a
// temp file and rename. The mutex serializes callers inside one process only.
type FileStore struct {
	mu           sync.Mutex
	menuPath     string
	ordersPath   string
	paymentsPath string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		menuPath:     filepath.Join(dir, MenuFile),
		ordersPath:   filepath.Join(dir, OrdersFile),
		paymentsPath: filepath.Join(dir, PaymentsFile),
	}
}

func (s *FileStore) LoadMenu() (domain.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var menu domain.Menu
	found, err := readDocument(s.menuPath, &menu)
	if err != nil {
		return nil, err
	}
	if found {
		return menu, nil
	}

	menu = DefaultMenu()
	if err := writeDocument(s.menuPath, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *FileStore) CreateOrder(order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.readOrders()
	if err != nil {
		return err
	}
	orders = append(orders, *order)
	return writeDocument(s.ordersPath, orders)
}

func (s *FileStore) GetOrder(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.readOrders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID == orderID {
			return &orders[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *FileStore) ListOrders() ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readOrders()
}

func (s *FileStore) CreatePayment(payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments, err := s.readPayments()
	if err != nil {
		return err
	}
	payments = append(payments, *payment)
	return writeDocument(s.paymentsPath, payments)
}

func (s *FileStore) GetPayment(paymentID string) (*domain.Payment, error) {
	return s.findPayment(func(p *domain.Payment) bool { return p.PaymentID == paymentID })
}

func (s *FileStore) GetPaymentByOrder(orderID string) (*domain.Payment, error) {
	return s.findPayment(func(p *domain.Payment) bool { return p.OrderID == orderID })
}

func (s *FileStore) UpdatePayment(payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments, err := s.readPayments()
	if err != nil {
		return err
	}
	for i := range payments {
		if payments[i].PaymentID == payment.PaymentID {
			payments[i] = *payment
			return writeDocument(s.paymentsPath, payments)
		}
	}
	return domain.ErrNotFound
}

func (s *FileStore) findPayment(match func(*domain.Payment) bool) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments, err := s.readPayments()
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if match(&payments[i]) {
			return &payments[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *FileStore) readOrders() ([]domain.Order, error) {
	orders := []domain.Order{}
	if _, err := readDocument(s.ordersPath, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *FileStore) readPayments() ([]domain.Payment, error) {
	payments := []domain.Payment{}
	if _, err := readDocument(s.paymentsPath, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// readDocument reports false when the file does not exist or is blank.
func readDocument(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

func writeDocument(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
