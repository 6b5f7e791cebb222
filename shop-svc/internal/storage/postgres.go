package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"warung-qris/shop-svc/internal/domain"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) RunMigrations(dir string) error {
	driver, err := postgres.WithInstance(r.DB, &postgres.Config{
		MigrationsTable: "shop_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// LoadMenu returns the catalog, seeding the default one into an empty table.
func (r *PostgresRepository) LoadMenu() (domain.Menu, error) {
	menu, err := r.queryMenu()
	if err != nil {
		return nil, err
	}
	if len(menu) > 0 {
		return menu, nil
	}

	menu = DefaultMenu()
	if err := r.seedMenu(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (r *PostgresRepository) queryMenu() (domain.Menu, error) {
	rows, err := r.DB.Query(`
		SELECT category, id, name, price, COALESCE(image, ''), COALESCE(description, '')
		FROM menu_items
		ORDER BY category, position`)
	if err != nil {
		return nil, fmt.Errorf("query menu: %w", err)
	}
	defer rows.Close()

	menu := domain.Menu{}
	for rows.Next() {
		var category string
		var item domain.MenuItem
		if err := rows.Scan(&category, &item.ID, &item.Name, &item.Price, &item.Image, &item.Description); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		menu[category] = append(menu[category], item)
	}
	return menu, rows.Err()
}

func (r *PostgresRepository) seedMenu(menu domain.Menu) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	categories := make([]string, 0, len(menu))
	for category := range menu {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		for position, item := range menu[category] {
			if _, err := tx.Exec(`
				INSERT INTO menu_items (id, category, position, name, price, image, description)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (id) DO NOTHING`,
				item.ID, category, position, item.Name, item.Price, item.Image, item.Description); err != nil {
				return fmt.Errorf("seed menu item %d: %w", item.ID, err)
			}
		}
	}
	return tx.Commit()
}

const orderColumns = `order_id, created_at, customer_name, customer_phone, customer_address, notes,
	item_id, item_name, quantity, unit_price, total_price, status`

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	_, err := r.DB.Exec(`
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		order.OrderID, order.Timestamp, order.Customer.Name, order.Customer.Phone,
		order.Customer.Address, order.Customer.Notes, order.Line.ItemID, order.Line.ItemName,
		order.Line.Quantity, order.Line.UnitPrice, order.Line.TotalPrice, order.Status)
	return err
}

// GetOrder returns the first stored order with the id.
func (r *PostgresRepository) GetOrder(orderID string) (*domain.Order, error) {
	row := r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE order_id = $1 ORDER BY seq LIMIT 1`, orderID)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`SELECT ` + orderColumns + ` FROM orders ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

const paymentColumns = `payment_id, order_id, amount, customer_name, created_at, updated_at,
	payment_method, status, qr_code`

func (r *PostgresRepository) CreatePayment(payment *domain.Payment) error {
	_, err := r.DB.Exec(`
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		payment.PaymentID, payment.OrderID, payment.Amount, payment.CustomerName, payment.CreatedAt,
		payment.UpdatedAt, payment.PaymentMethod, payment.Status, payment.QRCode)
	return err
}

func (r *PostgresRepository) GetPayment(paymentID string) (*domain.Payment, error) {
	return r.getPaymentBy("payment_id", paymentID)
}

func (r *PostgresRepository) GetPaymentByOrder(orderID string) (*domain.Payment, error) {
	return r.getPaymentBy("order_id", orderID)
}

func (r *PostgresRepository) getPaymentBy(column, value string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.DB.QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE `+column+` = $1 ORDER BY seq LIMIT 1`, value).
		Scan(&p.PaymentID, &p.OrderID, &p.Amount, &p.CustomerName, &p.CreatedAt, &p.UpdatedAt,
			&p.PaymentMethod, &p.Status, &p.QRCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) UpdatePayment(payment *domain.Payment) error {
	result, err := r.DB.Exec(`UPDATE payments SET status = $1, updated_at = $2 WHERE payment_id = $3`,
		payment.Status, payment.UpdatedAt, payment.PaymentID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.OrderID, &o.Timestamp, &o.Customer.Name, &o.Customer.Phone, &o.Customer.Address,
		&o.Customer.Notes, &o.Line.ItemID, &o.Line.ItemName, &o.Line.Quantity, &o.Line.UnitPrice,
		&o.Line.TotalPrice, &o.Status)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
