package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"void-apparel/models"
)

const ordersSchema = `
	CREATE TABLE IF NOT EXISTS orders (
		id              UUID PRIMARY KEY,
		session_id      TEXT NOT NULL,
		status          TEXT NOT NULL,
		email           TEXT NOT NULL,
		first_name      TEXT NOT NULL,
		last_name       TEXT NOT NULL,
		address         TEXT NOT NULL,
		city            TEXT NOT NULL,
		zip             TEXT NOT NULL,
		shipping_method TEXT NOT NULL,
		lines           JSONB NOT NULL,
		subtotal        BIGINT NOT NULL,
		shipping        BIGINT NOT NULL,
		total           BIGINT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS orders_session_id_idx ON orders (session_id);
`

const orderColumns = `id, session_id, status, email, first_name, last_name, address, city, zip,
		       shipping_method, lines, subtotal, shipping, total, created_at`

// PostgresOrderRepository handles database operations for placed orders
type PostgresOrderRepository struct {
	db *sql.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Ensure PostgresOrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*PostgresOrderRepository)(nil)

// EnsureSchema creates the orders table when it does not exist
func (r *PostgresOrderRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, ordersSchema); err != nil {
		return fmt.Errorf("failed to create orders schema: %w", err)
	}
	return nil
}

// Create inserts an order and returns it with the database creation timestamp
func (r *PostgresOrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	log.Printf("📦 Create: Inserting order id=%s, session_id=%s, lines=%d", order.ID, order.SessionID, len(order.Lines))

	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order lines: %w", err)
	}

	query := `
		INSERT INTO orders (id, session_id, status, email, first_name, last_name, address, city, zip,
		                    shipping_method, lines, subtotal, shipping, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at
	`

	var createdAt time.Time
	err = r.db.QueryRowContext(ctx, query,
		order.ID,
		order.SessionID,
		order.Status,
		order.Email,
		order.FirstName,
		order.LastName,
		order.Address,
		order.City,
		order.Zip,
		order.ShippingMethod,
		lines,
		order.Subtotal,
		order.Shipping,
		order.Total,
	).Scan(&createdAt)
	if err != nil {
		log.Printf("❌ Create: Error inserting order: %v", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	created := *order
	created.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	log.Printf("✅ Create: Successfully created order id=%s", created.ID)
	return &created, nil
}

// GetByID returns the order with the given id. Ids that are not UUIDs cannot
// name an order and return ErrOrderNotFound without querying.
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, orderID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		log.Printf("❌ GetByID: Error fetching order id=%s: %v", id, err)
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return order, nil
}

// ListBySession returns the orders placed by a session, newest first
func (r *PostgresOrderRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE session_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var order models.Order
	var lines []byte
	var createdAt time.Time

	err := row.Scan(
		&order.ID,
		&order.SessionID,
		&order.Status,
		&order.Email,
		&order.FirstName,
		&order.LastName,
		&order.Address,
		&order.City,
		&order.Zip,
		&order.ShippingMethod,
		&lines,
		&order.Subtotal,
		&order.Shipping,
		&order.Total,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(lines, &order.Lines); err != nil {
		return nil, fmt.Errorf("failed to decode order lines: %w", err)
	}
	order.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return &order, nil
}
