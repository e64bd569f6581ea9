package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"voicepos/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Store runs the persistence operations the voice pipeline needs against
// PostgreSQL. All mutations are single-statement, so a failed call leaves
// no partial state behind.
type Store struct {
	db *pgxpool.Pool
}

// New creates a Store on top of an existing connection pool.
func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetItemByName fetches an inventory item by canonical name. The lookup is
// case-insensitive; product_name is unique under LOWER().
func (s *Store) GetItemByName(ctx context.Context, name string) (*models.InventoryItem, error) {
	query := `
		SELECT id, product_name, stock_level, updated_at
		FROM inventory_items
		WHERE LOWER(product_name) = LOWER($1)
	`
	var item models.InventoryItem
	err := s.db.QueryRow(ctx, query, name).Scan(&item.ID, &item.ProductName, &item.StockLevel, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &item, nil
}

// ListItems returns the full inventory ordered by canonical product name.
func (s *Store) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	query := `
		SELECT id, product_name, stock_level, updated_at
		FROM inventory_items
		ORDER BY product_name ASC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	items := make([]models.InventoryItem, 0)
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.ProductName, &item.StockLevel, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AdjustStock atomically adds delta to the item's stock level and stamps
// updated_at. The read-modify-write happens inside one UPDATE, so
// concurrent adjustments never lose a delta. Returns ErrNotFound when no
// item matches; nothing is created implicitly.
func (s *Store) AdjustStock(ctx context.Context, name string, delta int) (*models.InventoryItem, error) {
	query := `
		UPDATE inventory_items
		SET stock_level = stock_level + $1, updated_at = NOW()
		WHERE LOWER(product_name) = LOWER($2)
		RETURNING id, product_name, stock_level, updated_at
	`
	var item models.InventoryItem
	err := s.db.QueryRow(ctx, query, delta, name).Scan(&item.ID, &item.ProductName, &item.StockLevel, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	return &item, nil
}

// InsertTransaction writes a new completed transaction and returns the
// persisted record.
func (s *Store) InsertTransaction(ctx context.Context, description string, amount float64, paymentMethod string) (*models.Transaction, error) {
	tx := models.Transaction{
		ID:            uuid.New().String(),
		Description:   description,
		TotalAmount:   amount,
		PaymentMethod: paymentMethod,
		Status:        "completed",
	}
	query := `
		INSERT INTO transactions (id, description, total_amount, payment_method, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRow(ctx, query, tx.ID, tx.Description, tx.TotalAmount, tx.PaymentMethod, tx.Status).Scan(&tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return &tx, nil
}

// ListTransactionsSince returns all transactions created on or after the
// given timestamp, oldest first.
func (s *Store) ListTransactionsSince(ctx context.Context, since time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, description, total_amount, payment_method, status, created_at, updated_at
		FROM transactions
		WHERE created_at >= $1
		ORDER BY created_at ASC
	`
	rows, err := s.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]models.Transaction, 0)
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.Description, &tx.TotalAmount, &tx.PaymentMethod, &tx.Status, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
