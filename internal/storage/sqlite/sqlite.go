// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/carwash/internal/models"
	"github.com/mmynk/carwash/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateQuote persists a quote and its line items in one transaction.
func (s *SQLiteStore) CreateQuote(ctx context.Context, quote *models.Quote) error {
	if quote.ID == "" {
		quote.ID = uuid.New().String()
	}
	if quote.CreatedAt == 0 {
		quote.CreatedAt = time.Now().Unix()
	}

	bookings, err := json.Marshal(quote.Bookings)
	if err != nil {
		return fmt.Errorf("failed to encode bookings: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sum := quote.Summary
	_, err = tx.ExecContext(ctx,
		`INSERT INTO quotes (id, company_id, customer_id, bookings, subtotal, adjusted_subtotal, discount, total, vat, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		quote.ID, quote.CompanyID, quote.CustomerID, string(bookings),
		sum.Subtotal, quote.AdjustedSubtotal, sum.Discount, sum.Total, sum.VAT, quote.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}

	for i, item := range sum.LineItems {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO quote_line_items (quote_id, position, id, name, price, quantity, booking_id, type)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			quote.ID, i, item.ID, item.Name, item.Price, item.Quantity, item.BookingID, string(item.Type),
		)
		if err != nil {
			return fmt.Errorf("failed to insert line item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

const selectQuote = `SELECT id, company_id, customer_id, bookings, subtotal, adjusted_subtotal, discount, total, vat, created_at FROM quotes`

type scanner interface {
	Scan(dest ...any) error
}

func scanQuote(row scanner) (*models.Quote, error) {
	quote := &models.Quote{}
	var bookings string
	err := row.Scan(&quote.ID, &quote.CompanyID, &quote.CustomerID, &bookings,
		&quote.Summary.Subtotal, &quote.AdjustedSubtotal, &quote.Summary.Discount,
		&quote.Summary.Total, &quote.Summary.VAT, &quote.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(bookings), &quote.Bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings of quote %s: %w", quote.ID, err)
	}
	return quote, nil
}

// GetQuote retrieves a quote by ID, including its line items.
func (s *SQLiteStore) GetQuote(ctx context.Context, quoteID string) (*models.Quote, error) {
	quote, err := scanQuote(s.db.QueryRowContext(ctx, selectQuote+" WHERE id = ?", quoteID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("quote %s: %w", quoteID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	if err := s.loadLineItems(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// ListQuotesByCustomer retrieves all quotes of a customer, newest first.
func (s *SQLiteStore) ListQuotesByCustomer(ctx context.Context, customerID string) ([]*models.Quote, error) {
	rows, err := s.db.QueryContext(ctx,
		selectQuote+" WHERE customer_id = ? ORDER BY created_at DESC, id",
		customerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*models.Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotes: %w", err)
	}
	rows.Close()

	for _, quote := range quotes {
		if err := s.loadLineItems(ctx, quote); err != nil {
			return nil, err
		}
	}
	return quotes, nil
}

// loadLineItems fills quote.Summary.LineItems in their stored order.
func (s *SQLiteStore) loadLineItems(ctx context.Context, quote *models.Quote) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, price, quantity, booking_id, type FROM quote_line_items
		 WHERE quote_id = ? ORDER BY position`,
		quote.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get line items: %w", err)
	}
	defer rows.Close()

	quote.Summary.LineItems = make([]models.LineItem, 0)
	for rows.Next() {
		var item models.LineItem
		var itemType string
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Quantity, &item.BookingID, &itemType); err != nil {
			return fmt.Errorf("failed to scan line item: %w", err)
		}
		item.Type = models.LineItemType(itemType)
		quote.Summary.LineItems = append(quote.Summary.LineItems, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate line items: %w", err)
	}
	return nil
}
