// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/carwash/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for quote storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateQuote persists a priced quote.
	// The quote.ID and quote.CreatedAt fields will be populated by the store if empty.
	CreateQuote(ctx context.Context, quote *models.Quote) error

	// GetQuote retrieves a quote by its ID, including its line items.
	// Returns an error wrapping ErrNotFound if the quote does not exist.
	GetQuote(ctx context.Context, quoteID string) (*models.Quote, error)

	// ListQuotesByCustomer returns a customer's quotes, newest first.
	// Line items are included.
	ListQuotesByCustomer(ctx context.Context, customerID string) ([]*models.Quote, error)

	// Close releases any resources held by the store.
	Close() error
}
