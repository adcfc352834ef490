package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/carwash/internal/models"
	"github.com/mmynk/carwash/internal/pricing"
	"github.com/mmynk/carwash/internal/storage"
)

func newQuote(t *testing.T, customerID string, bookings ...*models.ProductBooking) *models.Quote {
	t.Helper()

	summary, err := pricing.CalculatePricing(bookings)
	if err != nil {
		t.Fatalf("CalculatePricing failed: %v", err)
	}
	adjusted, err := pricing.AdjustedSubtotal(bookings)
	if err != nil {
		t.Fatalf("AdjustedSubtotal failed: %v", err)
	}

	snapshot := make([]models.ProductBooking, len(bookings))
	for i, b := range bookings {
		snapshot[i] = *b
	}
	return &models.Quote{
		CompanyID:        "acme",
		CustomerID:       customerID,
		Bookings:         snapshot,
		AdjustedSubtotal: adjusted,
		Summary:          summary,
	}
}

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "carwash-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateQuote generates ID and timestamp", func(t *testing.T) {
		quote := newQuote(t, "alice", pricing.CreateDefaultProductBooking("b1", models.ProductTypeCar))

		if err := store.CreateQuote(ctx, quote); err != nil {
			t.Fatalf("CreateQuote failed: %v", err)
		}

		if quote.ID == "" {
			t.Error("Expected quote ID to be generated")
		}
		if quote.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetQuote retrieves complete quote", func(t *testing.T) {
		car := pricing.CreateDefaultProductBooking("b1", models.ProductTypeCar)
		if err := pricing.ToggleAddon(car, "seat-cleaning", true); err != nil {
			t.Fatal(err)
		}
		if _, err := pricing.SetAddonQuantity(car, "seat-cleaning", 4); err != nil {
			t.Fatal(err)
		}
		if err := pricing.SelectCar(car, &models.Car{ID: "golf", Brand: "VW", Model: "Golf", Size: models.VehicleSizeSUV}); err != nil {
			t.Fatal(err)
		}
		trolley := pricing.CreateDefaultProductBooking("b2", models.ProductTypeBabyTrolley)

		original := newQuote(t, "bob", car, trolley)
		if err := store.CreateQuote(ctx, original); err != nil {
			t.Fatalf("CreateQuote failed: %v", err)
		}

		retrieved, err := store.GetQuote(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetQuote failed: %v", err)
		}

		if retrieved.CustomerID != "bob" || retrieved.CompanyID != "acme" {
			t.Errorf("owner mismatch: got %s/%s", retrieved.CompanyID, retrieved.CustomerID)
		}
		if retrieved.Summary.Total != original.Summary.Total {
			t.Errorf("Total mismatch: got %d, want %d", retrieved.Summary.Total, original.Summary.Total)
		}
		if retrieved.Summary.Subtotal != original.Summary.Subtotal {
			t.Errorf("Subtotal mismatch: got %d, want %d", retrieved.Summary.Subtotal, original.Summary.Subtotal)
		}
		if retrieved.Summary.VAT != original.Summary.VAT {
			t.Errorf("VAT mismatch: got %v, want %v", retrieved.Summary.VAT, original.Summary.VAT)
		}
		if retrieved.AdjustedSubtotal != original.AdjustedSubtotal {
			t.Errorf("AdjustedSubtotal mismatch: got %d, want %d", retrieved.AdjustedSubtotal, original.AdjustedSubtotal)
		}

		if len(retrieved.Summary.LineItems) != len(original.Summary.LineItems) {
			t.Fatalf("LineItems count mismatch: got %d, want %d", len(retrieved.Summary.LineItems), len(original.Summary.LineItems))
		}
		for i, item := range retrieved.Summary.LineItems {
			if item != original.Summary.LineItems[i] {
				t.Errorf("LineItem %d mismatch: got %+v, want %+v", i, item, original.Summary.LineItems[i])
			}
		}

		if len(retrieved.Bookings) != 2 {
			t.Fatalf("Bookings count mismatch: got %d, want 2", len(retrieved.Bookings))
		}
		if got := retrieved.Bookings[0].SelectedCar(); got == nil || got.Size != models.VehicleSizeSUV {
			t.Errorf("Expected SUV in booking snapshot, got %+v", got)
		}
		if retrieved.Bookings[1].VehicleDetails != nil {
			t.Error("Expected no vehicle details for the trolley booking")
		}
		if retrieved.Bookings[0].Addons[2].Quantity != 4 {
			t.Errorf("Expected seat quantity 4, got %d", retrieved.Bookings[0].Addons[2].Quantity)
		}
	})

	t.Run("GetQuote returns ErrNotFound for nonexistent quote", func(t *testing.T) {
		_, err := store.GetQuote(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Empty quote keeps empty line items", func(t *testing.T) {
		quote := newQuote(t, "carol")
		if err := store.CreateQuote(ctx, quote); err != nil {
			t.Fatalf("CreateQuote failed: %v", err)
		}

		retrieved, err := store.GetQuote(ctx, quote.ID)
		if err != nil {
			t.Fatalf("GetQuote failed: %v", err)
		}
		if retrieved.Summary.LineItems == nil || len(retrieved.Summary.LineItems) != 0 {
			t.Errorf("Expected empty line items, got %v", retrieved.Summary.LineItems)
		}
		if retrieved.Summary.Total != 0 {
			t.Errorf("Expected zero total, got %d", retrieved.Summary.Total)
		}
	})

	t.Run("ListQuotesByCustomer returns newest first", func(t *testing.T) {
		older := newQuote(t, "dave", pricing.CreateDefaultProductBooking("b1", models.ProductTypeYacht))
		older.CreatedAt = 1000
		newer := newQuote(t, "dave", pricing.CreateDefaultProductBooking("b1", models.ProductTypeMotorcycle))
		newer.CreatedAt = 2000
		other := newQuote(t, "erin", pricing.CreateDefaultProductBooking("b1", models.ProductTypeCar))

		for _, q := range []*models.Quote{older, newer, other} {
			if err := store.CreateQuote(ctx, q); err != nil {
				t.Fatalf("CreateQuote failed: %v", err)
			}
		}

		quotes, err := store.ListQuotesByCustomer(ctx, "dave")
		if err != nil {
			t.Fatalf("ListQuotesByCustomer failed: %v", err)
		}
		if len(quotes) != 2 {
			t.Fatalf("Expected 2 quotes, got %d", len(quotes))
		}
		if quotes[0].ID != newer.ID || quotes[1].ID != older.ID {
			t.Errorf("Unexpected order: %s, %s", quotes[0].ID, quotes[1].ID)
		}
		if len(quotes[0].Summary.LineItems) == 0 {
			t.Error("Expected line items to be loaded")
		}
	})

	t.Run("ListQuotesByCustomer with no quotes", func(t *testing.T) {
		quotes, err := store.ListQuotesByCustomer(ctx, "nobody")
		if err != nil {
			t.Fatalf("ListQuotesByCustomer failed: %v", err)
		}
		if len(quotes) != 0 {
			t.Errorf("Expected no quotes, got %d", len(quotes))
		}
	})
}
