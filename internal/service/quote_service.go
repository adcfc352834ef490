package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/carwash/internal/catalog"
	"github.com/mmynk/carwash/internal/metrics"
	"github.com/mmynk/carwash/internal/middleware"
	"github.com/mmynk/carwash/internal/models"
	"github.com/mmynk/carwash/internal/storage"
	"github.com/mmynk/carwash/pkg/api"
	"github.com/mmynk/carwash/pkg/api/apiconnect"
)

// Ensure QuoteService implements the Connect handler
var _ apiconnect.QuoteServiceHandler = (*QuoteService)(nil)

// QuoteService implements the Connect QuoteService
type QuoteService struct {
	catalogs *catalog.Registry
	store    storage.Store
	metrics  *metrics.Metrics
}

// NewQuoteService creates a new QuoteService with the given storage backend. m may be nil.
func NewQuoteService(catalogs *catalog.Registry, store storage.Store, m *metrics.Metrics) *QuoteService {
	return &QuoteService{catalogs: catalogs, store: store, metrics: m}
}

// SubmitQuote prices the customer's cart server-side and persists it.
func (s *QuoteService) SubmitQuote(ctx context.Context, req *connect.Request[api.SubmitQuoteRequest]) (*connect.Response[api.SubmitQuoteResponse], error) {
	customerID := middleware.GetCustomerID(ctx)
	if customerID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}
	if len(req.Msg.Bookings) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("cart is empty"))
	}

	companyID := middleware.GetCompanyID(ctx)
	cart, summary, adjusted, err := priceCart(catalogFor(s.catalogs, ctx), req.Msg.Bookings)
	if err != nil {
		slog.Warn("SubmitQuote rejected cart", "customer_id", customerID, "error", err)
		return nil, pricingError(err)
	}

	snapshot := make([]models.ProductBooking, len(cart))
	for i, b := range cart {
		snapshot[i] = *b
	}
	quote := &models.Quote{
		CompanyID:        companyID,
		CustomerID:       customerID,
		Bookings:         snapshot,
		AdjustedSubtotal: adjusted,
		Summary:          summary,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateQuote(ctx, quote); err != nil {
		slog.Error("SubmitQuote failed", "customer_id", customerID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.metrics.ObserveBookings(cart)
	s.metrics.ObserveQuote(quote)

	slog.Info("Quote submitted",
		"quote_id", quote.ID,
		"customer_id", customerID,
		"company_id", companyID,
		"bookings", len(cart),
		"total", summary.Total,
	)

	return connect.NewResponse(&api.SubmitQuoteResponse{Quote: quote}), nil
}

// GetQuote retrieves one of the caller's quotes.
func (s *QuoteService) GetQuote(ctx context.Context, req *connect.Request[api.GetQuoteRequest]) (*connect.Response[api.GetQuoteResponse], error) {
	customerID := middleware.GetCustomerID(ctx)
	if customerID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}

	quote, err := s.store.GetQuote(ctx, req.Msg.QuoteID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		slog.Error("GetQuote failed", "quote_id", req.Msg.QuoteID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if quote.CustomerID != customerID {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("quote belongs to another customer"))
	}

	return connect.NewResponse(&api.GetQuoteResponse{Quote: quote}), nil
}

// ListQuotes returns the caller's quotes, newest first.
func (s *QuoteService) ListQuotes(ctx context.Context, req *connect.Request[api.ListQuotesRequest]) (*connect.Response[api.ListQuotesResponse], error) {
	customerID := middleware.GetCustomerID(ctx)
	if customerID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}

	quotes, err := s.store.ListQuotesByCustomer(ctx, customerID)
	if err != nil {
		slog.Error("ListQuotes failed", "customer_id", customerID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if quotes == nil {
		quotes = []*models.Quote{}
	}

	return connect.NewResponse(&api.ListQuotesResponse{Quotes: quotes}), nil
}
