package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/carwash/internal/catalog"
	"github.com/mmynk/carwash/internal/middleware"
	"github.com/mmynk/carwash/internal/models"
	"github.com/mmynk/carwash/internal/pricing"
	"github.com/mmynk/carwash/pkg/api"
	"github.com/mmynk/carwash/pkg/api/apiconnect"
)

// Ensure CatalogService implements the Connect handler
var _ apiconnect.CatalogServiceHandler = (*CatalogService)(nil)

// CatalogService implements the Connect CatalogService: catalog browsing,
// booking creation and live cart pricing for the booking wizard.
type CatalogService struct {
	catalogs *catalog.Registry
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalogs *catalog.Registry) *CatalogService {
	return &CatalogService{catalogs: catalogs}
}

// catalogFor returns the catalog of the caller's company.
func catalogFor(catalogs *catalog.Registry, ctx context.Context) catalog.Repository {
	return catalogs.For(middleware.GetCompanyID(ctx))
}

// pricingError maps a pricing precondition failure to a Connect error.
func pricingError(err error) error {
	if errors.Is(err, pricing.ErrNilBooking) ||
		errors.Is(err, pricing.ErrInvalidQuantity) ||
		errors.Is(err, pricing.ErrInvalidIndex) ||
		errors.Is(err, pricing.ErrUnknownProductType) ||
		errors.Is(err, pricing.ErrUnknownProduct) ||
		errors.Is(err, pricing.ErrUnknownAddon) ||
		errors.Is(err, pricing.ErrNotQuantityAddon) ||
		errors.Is(err, pricing.ErrNotVehicleBooking) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// ListProductTypes returns the product types of the caller's catalog.
func (s *CatalogService) ListProductTypes(ctx context.Context, req *connect.Request[api.ListProductTypesRequest]) (*connect.Response[api.ListProductTypesResponse], error) {
	types := catalogFor(s.catalogs, ctx).ProductTypes()
	slog.Debug("ListProductTypes", "company_id", middleware.GetCompanyID(ctx), "count", len(types))

	return connect.NewResponse(&api.ListProductTypesResponse{ProductTypes: types}), nil
}

// GetCatalog returns the main products and addons of a product type.
// Unknown product types yield empty lists, not an error.
func (s *CatalogService) GetCatalog(ctx context.Context, req *connect.Request[api.GetCatalogRequest]) (*connect.Response[api.GetCatalogResponse], error) {
	if req.Msg.ProductType == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("product_type is required"))
	}

	repo := catalogFor(s.catalogs, ctx)
	resp := &api.GetCatalogResponse{
		MainProducts: repo.MainProducts(req.Msg.ProductType),
		Addons:       repo.Addons(req.Msg.ProductType),
	}
	if pt, ok := repo.LookupProductType(req.Msg.ProductType); ok {
		resp.ProductType = &pt
	} else {
		slog.Info("GetCatalog for unknown product type", "product_type", req.Msg.ProductType)
	}

	return connect.NewResponse(resp), nil
}

// NewBooking creates a booking with catalog defaults for a new cart entry.
func (s *CatalogService) NewBooking(ctx context.Context, req *connect.Request[api.NewBookingRequest]) (*connect.Response[api.NewBookingResponse], error) {
	productType := req.Msg.ProductType
	if productType == "" {
		productType = models.ProductTypeCar
	}

	booking := pricing.NewProductBooking(catalogFor(s.catalogs, ctx), uuid.New().String(), productType)
	slog.Debug("NewBooking", "booking_id", booking.ID, "product_type", productType)

	return connect.NewResponse(&api.NewBookingResponse{Booking: booking}), nil
}

// CalculatePricing prices the submitted cart against the caller's catalog.
func (s *CatalogService) CalculatePricing(ctx context.Context, req *connect.Request[api.CalculatePricingRequest]) (*connect.Response[api.CalculatePricingResponse], error) {
	cart, summary, adjusted, err := priceCart(catalogFor(s.catalogs, ctx), req.Msg.Bookings)
	if err != nil {
		slog.Warn("CalculatePricing rejected cart", "error", err)
		return nil, pricingError(err)
	}

	slog.Debug("Cart priced",
		"bookings", len(cart),
		"subtotal", summary.Subtotal,
		"adjusted_subtotal", adjusted,
		"discount", summary.Discount,
		"total", summary.Total,
		"vat", summary.VAT,
	)

	return connect.NewResponse(&api.CalculatePricingResponse{
		Summary:          summary,
		AdjustedSubtotal: adjusted,
		Bookings:         cart,
	}), nil
}

// priceCart rebuilds a submitted cart from the catalog and prices it.
// The returned bookings carry authoritative Subtotal and Discount fields.
func priceCart(repo catalog.Repository, submitted []*models.ProductBooking) ([]*models.ProductBooking, models.PricingSummary, int64, error) {
	cart, err := pricing.RebuildCart(repo, submitted)
	if err != nil {
		return nil, models.PricingSummary{}, 0, err
	}

	summary, err := pricing.CalculatePricing(cart)
	if err != nil {
		return nil, models.PricingSummary{}, 0, err
	}
	adjusted, err := pricing.AdjustedSubtotal(cart)
	if err != nil {
		return nil, models.PricingSummary{}, 0, err
	}
	if err := pricing.AnnotateBookings(cart); err != nil {
		return nil, models.PricingSummary{}, 0, err
	}

	return cart, summary, adjusted, nil
}
