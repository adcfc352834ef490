// Package api defines the request and response messages of the booking
// service RPCs. Messages travel as JSON; see package apiconnect for the
// handler and client constructors.
package api

import "github.com/mmynk/carwash/internal/models"

type ListProductTypesRequest struct{}

type ListProductTypesResponse struct {
	ProductTypes []models.ProductType `json:"productTypes"`
}

type GetCatalogRequest struct {
	ProductType string `json:"productType"`
}

type GetCatalogResponse struct {
	// ProductType is nil when the key is not in the caller's catalog.
	ProductType  *models.ProductType     `json:"productType"`
	MainProducts []models.MainProduct    `json:"mainProducts"`
	Addons       []models.AddonSelection `json:"addons"`
}

type NewBookingRequest struct {
	// ProductType defaults to "car".
	ProductType string `json:"productType"`
}

type NewBookingResponse struct {
	Booking *models.ProductBooking `json:"booking"`
}

type CalculatePricingRequest struct {
	Bookings []*models.ProductBooking `json:"bookings"`
}

type CalculatePricingResponse struct {
	Summary models.PricingSummary `json:"summary"`

	// AdjustedSubtotal is the sum of size-adjusted booking subtotals.
	AdjustedSubtotal int64 `json:"adjustedSubtotal"`

	// Bookings echoes the request with authoritative Subtotal and Discount fields.
	Bookings []*models.ProductBooking `json:"bookings"`
}

type SubmitQuoteRequest struct {
	Bookings []*models.ProductBooking `json:"bookings"`
}

type SubmitQuoteResponse struct {
	Quote *models.Quote `json:"quote"`
}

type GetQuoteRequest struct {
	QuoteID string `json:"quoteId"`
}

type GetQuoteResponse struct {
	Quote *models.Quote `json:"quote"`
}

type ListQuotesRequest struct{}

type ListQuotesResponse struct {
	Quotes []*models.Quote `json:"quotes"`
}
