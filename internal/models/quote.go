package models

// Quote is a cart submitted by a customer, priced server-side and persisted.
// The submission flow never trusts client-side figures: Summary is always
// computed from Bookings by the pricing engine before the quote is stored.
type Quote struct {
	// ID is the unique identifier for the quote (UUID format).
	ID string `json:"id"`

	// CompanyID is the tenant whose catalog priced the quote.
	CompanyID string `json:"companyId"`

	// CustomerID is the authenticated customer who submitted the quote.
	CustomerID string `json:"customerId"`

	// Bookings is a snapshot of the submitted cart.
	Bookings []ProductBooking `json:"bookings"`

	// AdjustedSubtotal is the sum of size-adjusted booking subtotals. It can
	// differ from Summary.Subtotal when a car booking has a multiplier != 1.
	AdjustedSubtotal int64 `json:"adjustedSubtotal"`

	Summary PricingSummary `json:"summary"`

	// CreatedAt is the Unix timestamp when the quote was submitted.
	CreatedAt int64 `json:"createdAt"`
}
