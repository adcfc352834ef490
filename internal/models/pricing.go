package models

// LineItemType tags the kind of row in an order summary.
type LineItemType string

const (
	LineItemMainProduct LineItemType = "main-product"
	LineItemAddon       LineItemType = "addon"
	LineItemDiscount    LineItemType = "discount"
)

// LineItem is a display-ready row of the order summary.
type LineItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Price is in whole DKK. Discount rows carry a negative price.
	Price int64 `json:"price"`

	// Quantity is set for quantity addons only.
	Quantity int `json:"quantity,omitempty"`

	BookingID string       `json:"productBookingId"`
	Type      LineItemType `json:"type"`
}

// PricingSummary is the aggregate result of pricing a cart.
type PricingSummary struct {
	LineItems []LineItem `json:"lineItems"`

	// Subtotal is the sum of all non-discount line items, using unmultiplied
	// catalog prices for main products.
	Subtotal int64 `json:"subtotal"`

	// Discount is the absolute value of the sum of discount line items.
	Discount int64 `json:"discount"`

	// Total is the sum of all line items.
	Total int64 `json:"total"`

	// VAT is the 25% Danish VAT contained in Total, rounded to one decimal.
	VAT float64 `json:"vat"`
}
