// Package pricing computes booking subtotals, multi-item discounts, order
// summary line items and VAT for a cart of product bookings.
//
// The calculation functions are pure: they read only their arguments and the
// immutable size table, so they are safe for concurrent use. AnnotateBookings
// and the helpers in booking.go modify the bookings they are given.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/carwash/internal/models"
)

var (
	// discountRate applies to every booking after the first.
	discountRate = decimal.RequireFromString("0.10")

	// vatDivisor is 1 + the Danish VAT rate of 25%.
	vatDivisor = decimal.RequireFromString("1.25")
)

// roundKroner rounds to whole kroner, half away from zero. For the
// non-negative amounts of a valid catalog this matches half-up rounding.
func roundKroner(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// adjustedMainPrice returns the main product price after the vehicle size
// multiplier, rounded to whole kroner. Only car bookings with a chosen car
// are multiplied.
func adjustedMainPrice(b *models.ProductBooking) int64 {
	if b.MainProduct == nil {
		return 0
	}
	price := b.MainProduct.Price
	car := b.SelectedCar()
	if b.ProductTypeKey() != models.ProductTypeCar || car == nil {
		return price
	}
	m := GetVehicleSizeMultiplier(car.Size)
	return roundKroner(decimal.NewFromInt(price).Mul(decimal.NewFromFloat(m)))
}

// addonPrice returns the price contribution of one addon selection.
// Deselected addons, and addons missing the price field of their kind, are free.
func addonPrice(sel models.AddonSelection) (int64, error) {
	if !sel.Selected {
		return 0, nil
	}
	a := sel.Addon
	if a.IsQuantity() {
		if err := checkQuantity(sel); err != nil {
			return 0, err
		}
		if a.UnitPrice == nil {
			return 0, nil
		}
		return *a.UnitPrice * int64(sel.Quantity), nil
	}
	if a.Price == nil {
		return 0, nil
	}
	return *a.Price, nil
}

func checkQuantity(sel models.AddonSelection) error {
	lo := max(sel.Addon.Min, 1)
	if sel.Quantity < lo || (sel.Addon.Max > 0 && sel.Quantity > sel.Addon.Max) {
		return fmt.Errorf("%w: %s has quantity %d, allowed [%d, %d]",
			ErrInvalidQuantity, sel.Addon.ID, sel.Quantity, lo, sel.Addon.Max)
	}
	return nil
}

// CalculateProductSubtotal computes the price of one booking.
//
// Algorithm:
// - Main product: catalog price; for a car booking with a chosen car, times
// the vehicle size multiplier, rounded to whole kroner at this step
// - Boolean addons: flat price when selected
// - Quantity addons: unit price × quantity when selected
//
// Returns ErrNilBooking for a nil booking and ErrInvalidQuantity when a
// selected quantity addon is below max(Min, 1) or above its Max.
func CalculateProductSubtotal(b *models.ProductBooking) (int64, error) {
	if b == nil {
		return 0, ErrNilBooking
	}

	subtotal := adjustedMainPrice(b)
	for _, sel := range b.Addons {
		price, err := addonPrice(sel)
		if err != nil {
			return 0, err
		}
		subtotal += price
	}
	return subtotal, nil
}

// CalculateProductDiscount computes the multi-item discount of the booking at
// index in the cart. The first booking is never discounted; every later one
// gets 10% of its subtotal, rounded to whole kroner, whatever its product type.
func CalculateProductDiscount(b *models.ProductBooking, index int) (int64, error) {
	if b == nil {
		return 0, ErrNilBooking
	}
	if index < 0 {
		return 0, ErrInvalidIndex
	}
	if index == 0 {
		return 0, nil
	}

	subtotal, err := CalculateProductSubtotal(b)
	if err != nil {
		return 0, err
	}
	return roundKroner(decimal.NewFromInt(subtotal).Mul(discountRate)), nil
}

// labelSuffix numbers every booking after the first: "", " #2", " #3", ...
func labelSuffix(index int) string {
	if index == 0 {
		return ""
	}
	return fmt.Sprintf(" #%d", index+1)
}

// GenerateLineItems flattens a cart into order summary rows.
//
// Per booking, in order: the main product at its unmultiplied catalog price,
// the selected addons in catalog order, then the discount row for bookings
// after the first. A malformed booking aborts the whole cart.
func GenerateLineItems(bookings []*models.ProductBooking) ([]models.LineItem, error) {
	items := make([]models.LineItem, 0)

	for i, b := range bookings {
		if b == nil {
			return nil, fmt.Errorf("booking %d: %w", i, ErrNilBooking)
		}
		suffix := labelSuffix(i)

		if b.MainProduct != nil {
			items = append(items, models.LineItem{
				ID:        b.ID + "-main",
				Name:      b.MainProduct.Name + suffix,
				Price:     b.MainProduct.Price,
				BookingID: b.ID,
				Type:      models.LineItemMainProduct,
			})
		}

		for _, sel := range b.Addons {
			if !sel.Selected {
				continue
			}
			price, err := addonPrice(sel)
			if err != nil {
				return nil, fmt.Errorf("booking %d: %w", i, err)
			}
			item := models.LineItem{
				ID:        b.ID + "-addon-" + sel.Addon.ID,
				Name:      sel.Addon.Name + suffix,
				Price:     price,
				BookingID: b.ID,
				Type:      models.LineItemAddon,
			}
			if sel.Addon.IsQuantity() {
				item.Quantity = sel.Quantity
				if sel.Quantity > 1 {
					item.Name += fmt.Sprintf(" (%d stk.)", sel.Quantity)
				}
			}
			items = append(items, item)
		}

		discount, err := CalculateProductDiscount(b, i)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", i, err)
		}
		if discount > 0 {
			items = append(items, models.LineItem{
				ID:        b.ID + "-discount",
				Name:      fmt.Sprintf("Rabat %s #%d", productTypeName(b), i+1),
				Price:     -discount,
				BookingID: b.ID,
				Type:      models.LineItemDiscount,
			})
		}
	}

	return items, nil
}

func productTypeName(b *models.ProductBooking) string {
	if b.ProductType == nil || b.ProductType.Name == "" {
		return "produkt"
	}
	return b.ProductType.Name
}

// CalculatePricing prices a cart.
//
// Subtotal sums the non-discount line items, so it reflects unmultiplied
// main product prices, while discounts are computed from the size-adjusted
// booking subtotals. AdjustedSubtotal reports the size-adjusted figure.
func CalculatePricing(bookings []*models.ProductBooking) (models.PricingSummary, error) {
	items, err := GenerateLineItems(bookings)
	if err != nil {
		return models.PricingSummary{}, err
	}

	var subtotal, discount, total int64
	for _, item := range items {
		total += item.Price
		if item.Type == models.LineItemDiscount {
			discount += item.Price
		} else {
			subtotal += item.Price
		}
	}
	if discount < 0 {
		discount = -discount
	}

	return models.PricingSummary{
		LineItems: items,
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     total,
		VAT:       CalculateVAT(total),
	}, nil
}

// AdjustedSubtotal sums the size-adjusted subtotals of all bookings, before
// discounts. It equals PricingSummary.Subtotal unless a car booking carries a
// multiplier other than 1.
func AdjustedSubtotal(bookings []*models.ProductBooking) (int64, error) {
	var sum int64
	for i, b := range bookings {
		subtotal, err := CalculateProductSubtotal(b)
		if err != nil {
			return 0, fmt.Errorf("booking %d: %w", i, err)
		}
		sum += subtotal
	}
	return sum, nil
}

// CalculateVAT returns the VAT contained in a VAT-inclusive total:
// total - total/1.25, rounded to one decimal, half away from zero.
func CalculateVAT(total int64) float64 {
	t := decimal.NewFromInt(total)
	return t.Sub(t.Div(vatDivisor)).Round(1).InexactFloat64()
}

// AnnotateBookings fills the informational Subtotal and Discount fields of
// each booking from the authoritative calculations.
func AnnotateBookings(bookings []*models.ProductBooking) error {
	for i, b := range bookings {
		subtotal, err := CalculateProductSubtotal(b)
		if err != nil {
			return fmt.Errorf("booking %d: %w", i, err)
		}
		discount, err := CalculateProductDiscount(b, i)
		if err != nil {
			return fmt.Errorf("booking %d: %w", i, err)
		}
		b.Subtotal = subtotal
		b.Discount = discount
	}
	return nil
}
