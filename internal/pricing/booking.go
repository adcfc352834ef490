package pricing

import (
	"fmt"

	"github.com/mmynk/carwash/internal/catalog"
	"github.com/mmynk/carwash/internal/models"
)

// NewProductBooking creates a booking of the given product type from repo.
//
// The first main product of the type is preselected and every addon of the
// type is present, unselected. Car bookings get empty VehicleDetails; other
// types get none. An unknown type still yields a booking, with a nil
// ProductType, no main product and no addons. Subtotal and Discount start at 0.
func NewProductBooking(repo catalog.Repository, id, productType string) *models.ProductBooking {
	b := &models.ProductBooking{ID: id}
	SetProductType(repo, b, productType)
	return b
}

// CreateDefaultProductBooking creates a booking from the built-in catalog.
// An empty productType defaults to "car".
func CreateDefaultProductBooking(id, productType string) *models.ProductBooking {
	if productType == "" {
		productType = models.ProductTypeCar
	}
	return NewProductBooking(catalog.Default(), id, productType)
}

// SetProductType switches a booking to another product type. The addon list
// is replaced, the main product resets to the type's first entry and
// VehicleDetails is reset for car bookings and removed otherwise.
func SetProductType(repo catalog.Repository, b *models.ProductBooking, productType string) {
	if pt, ok := repo.LookupProductType(productType); ok {
		b.ProductType = &pt
	} else {
		b.ProductType = nil
	}

	b.MainProduct = nil
	if products := repo.MainProducts(productType); len(products) > 0 {
		first := products[0]
		b.MainProduct = &first
	}

	b.Addons = repo.Addons(productType)

	if productType == models.ProductTypeCar {
		b.VehicleDetails = &models.VehicleDetails{}
	} else {
		b.VehicleDetails = nil
	}
	b.Subtotal = 0
	b.Discount = 0
}

// SelectMainProduct selects a main product from the booking's product type.
func SelectMainProduct(repo catalog.Repository, b *models.ProductBooking, productID string) error {
	for _, p := range repo.MainProducts(b.ProductTypeKey()) {
		if p.ID == productID {
			b.MainProduct = &p
			return nil
		}
	}
	return fmt.Errorf("%w: %q for product type %q", ErrUnknownProduct, productID, b.ProductTypeKey())
}

func findAddon(b *models.ProductBooking, addonID string) (*models.AddonSelection, error) {
	for i := range b.Addons {
		if b.Addons[i].Addon.ID == addonID {
			return &b.Addons[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAddon, addonID)
}

// ToggleAddon selects or deselects an addon of the booking.
func ToggleAddon(b *models.ProductBooking, addonID string, selected bool) error {
	sel, err := findAddon(b, addonID)
	if err != nil {
		return err
	}
	sel.Selected = selected
	return nil
}

// SetAddonQuantity sets the quantity of a quantity addon, clamped to the
// addon's bounds, and returns the quantity actually stored.
func SetAddonQuantity(b *models.ProductBooking, addonID string, quantity int) (int, error) {
	sel, err := findAddon(b, addonID)
	if err != nil {
		return 0, err
	}
	if !sel.Addon.IsQuantity() {
		return 0, fmt.Errorf("%w: %q", ErrNotQuantityAddon, addonID)
	}

	quantity = max(quantity, sel.Addon.Min, 1)
	if sel.Addon.Max > 0 {
		quantity = min(quantity, sel.Addon.Max)
	}
	sel.Quantity = quantity
	return quantity, nil
}

// SelectCar sets or clears (car == nil) the car of a car booking.
func SelectCar(b *models.ProductBooking, car *models.Car) error {
	if b.ProductTypeKey() != models.ProductTypeCar {
		return ErrNotVehicleBooking
	}
	if b.VehicleDetails == nil {
		b.VehicleDetails = &models.VehicleDetails{}
	}
	b.VehicleDetails.SelectedCar = car
	return nil
}

// RebuildBooking reconstructs a submitted booking from the catalog, keeping
// only the customer's choices: product type, main product, selected addons
// with their quantities, and the car. Names and prices always come from repo.
// Unlike the wizard helpers, nothing is clamped: an unknown id or an out of
// range quantity is an error.
func RebuildBooking(repo catalog.Repository, submitted *models.ProductBooking) (*models.ProductBooking, error) {
	if submitted == nil {
		return nil, ErrNilBooking
	}
	key := submitted.ProductTypeKey()
	if _, ok := repo.LookupProductType(key); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProductType, key)
	}

	b := NewProductBooking(repo, submitted.ID, key)
	b.MainProduct = nil
	if submitted.MainProduct != nil {
		if err := SelectMainProduct(repo, b, submitted.MainProduct.ID); err != nil {
			return nil, err
		}
	}

	for _, sel := range submitted.Addons {
		if !sel.Selected {
			continue
		}
		target, err := findAddon(b, sel.Addon.ID)
		if err != nil {
			return nil, err
		}
		target.Selected = true
		if target.Addon.IsQuantity() {
			target.Quantity = sel.Quantity
			if err := checkQuantity(*target); err != nil {
				return nil, err
			}
		}
	}

	if car := submitted.SelectedCar(); car != nil {
		selected := *car
		if err := SelectCar(b, &selected); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// RebuildCart applies RebuildBooking to every booking of a cart. The first
// failure aborts the whole cart.
func RebuildCart(repo catalog.Repository, submitted []*models.ProductBooking) ([]*models.ProductBooking, error) {
	cart := make([]*models.ProductBooking, len(submitted))
	for i, s := range submitted {
		b, err := RebuildBooking(repo, s)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", i, err)
		}
		cart[i] = b
	}
	return cart, nil
}
