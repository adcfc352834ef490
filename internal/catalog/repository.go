// Package catalog provides the product and addon reference data used to build
// and price bookings.
package catalog

import (
	"github.com/mmynk/carwash/internal/models"
)

// Repository defines read access to a product catalog.
// Implementations must be immutable after construction and safe for
// concurrent use; every call returns values the caller may freely modify.
type Repository interface {
	// ProductTypes returns the product types in display order.
	ProductTypes() []models.ProductType

	// LookupProductType returns the product type for key, and false when the
	// key is unknown.
	LookupProductType(key string) (models.ProductType, bool)

	// MainProducts returns the main products of a product type in catalog order.
	// Unknown keys yield an empty list, not an error.
	MainProducts(key string) []models.MainProduct

	// Addons returns one fresh, unselected AddonSelection per catalog addon of
	// a product type, with Quantity 1. Unknown keys yield an empty list.
	Addons(key string) []models.AddonSelection
}

// Data is the flat content of a catalog.
type Data struct {
	ProductTypes []models.ProductType
	MainProducts []models.MainProduct
	Addons       []models.Addon
}

// Ensure Static implements Repository
var _ Repository = (*Static)(nil)

// Static is an immutable in-memory Repository.
type Static struct {
	types        []models.ProductType
	mainProducts map[string][]models.MainProduct
	addons       map[string][]models.Addon
}

// NewStatic builds a Static repository from data. The input is copied, so
// later changes to data do not affect the repository.
func NewStatic(data Data) *Static {
	s := &Static{
		types:        append([]models.ProductType(nil), data.ProductTypes...),
		mainProducts: make(map[string][]models.MainProduct),
		addons:       make(map[string][]models.Addon),
	}
	for _, p := range data.MainProducts {
		s.mainProducts[p.ProductType] = append(s.mainProducts[p.ProductType], p)
	}
	for _, a := range data.Addons {
		s.addons[a.ProductType] = append(s.addons[a.ProductType], cloneAddon(a))
	}
	return s
}

// ProductTypes returns the product types in display order.
func (s *Static) ProductTypes() []models.ProductType {
	return append([]models.ProductType(nil), s.types...)
}

// LookupProductType returns the product type for key.
func (s *Static) LookupProductType(key string) (models.ProductType, bool) {
	for _, t := range s.types {
		if t.Key == key {
			return t, true
		}
	}
	return models.ProductType{}, false
}

// MainProducts returns the main products for key in catalog order.
func (s *Static) MainProducts(key string) []models.MainProduct {
	products := s.mainProducts[key]
	out := make([]models.MainProduct, len(products))
	copy(out, products)
	return out
}

// Addons returns fresh selections for the addons of key.
func (s *Static) Addons(key string) []models.AddonSelection {
	addons := s.addons[key]
	out := make([]models.AddonSelection, len(addons))
	for i, a := range addons {
		out[i] = models.AddonSelection{
			Addon:    cloneAddon(a),
			Selected: false,
			Quantity: 1,
		}
	}
	return out
}

// cloneAddon copies the optional price fields so no two selections share them.
func cloneAddon(a models.Addon) models.Addon {
	if a.Price != nil {
		a.Price = models.Amount(*a.Price)
	}
	if a.UnitPrice != nil {
		a.UnitPrice = models.Amount(*a.UnitPrice)
	}
	return a
}

// GetMainProductsByType returns the main products of the built-in catalog for
// a product type. Unknown types yield an empty list.
func GetMainProductsByType(productType string) []models.MainProduct {
	return Default().MainProducts(productType)
}

// GetAddonsByType returns fresh, unselected addon selections from the built-in
// catalog for a product type. Unknown types yield an empty list.
func GetAddonsByType(productType string) []models.AddonSelection {
	return Default().Addons(productType)
}
