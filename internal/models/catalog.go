package models

// Product type keys known to the built-in catalog. The set is open: catalogs
// loaded from files may define further keys.
const (
	ProductTypeCar         = "car"
	ProductTypeBabyTrolley = "baby-trolley"
	ProductTypeMotorcycle  = "motorcycle"
	ProductTypeYacht       = "yacht"
)

// ProductType is a top-level category of item being serviced.
type ProductType struct {
	// Key is the stable identifier used for catalog lookups (e.g. "car").
	Key string `json:"key" yaml:"key"`

	// Name is the display name (e.g. "Bil").
	Name string `json:"name" yaml:"name"`

	Description string `json:"description,omitempty" yaml:"description"`
}

// MainProduct is a purchasable base service for a product type.
type MainProduct struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`

	// Price is the flat catalog price in whole DKK, before any vehicle size multiplier.
	Price int64 `json:"price" yaml:"price"`

	// Duration is the estimated duration in minutes.
	Duration int `json:"duration" yaml:"duration"`

	// ProductType is the key of the owning product type.
	ProductType string `json:"productType" yaml:"productType"`

	CategoryID string `json:"categoryId,omitempty" yaml:"categoryId"`
}

// AddonKind distinguishes flat-price toggles from per-unit quantity addons.
type AddonKind string

const (
	AddonKindBoolean  AddonKind = "boolean"
	AddonKindQuantity AddonKind = "quantity"
)

// Addon is an optional extra tied to a product type.
type Addon struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description"`
	Kind        AddonKind `json:"kind" yaml:"kind"`

	// Price is the flat price of a boolean addon.
	// Nil when the entry is not fully configured; it then prices at 0.
	Price *int64 `json:"price,omitempty" yaml:"price"`

	// UnitPrice is the per-unit price of a quantity addon.
	UnitPrice *int64 `json:"unitPrice,omitempty" yaml:"unitPrice"`

	// Min and Max bound the selectable quantity of a quantity addon.
	// A zero Max means unbounded.
	Min int `json:"min,omitempty" yaml:"min"`
	Max int `json:"max,omitempty" yaml:"max"`

	ProductType string `json:"productType" yaml:"productType"`
}

// IsQuantity reports whether the addon is priced per unit.
func (a Addon) IsQuantity() bool {
	return a.Kind == AddonKindQuantity
}

// Amount returns a pointer to v, for populating the optional price fields.
func Amount(v int64) *int64 {
	return &v
}
