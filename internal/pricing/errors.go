package pricing

import "errors"

var (
	// ErrNilBooking is returned when a nil booking is passed to a calculation.
	ErrNilBooking = errors.New("booking is nil")

	// ErrInvalidQuantity is returned for a selected quantity addon whose
	// quantity lies outside the addon's bounds.
	ErrInvalidQuantity = errors.New("addon quantity out of range")

	// ErrInvalidIndex is returned for a negative booking index.
	ErrInvalidIndex = errors.New("booking index must not be negative")

	// ErrUnknownProductType is returned when rebuilding a booking whose
	// product type is not in the catalog.
	ErrUnknownProductType = errors.New("unknown product type")

	// ErrUnknownProduct is returned when a main product is not in the
	// catalog of the booking's product type.
	ErrUnknownProduct = errors.New("unknown main product")

	// ErrUnknownAddon is returned when an addon id is not on the booking.
	ErrUnknownAddon = errors.New("unknown addon")

	// ErrNotQuantityAddon is returned when setting a quantity on a boolean addon.
	ErrNotQuantityAddon = errors.New("addon is not priced per unit")

	// ErrNotVehicleBooking is returned when selecting a car on a booking
	// that is not a car booking.
	ErrNotVehicleBooking = errors.New("booking is not a car booking")
)
