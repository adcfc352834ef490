package models

// VehicleSize is the size category of a car.
type VehicleSize string

const (
	VehicleSizeMini       VehicleSize = "mini"
	VehicleSizeMellem     VehicleSize = "mellem"
	VehicleSizeSedan      VehicleSize = "sedan"
	VehicleSizeStationcar VehicleSize = "stationcar"
	VehicleSizeSUV        VehicleSize = "suv"
	VehicleSizeMPV        VehicleSize = "mpv"
	VehicleSizeVarevogn   VehicleSize = "varevogn"
)

// Car is a car model the customer picked for a car booking.
type Car struct {
	ID    string      `json:"id"`
	Brand string      `json:"brand"`
	Model string      `json:"model"`
	Size  VehicleSize `json:"size"`
}

// VehicleDetails holds vehicle data for car bookings.
type VehicleDetails struct {
	// SelectedCar is nil until the customer picks a car.
	SelectedCar *Car `json:"selectedCar"`
}

// AddonSelection wraps a catalog Addon with the customer's choice.
type AddonSelection struct {
	Addon    Addon `json:"addon"`
	Selected bool  `json:"selected"`

	// Quantity is only meaningful for selected quantity addons.
	Quantity int `json:"quantity"`
}

// ProductBooking is one cart line: a single physical item to be serviced.
type ProductBooking struct {
	// ID is assigned by the client and stable for the lifetime of the cart entry.
	ID string `json:"id"`

	// ProductType is nil until a known type is chosen.
	ProductType *ProductType `json:"productType"`

	// MainProduct defaults to the first catalog entry for the type.
	MainProduct *MainProduct `json:"mainProduct"`

	// Addons holds exactly one selection per catalog addon of the current type,
	// in catalog order.
	Addons []AddonSelection `json:"addons"`

	// VehicleDetails is only present for car bookings. A car booking without a
	// chosen car has non-nil VehicleDetails with a nil SelectedCar.
	VehicleDetails *VehicleDetails `json:"vehicleDetails,omitempty"`

	// Subtotal and Discount are informational. Authoritative values come from
	// the pricing package and are never read back from here.
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
}

// ProductTypeKey returns the key of the booking's product type, or "" when none is set.
func (b *ProductBooking) ProductTypeKey() string {
	if b.ProductType == nil {
		return ""
	}
	return b.ProductType.Key
}

// SelectedCar returns the chosen car, or nil.
func (b *ProductBooking) SelectedCar() *Car {
	if b.VehicleDetails == nil {
		return nil
	}
	return b.VehicleDetails.SelectedCar
}
