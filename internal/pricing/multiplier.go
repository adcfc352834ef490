package pricing

import "github.com/mmynk/carwash/internal/models"

// neutralMultiplier applies to sizes missing from the table.
const neutralMultiplier = 1.0

var vehicleSizeMultipliers = map[models.VehicleSize]float64{
	models.VehicleSizeMini:       0.8,
	models.VehicleSizeMellem:     1.0,
	models.VehicleSizeSedan:      1.1,
	models.VehicleSizeStationcar: 1.2,
	models.VehicleSizeSUV:        1.3,
	models.VehicleSizeMPV:        1.3,
	models.VehicleSizeVarevogn:   1.5,
}

// LookupVehicleSize returns the price multiplier of a vehicle size, and false
// for sizes without one.
func LookupVehicleSize(size models.VehicleSize) (float64, bool) {
	m, ok := vehicleSizeMultipliers[size]
	return m, ok
}

// GetVehicleSizeMultiplier returns the price multiplier of a vehicle size.
// Unknown sizes are priced neutrally so a booking stays priceable when size
// data is missing or malformed.
func GetVehicleSizeMultiplier(size models.VehicleSize) float64 {
	if m, ok := LookupVehicleSize(size); ok {
		return m
	}
	return neutralMultiplier
}
