// Package models defines the core domain models for the car-cleaning booking service.
//
// # Catalog Models
//
// Reference data that describes what can be bought. Catalog values are never
// mutated at runtime:
//   - ProductType: top-level category of item being serviced (car, baby-trolley, ...)
//   - MainProduct: the base service for a product type (e.g. "Hele bilen")
//   - Addon: optional extra, either a flat-price toggle or a per-unit quantity
//
// # Cart Models
//
// Transient state built by the booking wizard and recomputed per request:
//   - AddonSelection: an Addon plus the customer's selection and quantity
//   - ProductBooking: one cart line, one physical item to be serviced
//   - VehicleDetails / Car: the selected car and its size category
//
// # Pricing Output
//
//   - LineItem: a display-ready row of the order summary
//   - PricingSummary: line items plus subtotal, discount, total and VAT
//   - Quote: a submitted cart, priced server-side and persisted
//
// # Design Principles
//
// 1. **Whole kroner**: all prices are int64 amounts in DKK, no øre subdivision
// 2. **Avoid circular references**: bookings reference catalog entries by value or pointer,
// catalog entries reference product types by key
// 3. **Nil means absent**: a nil pointer field (MainProduct, VehicleDetails, Addon.Price)
// distinguishes "not chosen" or "not configured" from a zero value
package models
