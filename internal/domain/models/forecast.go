package models

import "time"

// ForecastPoint is one day of demand forecast. Immutable once generated.
type ForecastPoint struct {
	Date     time.Time `json:"date"`
	Forecast int       `json:"forecast"` // units
}

// OrderPoint is a forecast day with the derived order quantity for the
// chosen buffer percentage.
type OrderPoint struct {
	Date     time.Time `json:"date"`
	Forecast int       `json:"forecast"`
	OrderQty float64   `json:"order_qty"`
}
