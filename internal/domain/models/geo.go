package models

// GeoPoint is one customer location sample for density rendering.
// Coordinates are not validated against real-world bounds.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
