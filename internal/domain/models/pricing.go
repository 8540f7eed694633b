package models

// PricePoint is one sample of the simulated demand curve. Ephemeral,
// recomputed fully on every parameter change.
type PricePoint struct {
	Price  float64 `json:"price"`
	Demand float64 `json:"demand"`
	Profit float64 `json:"profit"`
}
