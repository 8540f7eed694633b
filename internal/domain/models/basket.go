package models

// BasketRule is one mined association rule from the static catalog.
// Margins are per unit, EUR.
type BasketRule struct {
	Key          string  `json:"key"` // catalog lookup key for the driver
	Driver       string  `json:"driver"`
	Target       string  `json:"target"`
	Support      float64 `json:"support"`
	Confidence   float64 `json:"confidence"`
	Lift         float64 `json:"lift"`
	DriverMargin float64 `json:"driver_margin"`
	TargetMargin float64 `json:"target_margin"`
	Description  string  `json:"description"`
}
