package repository

import "time"

// Generation parameter tuples. Each tuple fully determines its dataset:
// same params, same rows. The tuples double as memoization keys.

type CustomerParams struct {
	Count int
	Seed  int64
}

type ForecastParams struct {
	Start   time.Time
	Periods int
	Seed    int64
}

type GeoParams struct {
	Lat   float64
	Lon   float64
	Count int
	Sigma float64
	Seed  int64
}
