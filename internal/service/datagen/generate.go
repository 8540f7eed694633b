// Package datagen produces the session datasets. Every generator is a pure
// function of its parameter tuple: the seed is explicit, nothing touches the
// process-wide random state, and equal params reproduce identical rows.
package datagen

import (
	"math"
	"math/rand"
	"time"

	"StorePulse/internal/domain/models"
	domrepo "StorePulse/internal/domain/repository"
)

const (
	customerIDBase = 1000

	// Daily demand baseline with the weekend uplift applied on Sat/Sun.
	baseForecastUnits = 100
	weekendUplift     = 1.4
)

// Customers generates p.Count RFM rows. IDs ascend from customerIDBase;
// Recency is 1..99 days, Frequency 1..52 purchases, Monetary 50..4999 whole
// euros.
func Customers(p domrepo.CustomerParams) []models.Customer {
	r := rand.New(rand.NewSource(p.Seed))
	rows := make([]models.Customer, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		rows = append(rows, models.Customer{
			CustomerID: customerIDBase + i,
			Recency:    1 + r.Intn(99),
			Frequency:  1 + r.Intn(52),
			Monetary:   float64(50 + r.Intn(4950)),
		})
	}
	return rows
}

// Forecast generates p.Periods consecutive daily points starting at p.Start.
// Each day is the baseline times the weekend uplift, plus integer noise in
// -10..9.
func Forecast(p domrepo.ForecastParams) []models.ForecastPoint {
	r := rand.New(rand.NewSource(p.Seed))
	rows := make([]models.ForecastPoint, 0, p.Periods)
	for i := 0; i < p.Periods; i++ {
		d := p.Start.AddDate(0, 0, i)
		uplift := 1.0
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			uplift = weekendUplift
		}
		noise := r.Intn(20) - 10
		rows = append(rows, models.ForecastPoint{
			Date:     d,
			Forecast: int(math.Round(baseForecastUnits*uplift)) + noise,
		})
	}
	return rows
}

// Points draws p.Count samples normally distributed around the center, all
// latitudes first and then all longitudes from the same source, so the
// draw order is part of the contract.
func Points(p domrepo.GeoParams) []models.GeoPoint {
	r := rand.New(rand.NewSource(p.Seed))
	lats := make([]float64, p.Count)
	for i := range lats {
		lats[i] = p.Lat + r.NormFloat64()*p.Sigma
	}
	pts := make([]models.GeoPoint, p.Count)
	for i := range pts {
		pts[i] = models.GeoPoint{Lat: lats[i], Lon: p.Lon + r.NormFloat64()*p.Sigma}
	}
	return pts
}
