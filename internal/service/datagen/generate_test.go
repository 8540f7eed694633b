package datagen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domrepo "StorePulse/internal/domain/repository"
)

func TestCustomersDeterministic(t *testing.T) {
	p := domrepo.CustomerParams{Count: 1000, Seed: 42}

	first := Customers(p)
	second := Customers(p)

	require.Len(t, first, 1000)
	assert.Equal(t, first, second, "same params must reproduce the same rows")

	other := Customers(domrepo.CustomerParams{Count: 1000, Seed: 7})
	assert.NotEqual(t, first, other, "a different seed must change the rows")
}

func TestCustomersRanges(t *testing.T) {
	rows := Customers(domrepo.CustomerParams{Count: 500, Seed: 1})

	for i, c := range rows {
		assert.Equal(t, 1000+i, c.CustomerID)
		assert.GreaterOrEqual(t, c.Recency, 1)
		assert.LessOrEqual(t, c.Recency, 99)
		assert.GreaterOrEqual(t, c.Frequency, 1)
		assert.LessOrEqual(t, c.Frequency, 52)
		assert.GreaterOrEqual(t, c.Monetary, 50.0)
		assert.LessOrEqual(t, c.Monetary, 4999.0)
		assert.Equal(t, c.Monetary, float64(int(c.Monetary)), "monetary is whole euros")
	}
}

func TestForecastShape(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := Forecast(domrepo.ForecastParams{Start: start, Periods: 30, Seed: 42})

	require.Len(t, rows, 30)
	for i, f := range rows {
		assert.Equal(t, start.AddDate(0, 0, i), f.Date)

		wd := f.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			assert.GreaterOrEqual(t, f.Forecast, 130, "weekend day %s", f.Date)
			assert.LessOrEqual(t, f.Forecast, 149, "weekend day %s", f.Date)
		} else {
			assert.GreaterOrEqual(t, f.Forecast, 90, "weekday %s", f.Date)
			assert.LessOrEqual(t, f.Forecast, 109, "weekday %s", f.Date)
		}
	}
}

func TestForecastDeterministic(t *testing.T) {
	p := domrepo.ForecastParams{
		Start:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Periods: 30,
		Seed:    42,
	}
	assert.Equal(t, Forecast(p), Forecast(p))
}

func TestPointsDeterministic(t *testing.T) {
	p := domrepo.GeoParams{Lat: 49.1427, Lon: 9.2109, Count: 500, Sigma: 0.02, Seed: 42}

	first := Points(p)
	second := Points(p)

	require.Len(t, first, 500)
	assert.Equal(t, first, second, "same params must reproduce the same point set")
}

func TestPointsSpread(t *testing.T) {
	p := domrepo.GeoParams{Lat: 49.1427, Lon: 9.2109, Count: 500, Sigma: 0.02, Seed: 42}
	pts := Points(p)

	// Nearly all normal samples fall within 5 sigma of the center.
	for _, pt := range pts {
		assert.InDelta(t, p.Lat, pt.Lat, 5*p.Sigma)
		assert.InDelta(t, p.Lon, pt.Lon, 5*p.Sigma)
	}
}
