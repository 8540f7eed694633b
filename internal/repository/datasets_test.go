package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domrepo "StorePulse/internal/domain/repository"
	"StorePulse/pkg/cache"
)

// countingMetrics counts hits and misses per dataset.
type countingMetrics struct {
	hits   map[string]int
	misses map[string]int
	errors map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{
		hits:   make(map[string]int),
		misses: make(map[string]int),
		errors: make(map[string]int),
	}
}

func (m *countingMetrics) RecordPanelCompute(string, float64) {}
func (m *countingMetrics) RecordDatasetCacheHit(dataset string) {
	m.hits[dataset]++
}
func (m *countingMetrics) RecordDatasetCacheMiss(dataset string) {
	m.misses[dataset]++
}
func (m *countingMetrics) RecordError(kind string) {
	m.errors[kind]++
}

func newTestRepo(t *testing.T) (*CachedDatasetRepository, *countingMetrics) {
	t.Helper()
	mc := cache.NewMemoryCache()
	t.Cleanup(func() { _ = mc.Close() })

	m := newCountingMetrics()
	return NewCachedDatasetRepository(mc, m), m
}

func TestCustomersMemoized(t *testing.T) {
	repo, m := newTestRepo(t)
	ctx := context.Background()
	p := domrepo.CustomerParams{Count: 100, Seed: 42}

	first, err := repo.Customers(ctx, p)
	require.NoError(t, err)
	require.Len(t, first, 100)
	assert.Equal(t, 1, m.misses["customers"])
	assert.Equal(t, 0, m.hits["customers"])

	second, err := repo.Customers(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, first, second, "equal params must return the memoized set")
	assert.Equal(t, 1, m.misses["customers"], "no regeneration on the second fetch")
	assert.Equal(t, 1, m.hits["customers"])
}

func TestCustomersKeyedByParams(t *testing.T) {
	repo, m := newTestRepo(t)
	ctx := context.Background()

	a, err := repo.Customers(ctx, domrepo.CustomerParams{Count: 100, Seed: 42})
	require.NoError(t, err)
	b, err := repo.Customers(ctx, domrepo.CustomerParams{Count: 100, Seed: 7})
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "a changed seed is a different dataset")
	assert.Equal(t, 2, m.misses["customers"])
}

func TestForecastMemoized(t *testing.T) {
	repo, m := newTestRepo(t)
	ctx := context.Background()
	p := domrepo.ForecastParams{
		Start:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Periods: 30,
		Seed:    42,
	}

	first, err := repo.Forecast(ctx, p)
	require.NoError(t, err)
	require.Len(t, first, 30)

	second, err := repo.Forecast(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, m.misses["forecast"])
	assert.Equal(t, 1, m.hits["forecast"])
}

func TestPointsMemoized(t *testing.T) {
	repo, m := newTestRepo(t)
	ctx := context.Background()
	p := domrepo.GeoParams{Lat: 49.1427, Lon: 9.2109, Count: 500, Sigma: 0.02, Seed: 42}

	first, err := repo.Points(ctx, p)
	require.NoError(t, err)
	require.Len(t, first, 500)

	second, err := repo.Points(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, m.hits["geo"])
}

func TestCustomersFromCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "customers.csv")
	csv := "customer_id,recency,frequency,monetary\n1000,10,12,3500.00\n1001,70,2,900.00\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	repo, m := newTestRepo(t)
	repo.SetCustomersCSV(path)
	ctx := context.Background()

	rows, err := repo.Customers(ctx, domrepo.CustomerParams{Count: 1000, Seed: 42})
	require.NoError(t, err)
	require.Len(t, rows, 2, "CSV rows win over generation params")
	assert.Equal(t, 1000, rows[0].CustomerID)
	assert.Equal(t, 3500.0, rows[0].Monetary)

	again, err := repo.Customers(ctx, domrepo.CustomerParams{Count: 1000, Seed: 42})
	require.NoError(t, err)
	assert.Equal(t, rows, again)
	assert.Equal(t, 1, m.hits["customers"], "file rows are memoized too")
}

func TestCustomersFromCSVMissingFile(t *testing.T) {
	repo, m := newTestRepo(t)
	repo.SetCustomersCSV(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := repo.Customers(context.Background(), domrepo.CustomerParams{Count: 10, Seed: 1})
	require.Error(t, err)
	assert.Equal(t, 1, m.errors["customers_csv"])
}
