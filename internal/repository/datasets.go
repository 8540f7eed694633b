package repository

import (
	"context"
	"errors"

	"StorePulse/internal/domain/models"
	domrepo "StorePulse/internal/domain/repository"
	"StorePulse/internal/service/datagen"
	"StorePulse/pkg/cache"
	"StorePulse/pkg/logger"
	"StorePulse/pkg/util"
)

// CachedDatasetRepository serves the session datasets, memoizing each
// generated set under its generation parameter tuple. Entries are stored
// without a TTL: a set lives until the parameters change or the process
// ends. That is deliberate — generation is deterministic, so an entry can
// never go stale.
type CachedDatasetRepository struct {
	cache   cache.Service
	metrics domrepo.Metrics
	logger  *logger.Logger

	// When set, customer rows come from this CSV instead of the generator.
	customersCSV string
}

// NewCachedDatasetRepository creates a dataset repository over a cache backend.
func NewCachedDatasetRepository(c cache.Service, m domrepo.Metrics) *CachedDatasetRepository {
	return &CachedDatasetRepository{cache: c, metrics: m}
}

// SetLogger injects a structured logger.
func (r *CachedDatasetRepository) SetLogger(l *logger.Logger) { r.logger = l }

// SetCustomersCSV switches the customer dataset to a CSV source.
func (r *CachedDatasetRepository) SetCustomersCSV(path string) { r.customersCSV = path }

// Customers returns the customer RFM rows for the given generation params.
// With a CSV source configured the params are ignored and the file rows are
// served (and memoized under the file path).
func (r *CachedDatasetRepository) Customers(ctx context.Context, p domrepo.CustomerParams) ([]models.Customer, error) {
	if r.customersCSV != "" {
		return r.customersFromCSV(ctx)
	}

	key := cache.GenerateKeyWithParams("dataset:customers", p.Count, p.Seed)
	var rows []models.Customer
	if ok := r.lookup(ctx, "customers", key, &rows); ok {
		return rows, nil
	}

	rows = datagen.Customers(p)
	r.store(ctx, key, rows)
	return rows, nil
}

// Forecast returns the daily demand forecast for the given generation params.
func (r *CachedDatasetRepository) Forecast(ctx context.Context, p domrepo.ForecastParams) ([]models.ForecastPoint, error) {
	key := cache.GenerateKeyWithParams("dataset:forecast", util.FormatDate(p.Start), p.Periods, p.Seed)
	var rows []models.ForecastPoint
	if ok := r.lookup(ctx, "forecast", key, &rows); ok {
		return rows, nil
	}

	rows = datagen.Forecast(p)
	r.store(ctx, key, rows)
	return rows, nil
}

// Points returns the geo point cloud for the given generation params.
func (r *CachedDatasetRepository) Points(ctx context.Context, p domrepo.GeoParams) ([]models.GeoPoint, error) {
	key := cache.GenerateKeyWithParams("dataset:geo", p.Lat, p.Lon, p.Count, p.Sigma, p.Seed)
	var rows []models.GeoPoint
	if ok := r.lookup(ctx, "geo", key, &rows); ok {
		return rows, nil
	}

	rows = datagen.Points(p)
	r.store(ctx, key, rows)
	return rows, nil
}

func (r *CachedDatasetRepository) customersFromCSV(ctx context.Context) ([]models.Customer, error) {
	key := cache.GenerateKeyWithParams("dataset:customers:csv", r.customersCSV)
	var rows []models.Customer
	if ok := r.lookup(ctx, "customers", key, &rows); ok {
		return rows, nil
	}

	rows, err := datagen.LoadCustomersCSV(r.customersCSV)
	if err != nil {
		r.metrics.RecordError("customers_csv")
		return nil, err
	}
	r.store(ctx, key, rows)
	return rows, nil
}

// lookup reads a memoized dataset into dest and records hit/miss.
func (r *CachedDatasetRepository) lookup(ctx context.Context, dataset, key string, dest interface{}) bool {
	err := r.cache.Get(ctx, key, dest)
	if err == nil {
		r.metrics.RecordDatasetCacheHit(dataset)
		return true
	}
	if !errors.Is(err, cache.ErrCacheMiss) && r.logger != nil {
		r.logger.Warn("dataset cache get failed", logger.String("key", key), logger.Error(err))
	}
	r.metrics.RecordDatasetCacheMiss(dataset)
	return false
}

// store memoizes a dataset with no expiry. A failed write only costs a
// regeneration on the next request.
func (r *CachedDatasetRepository) store(ctx context.Context, key string, rows interface{}) {
	if err := r.cache.Set(ctx, key, rows, 0); err != nil && r.logger != nil {
		r.logger.Warn("dataset cache set failed", logger.String("key", key), logger.Error(err))
	}
}
