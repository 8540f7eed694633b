package repository

import (
	"context"
	"errors"

	"StorePulse/internal/domain/models"
)

// ErrRuleNotFound is returned when a basket driver key has no catalog entry.
var ErrRuleNotFound = errors.New("basket rule not found")

// DatasetRepository serves the session datasets. Generation is memoized by
// the generation parameter tuple: equal params return the previously
// produced set, with no expiry.
type DatasetRepository interface {
	Customers(ctx context.Context, p CustomerParams) ([]models.Customer, error)
	Forecast(ctx context.Context, p ForecastParams) ([]models.ForecastPoint, error)
	Points(ctx context.Context, p GeoParams) ([]models.GeoPoint, error)
}

// RuleCatalog is the fixed association-rule reference table, keyed by
// driver key. Lookup of an unknown key fails with ErrRuleNotFound.
type RuleCatalog interface {
	Get(driver string) (models.BasketRule, error)
	List() []models.BasketRule
}

type Metrics interface {
	RecordPanelCompute(panel string, seconds float64)
	RecordDatasetCacheHit(dataset string)
	RecordDatasetCacheMiss(dataset string)
	RecordError(kind string)
}
