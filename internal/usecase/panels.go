package usecase

import (
	"context"
	"time"

	"StorePulse/internal/domain/models"
	domrepo "StorePulse/internal/domain/repository"
	"StorePulse/internal/services/panels"
	"StorePulse/pkg/util"
)

// PanelService orchestrates the dashboard panels: it resolves the dataset
// for a request (memoized by generation params), runs the pure panel
// computation and records metrics. Panels are independent; nothing here
// carries state between calls.
type PanelService struct {
	datasets domrepo.DatasetRepository
	rules    domrepo.RuleCatalog
	metrics  domrepo.Metrics
}

func NewPanelService(datasets domrepo.DatasetRepository, rules domrepo.RuleCatalog, metrics domrepo.Metrics) *PanelService {
	return &PanelService{datasets: datasets, rules: rules, metrics: metrics}
}

// SegmentationView is the segmentation panel payload: the thresholds that
// produced it plus the classified rows and aggregates.
type SegmentationView struct {
	Thresholds panels.SegmentationParams `json:"thresholds"`
	panels.SegmentationResult
}

// ReplenishmentView is the replenishment panel payload.
type ReplenishmentView struct {
	Params panels.ReplenishmentParams `json:"params"`
	panels.ReplenishmentResult
}

// Segmentation classifies the session's customers under the request thresholds.
func (s *PanelService) Segmentation(ctx context.Context, req *models.SegmentationRequest) (*SegmentationView, error) {
	start := time.Now()

	customers, err := s.datasets.Customers(ctx, domrepo.CustomerParams{Count: req.Count, Seed: req.Seed})
	if err != nil {
		s.metrics.RecordError("segmentation")
		return nil, err
	}

	p := panels.SegmentationParams{
		VIPMonetaryMin:  *req.VIPMonetaryMin,
		VIPFrequencyMin: *req.VIPFrequencyMin,
		RiskRecencyMin:  *req.RiskRecencyMin,
		RiskValueFloor:  *req.RiskValueFloor,
	}
	res := panels.Segment(customers, p)

	s.metrics.RecordPanelCompute("segmentation", time.Since(start).Seconds())
	return &SegmentationView{Thresholds: p, SegmentationResult: res}, nil
}

// Replenishment derives the order plan and risk costs for the session's forecast.
func (s *PanelService) Replenishment(ctx context.Context, req *models.ReplenishmentRequest) (*ReplenishmentView, error) {
	start := time.Now()

	startDate := util.ParseDateDefault(req.Start, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	forecast, err := s.datasets.Forecast(ctx, domrepo.ForecastParams{
		Start:   startDate,
		Periods: req.Periods,
		Seed:    req.Seed,
	})
	if err != nil {
		s.metrics.RecordError("replenishment")
		return nil, err
	}

	p := panels.ReplenishmentParams{
		BufferPct:         *req.BufferPct,
		UnitCost:          *req.UnitCost,
		OverstockLossRate: *req.OverstockLossRate,
		LostMargin:        *req.LostMargin,
	}
	res := panels.Replenish(forecast, p)

	s.metrics.RecordPanelCompute("replenishment", time.Since(start).Seconds())
	return &ReplenishmentView{Params: p, ReplenishmentResult: res}, nil
}

// Basket evaluates the rule for one driver key. An unknown key fails with
// repository.ErrRuleNotFound, which the transport layer maps to a 404.
func (s *PanelService) Basket(ctx context.Context, req *models.BasketRequest) (*panels.BasketResult, error) {
	start := time.Now()

	rule, err := s.rules.Get(req.Driver)
	if err != nil {
		s.metrics.RecordError("basket")
		return nil, err
	}
	res := panels.EvaluateRule(rule)

	s.metrics.RecordPanelCompute("basket", time.Since(start).Seconds())
	return &res, nil
}

// Rules lists the catalog so the shell can offer only valid driver keys.
func (s *PanelService) Rules(context.Context) []models.BasketRule {
	return s.rules.List()
}

// Pricing simulates the demand curve and finds the profit optimum.
func (s *PanelService) Pricing(_ context.Context, req *models.PricingRequest) *panels.PricingResult {
	start := time.Now()

	res := panels.SimulatePricing(panels.PricingParams{
		BasePrice:  req.BasePrice,
		BaseCost:   *req.BaseCost,
		BaseDemand: req.BaseDemand,
		Elasticity: *req.Elasticity,
		RangePct:   req.RangePct,
		Samples:    req.Samples,
	})

	s.metrics.RecordPanelCompute("pricing", time.Since(start).Seconds())
	return &res
}

// Geo returns the session's point cloud framed for density rendering.
func (s *PanelService) Geo(ctx context.Context, req *models.GeoRequest) (*panels.GeoResult, error) {
	start := time.Now()

	points, err := s.datasets.Points(ctx, domrepo.GeoParams{
		Lat:   *req.Lat,
		Lon:   *req.Lon,
		Count: req.Count,
		Sigma: req.Sigma,
		Seed:  req.Seed,
	})
	if err != nil {
		s.metrics.RecordError("geo")
		return nil, err
	}
	res := panels.Density(points)

	s.metrics.RecordPanelCompute("geo", time.Since(start).Seconds())
	return &res, nil
}
