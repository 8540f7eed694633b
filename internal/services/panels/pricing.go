package panels

import (
	"math"

	"StorePulse/internal/domain/models"
)

// PricingParams drive the constant-elasticity demand simulation.
// RangePct is the half-width of the sampled relative price change
// (0.2 samples -20%..+20%). Elasticity is conventionally negative but any
// real value is simulated; zero yields constant demand and a boundary
// optimum, which is reported as-is.
type PricingParams struct {
	BasePrice  float64
	BaseCost   float64
	BaseDemand float64
	Elasticity float64
	RangePct   float64
	Samples    int
}

type PricingResult struct {
	Points     []models.PricePoint `json:"points"`
	BestIndex  int                 `json:"best_index"`
	BestPrice  float64             `json:"best_price"`
	BestProfit float64             `json:"best_profit"`
}

// SimulatePricing samples the demand curve over the price range and locates
// the profit maximum (first sample wins ties). Demand follows
// Q = Q0 * (P/P0)^e, which stays non-negative for any real e. Negative
// profit is a valid outcome, not an error.
func SimulatePricing(p PricingParams) PricingResult {
	n := p.Samples
	if n < 1 {
		n = 1
	}

	points := make([]models.PricePoint, 0, n)
	bestIdx := 0
	for i := 0; i < n; i++ {
		r := -p.RangePct
		if n > 1 {
			r += 2 * p.RangePct * float64(i) / float64(n-1)
		}
		price := p.BasePrice * (1 + r)
		demand := p.BaseDemand * math.Pow(price/p.BasePrice, p.Elasticity)
		profit := (price - p.BaseCost) * demand
		points = append(points, models.PricePoint{Price: price, Demand: demand, Profit: profit})

		if profit > points[bestIdx].Profit {
			bestIdx = i
		}
	}

	return PricingResult{
		Points:     points,
		BestIndex:  bestIdx,
		BestPrice:  points[bestIdx].Price,
		BestProfit: points[bestIdx].Profit,
	}
}
