package panels

import "StorePulse/internal/domain/models"

// ReplenishmentParams control the order plan derived from a forecast.
// BufferPct may be negative (ordering below forecast).
type ReplenishmentParams struct {
	BufferPct         float64 `json:"buffer_pct"`
	UnitCost          float64 `json:"unit_cost"`
	OverstockLossRate float64 `json:"overstock_loss_rate"` // percent of unit cost lost on unsold units, [0,100]
	LostMargin        float64 `json:"lost_margin"`         // margin lost per unit of unmet demand
}

type ReplenishmentResult struct {
	Rows          []models.OrderPoint `json:"rows"`
	TotalOrderQty float64             `json:"total_order_qty"`
	OverstockCost float64             `json:"overstock_cost"`
	StockoutCost  float64             `json:"stockout_cost"`
	TotalRiskCost float64             `json:"total_risk_cost"`
}

// Replenish derives per-date order quantities and the two-sided risk cost.
// Holding the forecast fixed, OverstockCost is non-decreasing in BufferPct
// and StockoutCost is non-increasing.
func Replenish(forecast []models.ForecastPoint, p ReplenishmentParams) ReplenishmentResult {
	rows := make([]models.OrderPoint, 0, len(forecast))
	var res ReplenishmentResult

	for _, f := range forecast {
		orderQty := float64(f.Forecast) * (1 + p.BufferPct/100)
		rows = append(rows, models.OrderPoint{Date: f.Date, Forecast: f.Forecast, OrderQty: orderQty})

		res.TotalOrderQty += orderQty
		if over := orderQty - float64(f.Forecast); over > 0 {
			res.OverstockCost += over * p.UnitCost * (p.OverstockLossRate / 100)
		} else {
			res.StockoutCost += -over * p.LostMargin
		}
	}

	res.Rows = rows
	res.TotalRiskCost = res.OverstockCost + res.StockoutCost
	return res
}
