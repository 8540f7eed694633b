package models

// Requests for the panel HTTP endpoints. Defined in domain for consistency
// and reuse. Pointer fields are parameters where zero is a legal value, so
// the default may only apply when the parameter is absent.

type SegmentationRequest struct {
	VIPMonetaryMin  *float64 `query:"vip_monetary_min" json:"vip_monetary_min" default:"3000" validate:"gte=0"`
	VIPFrequencyMin *int     `query:"vip_frequency_min" json:"vip_frequency_min" default:"10" validate:"gte=0"`
	RiskRecencyMin  *int     `query:"risk_recency_min" json:"risk_recency_min" default:"60" validate:"gte=0"`
	RiskValueFloor  *float64 `query:"risk_value_floor" json:"risk_value_floor" default:"800" validate:"gte=0"`
	Count           int      `query:"count" json:"count" default:"1000" validate:"gte=1,lte=100000"`
	Seed            int64    `query:"seed" json:"seed" default:"42"`
}

type ReplenishmentRequest struct {
	BufferPct         *float64 `query:"buffer_pct" json:"buffer_pct" default:"10" validate:"gte=-100,lte=100"`
	UnitCost          *float64 `query:"unit_cost" json:"unit_cost" default:"0.5" validate:"gte=0"`
	OverstockLossRate *float64 `query:"overstock_loss_rate" json:"overstock_loss_rate" default:"100" validate:"gte=0,lte=100"`
	LostMargin        *float64 `query:"lost_margin" json:"lost_margin" default:"2" validate:"gte=0"`
	Start             string   `query:"start" json:"start" default:"2026-01-01" validate:"datetime=2006-01-02"`
	Periods           int      `query:"periods" json:"periods" default:"30" validate:"gte=1,lte=365"`
	Seed              int64    `query:"seed" json:"seed" default:"42"`
}

type BasketRequest struct {
	Driver string `query:"driver" json:"driver" validate:"required"`
}

type PricingRequest struct {
	BasePrice  float64  `query:"base_price" json:"base_price" default:"10" validate:"gt=0"`
	BaseCost   *float64 `query:"base_cost" json:"base_cost" default:"6" validate:"gte=0"`
	BaseDemand float64  `query:"base_demand" json:"base_demand" default:"100" validate:"gt=0"`
	Elasticity *float64 `query:"elasticity" json:"elasticity" default:"-1.5" validate:"gte=-10,lte=10"`
	RangePct   float64  `query:"range_pct" json:"range_pct" default:"0.2" validate:"gt=0,lte=1"`
	Samples    int      `query:"samples" json:"samples" default:"51" validate:"gte=2,lte=1000"`
}

type GeoRequest struct {
	Lat   *float64 `query:"lat" json:"lat" default:"49.1427" validate:"gte=-90,lte=90"`
	Lon   *float64 `query:"lon" json:"lon" default:"9.2109" validate:"gte=-180,lte=180"`
	Count int      `query:"count" json:"count" default:"500" validate:"gte=1,lte=100000"`
	Sigma float64  `query:"sigma" json:"sigma" default:"0.02" validate:"gt=0,lte=10"`
	Seed  int64    `query:"seed" json:"seed" default:"42"`
}
