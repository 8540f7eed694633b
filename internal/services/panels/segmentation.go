package panels

import "StorePulse/internal/domain/models"

// SegmentationParams are the classification thresholds. All must be >= 0;
// the transport layer validates ranges before they reach here.
type SegmentationParams struct {
	VIPMonetaryMin  float64 `json:"vip_monetary_min"`
	VIPFrequencyMin int     `json:"vip_frequency_min"`
	RiskRecencyMin  int     `json:"risk_recency_min"`
	RiskValueFloor  float64 `json:"risk_value_floor"`
}

type SegmentationSummary struct {
	VIPCount            int     `json:"vip_count"`
	AtRiskCount         int     `json:"at_risk_count"`
	AtRiskMonetary      float64 `json:"at_risk_monetary"`
	AtRiskMeanFrequency float64 `json:"at_risk_mean_frequency"`
}

type SegmentationResult struct {
	Rows    []models.SegmentedCustomer `json:"rows"`
	Summary SegmentationSummary        `json:"summary"`
}

// Segment assigns exactly one segment to every customer. The VIP check runs
// first: a customer meeting both the VIP and At-Risk conditions is a VIP.
// With no At-Risk customers the mean frequency is reported as 0; the zero
// AtRiskCount tells the shell it is "no data" rather than a true mean.
func Segment(customers []models.Customer, p SegmentationParams) SegmentationResult {
	rows := make([]models.SegmentedCustomer, 0, len(customers))
	var summary SegmentationSummary
	var atRiskFrequency int

	for _, c := range customers {
		seg := classify(c, p)
		rows = append(rows, models.SegmentedCustomer{Customer: c, Segment: seg})

		switch seg {
		case models.SegmentVIP:
			summary.VIPCount++
		case models.SegmentAtRisk:
			summary.AtRiskCount++
			summary.AtRiskMonetary += c.Monetary
			atRiskFrequency += c.Frequency
		}
	}

	if summary.AtRiskCount > 0 {
		summary.AtRiskMeanFrequency = float64(atRiskFrequency) / float64(summary.AtRiskCount)
	}

	return SegmentationResult{Rows: rows, Summary: summary}
}

func classify(c models.Customer, p SegmentationParams) models.Segment {
	if c.Monetary >= p.VIPMonetaryMin && c.Frequency >= p.VIPFrequencyMin {
		return models.SegmentVIP
	}
	if c.Recency >= p.RiskRecencyMin && c.Monetary >= p.RiskValueFloor {
		return models.SegmentAtRisk
	}
	return models.SegmentStandard
}
