package models

// Segment is the value tier a customer is assigned to.
type Segment string

const (
	SegmentVIP      Segment = "VIP"
	SegmentAtRisk   Segment = "At Risk"
	SegmentStandard Segment = "Standard"
)

// Customer is one RFM record. Rows are generated (or loaded) once per
// session and never mutated; Segment is derived separately.
type Customer struct {
	CustomerID int     `json:"customer_id"`
	Recency    int     `json:"recency"`   // days since last purchase
	Frequency  int     `json:"frequency"` // purchases per year
	Monetary   float64 `json:"monetary"`  // total spend, EUR
}

// SegmentedCustomer is a customer row with its derived segment attached.
type SegmentedCustomer struct {
	Customer
	Segment Segment `json:"segment"`
}
