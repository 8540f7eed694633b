package panels

import (
	"github.com/paulmach/orb"

	"StorePulse/internal/domain/models"
)

// GeoSummary frames the point cloud for the shell's map viewport.
type GeoSummary struct {
	Count     int     `json:"count"`
	MinLat    float64 `json:"min_lat"`
	MaxLat    float64 `json:"max_lat"`
	MinLon    float64 `json:"min_lon"`
	MaxLon    float64 `json:"max_lon"`
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
}

type GeoResult struct {
	Points  []models.GeoPoint `json:"points"`
	Summary GeoSummary        `json:"summary"`
}

// Density packages the sampled points with their bounding box and center
// for downstream density rendering. Empty input yields a zero summary.
func Density(points []models.GeoPoint) GeoResult {
	res := GeoResult{Points: points}
	if len(points) == 0 {
		return res
	}

	mp := make(orb.MultiPoint, 0, len(points))
	for _, pt := range points {
		mp = append(mp, orb.Point{pt.Lon, pt.Lat})
	}

	bound := mp.Bound()
	center := bound.Center()
	res.Summary = GeoSummary{
		Count:     len(points),
		MinLat:    bound.Min.Lat(),
		MaxLat:    bound.Max.Lat(),
		MinLon:    bound.Min.Lon(),
		MaxLon:    bound.Max.Lon(),
		CenterLat: center.Lat(),
		CenterLon: center.Lon(),
	}
	return res
}
