package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StorePulse/internal/domain/models"
)

func TestEvaluateRuleLossLeader(t *testing.T) {
	rule := models.BasketRule{
		Key:          "beer",
		Driver:       "Beer",
		Target:       "Chips",
		Lift:         5.0,
		DriverMargin: 0.10,
		TargetMargin: 0.70,
	}

	res := EvaluateRule(rule)

	assert.Equal(t, StrategyLossLeader, res.Strategy)
	assert.Equal(t, 0.10+0.70, res.TotalMargin)
	assert.InDelta(t, 700.0, res.MarginBoostPct, 1e-9)

	assert.Contains(t, res.Recommendation, "Beer")
	assert.Contains(t, res.Recommendation, "Chips")
	assert.Contains(t, res.Recommendation, "5.0x")
	assert.Contains(t, res.Recommendation, "€0.10")
	assert.Contains(t, res.Recommendation, "€0.70")
}

func TestEvaluateRuleBundle(t *testing.T) {
	rule := models.BasketRule{
		Key:          "diapers",
		Driver:       "Diapers",
		Target:       "Beer",
		Lift:         3.5,
		DriverMargin: 2.00,
		TargetMargin: 0.50,
	}

	res := EvaluateRule(rule)

	assert.Equal(t, StrategyBundle, res.Strategy)
	assert.Equal(t, 2.50, res.TotalMargin)
	assert.Contains(t, res.Recommendation, "Diapers")
	assert.Contains(t, res.Recommendation, "Beer")
	assert.Contains(t, res.Recommendation, "3.5x")
	assert.Contains(t, res.Recommendation, "€2.00")
	assert.Contains(t, res.Recommendation, "€0.50")
}

func TestEvaluateRuleStrategyIsTwoBranch(t *testing.T) {
	tests := []struct {
		name   string
		driver float64
		target float64
		want   Strategy
	}{
		{"driver below target", 0.05, 0.35, StrategyLossLeader},
		{"driver above target", 2.00, 0.50, StrategyBundle},
		{"equal margins bundle", 1.00, 1.00, StrategyBundle},
		{"zero driver margin", 0, 0.10, StrategyLossLeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := EvaluateRule(models.BasketRule{
				Driver:       "A",
				Target:       "B",
				Lift:         2.0,
				DriverMargin: tt.driver,
				TargetMargin: tt.target,
			})
			assert.Equal(t, tt.want, res.Strategy)
			assert.Equal(t, tt.driver+tt.target, res.TotalMargin)
		})
	}
}

func TestEvaluateRuleZeroDriverMarginBoost(t *testing.T) {
	res := EvaluateRule(models.BasketRule{Driver: "A", Target: "B", TargetMargin: 0.5})
	assert.Equal(t, 0.0, res.MarginBoostPct, "zero driver margin reports boost 0, not +Inf")
}
