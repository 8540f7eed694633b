package panels

import (
	"fmt"

	"StorePulse/internal/domain/models"
	"StorePulse/pkg/util"
)

// Strategy is the cross-sell recommendation for a rule. Exactly two exist.
type Strategy string

const (
	StrategyLossLeader Strategy = "Loss Leader"
	StrategyBundle     Strategy = "Bundle"
)

type BasketResult struct {
	Rule           models.BasketRule `json:"rule"`
	TotalMargin    float64           `json:"total_margin"`
	MarginBoostPct float64           `json:"margin_boost_pct"`
	Strategy       Strategy          `json:"strategy"`
	Recommendation string            `json:"recommendation"`
}

// EvaluateRule derives the combined basket economics for one rule.
// Strategy is "Loss Leader" iff the driver margin is strictly below the
// target margin, else "Bundle". MarginBoostPct is the target margin as a
// percentage of the driver margin, 0 when the driver margin is zero.
func EvaluateRule(rule models.BasketRule) BasketResult {
	res := BasketResult{
		Rule:        rule,
		TotalMargin: rule.DriverMargin + rule.TargetMargin,
	}
	if rule.DriverMargin > 0 {
		res.MarginBoostPct = rule.TargetMargin / rule.DriverMargin * 100
	}

	if rule.DriverMargin < rule.TargetMargin {
		res.Strategy = StrategyLossLeader
		res.Recommendation = fmt.Sprintf(
			"Promote %s at or near cost to pull traffic: its own margin is only %s, "+
				"but buyers take %s with it %.1fx more often than chance, adding %s margin per basket.",
			rule.Driver, util.FormatEuro(rule.DriverMargin), rule.Target, rule.Lift,
			util.FormatEuro(rule.TargetMargin),
		)
	} else {
		res.Strategy = StrategyBundle
		res.Recommendation = fmt.Sprintf(
			"Bundle %s with %s or co-locate them on the floor: both margins are healthy "+
				"(%s and %s) and the pair co-occurs %.1fx more often than chance.",
			rule.Driver, rule.Target, util.FormatEuro(rule.DriverMargin),
			util.FormatEuro(rule.TargetMargin), rule.Lift,
		)
	}

	return res
}
