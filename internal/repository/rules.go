package repository

import (
	"fmt"

	"StorePulse/internal/domain/models"
	domrepo "StorePulse/internal/domain/repository"
)

// StaticRuleCatalog is the fixed association-rule reference table. The
// catalog is immutable; entries are defined at construction and never change.
type StaticRuleCatalog struct {
	rules map[string]models.BasketRule
	keys  []string
}

// NewStaticRuleCatalog builds the shipped rule table. Margins are per unit.
func NewStaticRuleCatalog() *StaticRuleCatalog {
	rules := []models.BasketRule{
		{
			Key:          "beer",
			Driver:       "Beer",
			Target:       "Chips",
			Support:      0.12,
			Confidence:   0.65,
			Lift:         5.0,
			DriverMargin: 0.10,
			TargetMargin: 0.70,
			Description:  "Weekend party combo",
		},
		{
			Key:          "milk",
			Driver:       "Milk",
			Target:       "Bread",
			Support:      0.30,
			Confidence:   0.55,
			Lift:         1.8,
			DriverMargin: 0.05,
			TargetMargin: 0.35,
			Description:  "Daily breakfast staple",
		},
		{
			Key:          "diapers",
			Driver:       "Diapers",
			Target:       "Beer",
			Support:      0.08,
			Confidence:   0.45,
			Lift:         3.5,
			DriverMargin: 2.00,
			TargetMargin: 0.50,
			Description:  "New-parent basket",
		},
	}

	c := &StaticRuleCatalog{
		rules: make(map[string]models.BasketRule, len(rules)),
		keys:  make([]string, 0, len(rules)),
	}
	for _, r := range rules {
		c.rules[r.Key] = r
		c.keys = append(c.keys, r.Key)
	}
	return c
}

// Get returns the rule for a driver key. Unknown keys fail with
// ErrRuleNotFound; the key is carried in the error message.
func (c *StaticRuleCatalog) Get(driver string) (models.BasketRule, error) {
	rule, ok := c.rules[driver]
	if !ok {
		return models.BasketRule{}, fmt.Errorf("%w: %q", domrepo.ErrRuleNotFound, driver)
	}
	return rule, nil
}

// List returns all rules in catalog order.
func (c *StaticRuleCatalog) List() []models.BasketRule {
	out := make([]models.BasketRule, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.rules[k])
	}
	return out
}
