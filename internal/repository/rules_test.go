package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domrepo "StorePulse/internal/domain/repository"
)

func TestStaticRuleCatalogGet(t *testing.T) {
	c := NewStaticRuleCatalog()

	rule, err := c.Get("beer")
	require.NoError(t, err)
	assert.Equal(t, "Beer", rule.Driver)
	assert.Equal(t, "Chips", rule.Target)
	assert.Equal(t, 5.0, rule.Lift)
	assert.Equal(t, 0.10, rule.DriverMargin)
	assert.Equal(t, 0.70, rule.TargetMargin)
}

func TestStaticRuleCatalogUnknownKey(t *testing.T) {
	c := NewStaticRuleCatalog()

	_, err := c.Get("caviar")
	require.Error(t, err)
	assert.ErrorIs(t, err, domrepo.ErrRuleNotFound)
	assert.Contains(t, err.Error(), "caviar", "the offending key must be surfaced verbatim")
}

func TestStaticRuleCatalogList(t *testing.T) {
	c := NewStaticRuleCatalog()

	rules := c.List()
	require.Len(t, rules, 3)

	keys := make([]string, 0, len(rules))
	for _, r := range rules {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []string{"beer", "milk", "diapers"}, keys, "catalog order is stable")

	// Listing again returns the same order.
	assert.Equal(t, rules, c.List())
}
