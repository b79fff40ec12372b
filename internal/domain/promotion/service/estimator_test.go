package service

import (
	"testing"

	"github.com/renzmar06/socialgolf-server/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestEstimateBoost(t *testing.T) {
	t.Run("Reference point: basic at 15mi for 3 days", func(t *testing.T) {
		got, err := EstimateBoost("basic", 15, 3)
		assert.NoError(t, err)
		assert.Equal(t, &BoostEstimate{
			Impressions:     2500,
			EstimatedClicks: 125,
			EstimatedSaves:  50,
			Cost:            10,
		}, got)
	})

	t.Run("Cost scales with radius and duration", func(t *testing.T) {
		got, err := EstimateBoost("basic", 30, 6)
		assert.NoError(t, err)
		assert.Equal(t, 40, got.Cost)
		// Impressions stay at the tier base regardless of scaling.
		assert.Equal(t, 2500, got.Impressions)
	})

	t.Run("Fractional costs round to nearest", func(t *testing.T) {
		// starter: 5 * (10/15) * (1/3) = 1.11 -> 1
		got, err := EstimateBoost("starter", 10, 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, got.Cost)
	})

	t.Run("All tiers priced at the anchor", func(t *testing.T) {
		expected := map[string]int{
			"starter":  5,
			"basic":    10,
			"standard": 25,
			"premium":  50,
			"citywide": 100,
		}
		for tier, cost := range expected {
			got, err := EstimateBoost(tier, 15, 3)
			assert.NoError(t, err)
			assert.Equal(t, cost, got.Cost, tier)
		}
	})

	t.Run("Unknown tier fails validation", func(t *testing.T) {
		_, err := EstimateBoost("platinum", 15, 3)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Non-positive radius or duration fails validation", func(t *testing.T) {
		_, err := EstimateBoost("basic", 0, 3)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = EstimateBoost("basic", 15, -1)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
