package service

import (
	"math"

	"github.com/renzmar06/socialgolf-server/pkg/errs"
)

// BoostEstimate is the deterministic pricing result for a boost
// configuration.
type BoostEstimate struct {
	Impressions     int `json:"impressions"`
	EstimatedClicks int `json:"estimatedClicks"`
	EstimatedSaves  int `json:"estimatedSaves"`
	Cost            int `json:"cost"`
}

// Per-tier base table, anchored at radius=15mi over 3 days.
type boostTier struct {
	basePrice       float64
	baseImpressions int
}

var boostTiers = map[string]boostTier{
	"starter":  {basePrice: 5, baseImpressions: 1000},
	"basic":    {basePrice: 10, baseImpressions: 2500},
	"standard": {basePrice: 25, baseImpressions: 7500},
	"premium":  {basePrice: 50, baseImpressions: 20000},
	"citywide": {basePrice: 100, baseImpressions: 50000},
}

// Reference anchors and engagement ratios.
const (
	baseRadiusMiles   = 15.0
	baseDurationDays  = 3.0
	clickThroughRatio = 0.05
	saveRatio         = 0.02
)

// EstimateBoost prices a boost from tier, radius and duration. Cost
// scales linearly against the 15mi/3d anchor; impressions are the raw
// tier base. Cost and impressions deliberately scale differently here,
// matching the published pricing table.
func EstimateBoost(tier string, radiusMiles, durationDays int) (*BoostEstimate, error) {
	t, ok := boostTiers[tier]
	if !ok {
		return nil, errs.Validationf("unknown boost tier %q", tier)
	}
	if radiusMiles <= 0 {
		return nil, errs.Validationf("radiusMiles must be a positive integer")
	}
	if durationDays <= 0 {
		return nil, errs.Validationf("durationDays must be a positive integer")
	}

	cost := math.Round(t.basePrice * (float64(radiusMiles) / baseRadiusMiles) * (float64(durationDays) / baseDurationDays))
	impressions := t.baseImpressions

	return &BoostEstimate{
		Impressions:     impressions,
		EstimatedClicks: int(math.Round(float64(impressions) * clickThroughRatio)),
		EstimatedSaves:  int(math.Round(float64(impressions) * saveRatio)),
		Cost:            int(cost),
	}, nil
}
