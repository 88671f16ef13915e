package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"villa_pricing/internal/domain/entities"
)

var (
	ErrInvalidInput  = errors.New("pricing: reference rate and prices must be positive")
	ErrInvalidPolicy = errors.New("pricing: invalid discount policy")
)

// Policy holds the lead-time tiers that turn a reference rate into a direct price.
// Percents are 0..100.
type Policy struct {
	EarlyBirdThresholdDays int
	LateDealThresholdDays  int
	EarlyBirdPercent       float64
	LateDealPercent        float64
	BasePercent            float64
	// MinimumDiscountPercent is the floor every override must stay under.
	MinimumDiscountPercent float64
}

// Result is the outcome of ComputePrice.
type Result struct {
	Tier            entities.DiscountTier
	DiscountPercent float64
	FinalPrice      float64
}

func DefaultPolicy() Policy {
	return Policy{
		EarlyBirdThresholdDays: 30,
		LateDealThresholdDays:  3,
		EarlyBirdPercent:       15,
		LateDealPercent:        20,
		BasePercent:            10,
		MinimumDiscountPercent: 5,
	}
}

// Validate checks percent ranges and that the late deal undercuts every other tier.
func (p Policy) Validate() error {
	for name, pct := range map[string]float64{
		"early_bird_percent":       p.EarlyBirdPercent,
		"late_deal_percent":        p.LateDealPercent,
		"base_percent":             p.BasePercent,
		"minimum_discount_percent": p.MinimumDiscountPercent,
	} {
		if pct < 0 || pct >= 100 {
			return fmt.Errorf("%w: %s must be in [0, 100), got %v", ErrInvalidPolicy, name, pct)
		}
	}
	if p.EarlyBirdThresholdDays <= 0 {
		return fmt.Errorf("%w: early_bird_threshold_days must be positive", ErrInvalidPolicy)
	}
	if p.LateDealThresholdDays < 0 {
		return fmt.Errorf("%w: late_deal_threshold_days must not be negative", ErrInvalidPolicy)
	}
	if p.LateDealPercent <= p.EarlyBirdPercent || p.LateDealPercent <= p.BasePercent {
		return fmt.Errorf("%w: late_deal_percent must be greater than early_bird_percent and base_percent", ErrInvalidPolicy)
	}
	return nil
}

// ThresholdsOverlap reports a lead time range matched by both the early bird
// and the late deal rule. Early bird wins there.
func (p Policy) ThresholdsOverlap() bool {
	return p.EarlyBirdThresholdDays <= p.LateDealThresholdDays
}

// ComputePrice maps a reference rate and a lead time to a tier and a final
// price rounded to whole currency units. Negative lead times are not rejected.
func (p Policy) ComputePrice(referenceRate float64, leadDays int) (Result, error) {
	if referenceRate <= 0 || math.IsNaN(referenceRate) || math.IsInf(referenceRate, 0) {
		return Result{}, ErrInvalidInput
	}

	var res Result
	switch {
	case leadDays >= p.EarlyBirdThresholdDays:
		res.Tier, res.DiscountPercent = entities.TierEarlyBird, p.EarlyBirdPercent
	case leadDays <= p.LateDealThresholdDays:
		res.Tier, res.DiscountPercent = entities.TierLateDeal, p.LateDealPercent
	default:
		res.Tier, res.DiscountPercent = entities.TierStandard, p.BasePercent
	}
	res.FinalPrice = math.Round(referenceRate * (100 - res.DiscountPercent) / 100)
	// Rates too small to survive whole-unit rounding cannot be quoted.
	if res.FinalPrice <= 0 {
		return Result{}, ErrInvalidInput
	}
	return res, nil
}

// MaxOverridePrice is the highest custom price allowed for a reference rate,
// rounded down to cents so it never exceeds the exact bound.
func (p Policy) MaxOverridePrice(referenceRate float64) float64 {
	return FloorCents(referenceRate * (100 - p.MinimumDiscountPercent) / 100)
}

// DirectRate is the standard book-direct price advertised against the reference rate.
func (p Policy) DirectRate(referenceRate float64) (float64, error) {
	if referenceRate <= 0 {
		return 0, ErrInvalidInput
	}
	return math.Round(referenceRate * (100 - p.BasePercent) / 100), nil
}

// LeadDays counts whole calendar days from today to checkIn, both taken in
// today's location. It is negative for past dates.
func LeadDays(checkIn, today time.Time) int {
	checkIn = checkIn.In(today.Location())
	a := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FloorCents truncates to cents. The epsilon absorbs float noise such as
// 66.49999999999999 for an exact 66.50.
func FloorCents(v float64) float64 {
	return math.Floor(v*100+1e-6) / 100
}
