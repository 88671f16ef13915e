package pricing

import (
	"errors"
	"testing"
	"time"

	"villa_pricing/internal/domain/entities"
)

func TestPolicy_ComputePrice_Scenarios(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		name     string
		rate     float64
		lead     int
		tier     entities.DiscountTier
		percent  float64
		final    float64
		savings  float64
	}{
		{name: "entire villa early bird", rate: 431, lead: 35, tier: entities.TierEarlyBird, percent: 15, final: 366, savings: 65},
		{name: "family suite late deal", rate: 119, lead: 2, tier: entities.TierLateDeal, percent: 20, final: 95, savings: 24},
		{name: "triple room standard", rate: 70, lead: 10, tier: entities.TierStandard, percent: 10, final: 63, savings: 7},
		{name: "early bird threshold inclusive", rate: 100, lead: 30, tier: entities.TierEarlyBird, percent: 15, final: 85, savings: 15},
		{name: "late deal threshold inclusive", rate: 100, lead: 3, tier: entities.TierLateDeal, percent: 20, final: 80, savings: 20},
		{name: "same day", rate: 100, lead: 0, tier: entities.TierLateDeal, percent: 20, final: 80, savings: 20},
		{name: "negative lead is not rejected", rate: 100, lead: -2, tier: entities.TierLateDeal, percent: 20, final: 80, savings: 20},
		{name: "just above late deal", rate: 100, lead: 4, tier: entities.TierStandard, percent: 10, final: 90, savings: 10},
		{name: "just below early bird", rate: 100, lead: 29, tier: entities.TierStandard, percent: 10, final: 90, savings: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := p.ComputePrice(tc.rate, tc.lead)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Tier != tc.tier || res.DiscountPercent != tc.percent {
				t.Fatalf("expected %s/%v, got %s/%v", tc.tier, tc.percent, res.Tier, res.DiscountPercent)
			}
			if res.FinalPrice != tc.final {
				t.Fatalf("expected final %v, got %v", tc.final, res.FinalPrice)
			}
			if tc.rate-res.FinalPrice != tc.savings {
				t.Fatalf("expected savings %v, got %v", tc.savings, tc.rate-res.FinalPrice)
			}
		})
	}
}

func TestPolicy_ComputePrice_TierProperties(t *testing.T) {
	p := DefaultPolicy()
	rates := []float64{1, 49.99, 70, 119, 250, 431, 10000}

	for _, r := range rates {
		for lead := -5; lead <= 120; lead++ {
			res, err := p.ComputePrice(r, lead)
			if err != nil {
				t.Fatalf("rate %v lead %d: unexpected error %v", r, lead, err)
			}
			var want entities.DiscountTier
			switch {
			case lead >= p.EarlyBirdThresholdDays:
				want = entities.TierEarlyBird
			case lead <= p.LateDealThresholdDays:
				want = entities.TierLateDeal
			default:
				want = entities.TierStandard
			}
			if res.Tier != want {
				t.Fatalf("rate %v lead %d: expected %s, got %s", r, lead, want, res.Tier)
			}
			if res.FinalPrice > r {
				t.Fatalf("rate %v lead %d: final price %v above reference", r, lead, res.FinalPrice)
			}
		}
	}
}

func TestPolicy_ComputePrice_OverlappingThresholds(t *testing.T) {
	p := DefaultPolicy()
	p.EarlyBirdThresholdDays = 2
	p.LateDealThresholdDays = 5

	if !p.ThresholdsOverlap() {
		t.Fatalf("expected overlap to be reported")
	}
	res, err := p.ComputePrice(100, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Tier != entities.TierEarlyBird {
		t.Fatalf("early bird must win on overlap, got %s", res.Tier)
	}
	res, _ = p.ComputePrice(100, 1)
	if res.Tier != entities.TierLateDeal {
		t.Fatalf("expected late deal below early bird threshold, got %s", res.Tier)
	}
}

func TestPolicy_ComputePrice_InvalidInput(t *testing.T) {
	p := DefaultPolicy()
	for _, r := range []float64{0, -1, 0.4} {
		if _, err := p.ComputePrice(r, 10); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("rate %v: expected ErrInvalidInput, got %v", r, err)
		}
	}
}

func TestPolicy_Validate(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("default policy must be valid: %v", err)
	}

	cases := map[string]func(p *Policy){
		"late deal not above early bird": func(p *Policy) { p.LateDealPercent = 15 },
		"late deal not above base":       func(p *Policy) { p.BasePercent = 25 },
		"percent out of range":           func(p *Policy) { p.MinimumDiscountPercent = 120 },
		"negative percent":               func(p *Policy) { p.BasePercent = -1 },
		"zero early bird threshold":      func(p *Policy) { p.EarlyBirdThresholdDays = 0 },
		"negative late deal threshold":   func(p *Policy) { p.LateDealThresholdDays = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := DefaultPolicy()
			mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidPolicy) {
				t.Fatalf("expected ErrInvalidPolicy, got %v", err)
			}
		})
	}
}

func TestPolicy_MaxOverridePriceAndDirectRate(t *testing.T) {
	p := DefaultPolicy()
	if got := p.MaxOverridePrice(300); got != 285 {
		t.Fatalf("expected 285, got %v", got)
	}
	if got := p.MaxOverridePrice(119); got != 113.05 {
		t.Fatalf("expected 113.05, got %v", got)
	}
	if got := p.MaxOverridePrice(70); got != 66.5 {
		t.Fatalf("expected 66.5, got %v", got)
	}
	// 100.01 * 0.95 = 95.0095 must not round up to 95.01.
	if got := p.MaxOverridePrice(100.01); got != 95 {
		t.Fatalf("expected 95, got %v", got)
	}
	direct, err := p.DirectRate(431)
	if err != nil || direct != 388 {
		t.Fatalf("expected 388, got %v (%v)", direct, err)
	}
	if _, err := p.DirectRate(0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLeadDays(t *testing.T) {
	loc := time.FixedZone("villa", 5*3600+1800)
	today := time.Date(2025, 3, 10, 22, 45, 0, 0, loc)

	cases := []struct {
		name    string
		checkIn time.Time
		want    int
	}{
		{name: "same day earlier hour", checkIn: time.Date(2025, 3, 10, 0, 0, 0, 0, loc), want: 0},
		{name: "tomorrow", checkIn: time.Date(2025, 3, 11, 0, 0, 0, 0, loc), want: 1},
		{name: "yesterday", checkIn: time.Date(2025, 3, 9, 23, 0, 0, 0, loc), want: -1},
		{name: "across month", checkIn: time.Date(2025, 4, 14, 0, 0, 0, 0, loc), want: 35},
		{name: "utc date converted to local", checkIn: time.Date(2025, 3, 11, 20, 0, 0, 0, time.UTC), want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LeadDays(tc.checkIn, today); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
