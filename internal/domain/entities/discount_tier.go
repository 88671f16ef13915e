package entities

// DiscountTier is the bracket a quote falls in. It is derived per query and never stored.
type DiscountTier string

const (
	TierEarlyBird DiscountTier = "early-bird"
	TierLateDeal  DiscountTier = "late-deal"
	TierStandard  DiscountTier = "standard"
	// TierCustom labels quotes served from an operator override.
	TierCustom DiscountTier = "custom"
)
