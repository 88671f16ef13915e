package entities

import "time"

// PriceQuote is the effective direct-booking price of a room for a check-in date.
type PriceQuote struct {
	RoomID          string       `json:"room_id"`
	CheckIn         time.Time    `json:"check_in"`
	LeadDays        int          `json:"lead_days"`
	ReferenceRate   float64      `json:"reference_rate"`
	FinalPrice      float64      `json:"final_price"`
	Tier            DiscountTier `json:"tier"`
	DiscountPercent float64      `json:"discount_percent"`
	Savings         float64      `json:"savings"`
	IsOverride      bool         `json:"is_override"`
}

// RateComparison is the "book direct and save" figure shown on marketing pages.
type RateComparison struct {
	RoomID          string  `json:"room_id"`
	ReferenceRate   float64 `json:"reference_rate"`
	DirectRate      float64 `json:"direct_rate"`
	Savings         float64 `json:"savings"`
	DiscountPercent float64 `json:"discount_percent"`
}
