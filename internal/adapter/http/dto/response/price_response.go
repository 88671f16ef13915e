package response

import (
	"villa_pricing/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type PriceQuoteResponse struct {
	RoomID          string  `json:"room_id"`
	CheckIn         string  `json:"check_in"`
	LeadDays        int     `json:"lead_days"`
	ReferenceRate   float64 `json:"reference_rate"`
	FinalPrice      float64 `json:"final_price"`
	Tier            string  `json:"tier"`
	DiscountPercent float64 `json:"discount_percent"`
	Savings         float64 `json:"savings"`
	IsOverride      bool    `json:"is_override"`
}

func FromPriceQuote(q entities.PriceQuote) PriceQuoteResponse {
	return PriceQuoteResponse{
		RoomID:          q.RoomID,
		CheckIn:         q.CheckIn.Format(dateLayout),
		LeadDays:        q.LeadDays,
		ReferenceRate:   q.ReferenceRate,
		FinalPrice:      q.FinalPrice,
		Tier:            string(q.Tier),
		DiscountPercent: q.DiscountPercent,
		Savings:         q.Savings,
		IsOverride:      q.IsOverride,
	}
}

func FromPriceQuotes(quotes []entities.PriceQuote) []PriceQuoteResponse {
	out := make([]PriceQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromPriceQuote(q))
	}
	return out
}

type RateComparisonResponse struct {
	RoomID          string  `json:"room_id"`
	ReferenceRate   float64 `json:"reference_rate"`
	DirectRate      float64 `json:"direct_rate"`
	Savings         float64 `json:"savings"`
	DiscountPercent float64 `json:"discount_percent"`
}

func FromRateComparison(rc entities.RateComparison) RateComparisonResponse {
	return RateComparisonResponse(rc)
}
