package response

import (
	"time"

	"villa_pricing/internal/domain/entities"
)

type OverrideResponse struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"room_id"`
	CustomPrice float64   `json:"custom_price"`
	AutoPrice   float64   `json:"auto_price"`
	SetAt       time.Time `json:"set_at"`
}

func FromPriceOverride(o entities.PriceOverride) OverrideResponse {
	return OverrideResponse{
		ID:          o.ID,
		RoomID:      o.RoomID,
		CustomPrice: o.CustomPrice,
		AutoPrice:   o.AutoPrice,
		SetAt:       o.SetAt,
	}
}

type ClearOverrideResponse struct {
	RoomID  string `json:"room_id"`
	Cleared bool   `json:"cleared"`
}
