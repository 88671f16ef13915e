package entities

import "time"

// PriceOverride is an operator-set nightly price for a room.
//
// Storage model (DynamoDB):
//   - PK: room_id (one override per room)
//
// AutoPrice keeps the policy price the override superseded, for audit display.
type PriceOverride struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"room_id"`
	CustomPrice float64   `json:"custom_price"`
	AutoPrice   float64   `json:"auto_price"`
	SetAt       time.Time `json:"set_at"`
}
