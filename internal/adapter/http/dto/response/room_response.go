package response

import (
	"time"

	"villa_pricing/internal/domain/entities"
)

type RoomResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	ReferenceRate float64    `json:"reference_rate"`
	MaxOccupancy  int        `json:"max_occupancy"`
	RateUpdatedAt *time.Time `json:"rate_updated_at,omitempty"`
}

func FromRoom(r entities.Room) RoomResponse {
	out := RoomResponse{
		ID:            r.ID,
		Name:          r.Name,
		ReferenceRate: r.ReferenceRate,
		MaxOccupancy:  r.MaxOccupancy,
	}
	if !r.RateUpdatedAt.IsZero() {
		at := r.RateUpdatedAt
		out.RateUpdatedAt = &at
	}
	return out
}

func FromRooms(rooms []entities.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, FromRoom(r))
	}
	return out
}
