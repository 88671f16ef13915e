package entities

import "time"

// Room is a bookable unit of the villa.
//
// ReferenceRate is the nightly third-party marketplace rate the direct price is
// discounted from. It is only changed by the rate sync process.
type Room struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ReferenceRate float64   `json:"reference_rate"`
	MaxOccupancy  int       `json:"max_occupancy"`
	RateUpdatedAt time.Time `json:"rate_updated_at"`
}

// DefaultRooms is the catalog seeded into an empty store.
func DefaultRooms() []Room {
	return []Room{
		{ID: "knp", Name: "Entire Villa", ReferenceRate: 431, MaxOccupancy: 18},
		{ID: "knp1", Name: "Master Family Suite", ReferenceRate: 119, MaxOccupancy: 4},
		{ID: "knp3", Name: "Triple/Twin Rooms", ReferenceRate: 70, MaxOccupancy: 3},
		{ID: "knp6", Name: "Group Room", ReferenceRate: 250, MaxOccupancy: 6},
	}
}
