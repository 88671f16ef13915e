package interfaces

//go:generate mockgen -source=room_rate_repository_interface.go -destination=mocks/room_rate_repository_interface_mock.go

import (
	"context"
	"time"

	"villa_pricing/internal/domain/entities"
)

// IRoomRateRepository is the rate catalog: rooms and their current reference rate.
//
// GetByID returns a zero Room (empty ID) when the room does not exist.
type IRoomRateRepository interface {
	GetByID(ctx context.Context, id string) (entities.Room, error)
	List(ctx context.Context) ([]entities.Room, error)
	Upsert(ctx context.Context, room entities.Room) error
	UpdateReferenceRate(ctx context.Context, id string, rate float64, at time.Time) (entities.Room, error)
}
