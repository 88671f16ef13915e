package interfaces

//go:generate mockgen -source=price_override_repository_interface.go -destination=mocks/price_override_repository_interface_mock.go

import (
	"context"

	"villa_pricing/internal/domain/entities"
)

// IPriceOverrideRepository persists at most one PriceOverride per room.
//
//   - Get returns a zero PriceOverride (empty ID) when the room has none.
//   - Put replaces any existing override for the room.
//   - DeleteAll removes every override and returns the affected room ids.
type IPriceOverrideRepository interface {
	Get(ctx context.Context, roomID string) (entities.PriceOverride, error)
	Put(ctx context.Context, o entities.PriceOverride) error
	Delete(ctx context.Context, roomID string) (bool, error)
	DeleteAll(ctx context.Context) ([]string, error)
}
