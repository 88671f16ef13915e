package usecase

import (
	"context"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/usecase/interfaces"
)

// SeedCatalog inserts the seed rooms missing from the catalog and leaves
// existing rooms, and their synced rates, untouched. It returns the ids added.
func SeedCatalog(ctx context.Context, rooms interfaces.IRoomRateRepository, seed []entities.Room) ([]string, error) {
	var added []string
	for _, room := range seed {
		existing, err := rooms.GetByID(ctx, room.ID)
		if err != nil {
			return added, err
		}
		if existing.ID != "" {
			continue
		}
		if err := rooms.Upsert(ctx, room); err != nil {
			return added, err
		}
		added = append(added, room.ID)
	}
	return added, nil
}
