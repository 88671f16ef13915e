package memory

import (
	"context"
	"sync"
	"time"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/usecase/interfaces"
)

// RoomRateRepository keeps the rate catalog in memory, listed in insertion order.
type RoomRateRepository struct {
	mu    sync.RWMutex
	rooms map[string]entities.Room
	order []string
}

var _ interfaces.IRoomRateRepository = (*RoomRateRepository)(nil)

func NewRoomRateRepository(seed ...entities.Room) *RoomRateRepository {
	r := &RoomRateRepository{rooms: make(map[string]entities.Room, len(seed))}
	for _, room := range seed {
		r.put(room)
	}
	return r
}

func (r *RoomRateRepository) GetByID(_ context.Context, id string) (entities.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rooms[id], nil
}

func (r *RoomRateRepository) List(_ context.Context) ([]entities.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Room, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rooms[id])
	}
	return out, nil
}

func (r *RoomRateRepository) Upsert(_ context.Context, room entities.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(room)
	return nil
}

func (r *RoomRateRepository) UpdateReferenceRate(_ context.Context, id string, rate float64, at time.Time) (entities.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return entities.Room{}, nil
	}
	room.ReferenceRate = rate
	room.RateUpdatedAt = at
	r.rooms[id] = room
	return room, nil
}

func (r *RoomRateRepository) put(room entities.Room) {
	if _, ok := r.rooms[room.ID]; !ok {
		r.order = append(r.order, room.ID)
	}
	r.rooms[room.ID] = room
}
