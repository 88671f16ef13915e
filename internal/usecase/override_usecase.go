package usecase

//go:generate mockgen -source=override_usecase.go -destination=../adapter/http/handlers/mocks/override_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/domain/pricing"
	"villa_pricing/internal/usecase/interfaces"
)

var (
	ErrInvalidRoomID = errors.New("invalid room_id")
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidInput  = pricing.ErrInvalidInput
	ErrOutOfBounds   = errors.New("override price above the allowed maximum")

	// ErrInvalidReferenceRate is an ErrInvalidInput caused by catalog data
	// rather than by the caller.
	ErrInvalidReferenceRate = fmt.Errorf("%w: room reference rate must be positive", ErrInvalidInput)
)

const overridesLockKey = "villa:pricing:overrides"

// OutOfBoundsError carries the highest price the operator may set for the room.
type OutOfBoundsError struct {
	RoomID      string
	CustomPrice float64
	MaxAllowed  float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("override %.2f for room %s exceeds maximum %.2f", e.CustomPrice, e.RoomID, e.MaxAllowed)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// IOverrideUseCase is the override store: one operator price per room.
//
// Mutations are serialized by a single store-wide lock so the weekly revert
// can never silently discard a concurrent manual set.
type IOverrideUseCase interface {
	SetOverride(ctx context.Context, roomID string, customPrice float64) (entities.PriceOverride, error)
	GetOverride(ctx context.Context, roomID string) (entities.PriceOverride, bool, error)
	ClearOverride(ctx context.Context, roomID string) (bool, error)
	ClearAllAutoControlledOverrides(ctx context.Context) ([]string, error)
}

type OverrideUseCase struct {
	mu        sync.Mutex
	rooms     interfaces.IRoomRateRepository
	overrides interfaces.IPriceOverrideRepository
	policy    pricing.Policy
	locker    interfaces.ILocker
	notifier  interfaces.IPricingNotifier
	logger    *zap.Logger
	now       func() time.Time
}

var _ IOverrideUseCase = (*OverrideUseCase)(nil)

// NewOverrideUseCase wires the override store. locker and notifier are optional.
func NewOverrideUseCase(
	rooms interfaces.IRoomRateRepository,
	overrides interfaces.IPriceOverrideRepository,
	policy pricing.Policy,
	locker interfaces.ILocker,
	notifier interfaces.IPricingNotifier,
	logger *zap.Logger,
) *OverrideUseCase {
	return &OverrideUseCase{
		rooms:     rooms,
		overrides: overrides,
		policy:    policy,
		locker:    locker,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func (u *OverrideUseCase) SetOverride(ctx context.Context, roomID string, customPrice float64) (entities.PriceOverride, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return entities.PriceOverride{}, ErrInvalidRoomID
	}
	if customPrice <= 0 || math.IsNaN(customPrice) || math.IsInf(customPrice, 0) {
		return entities.PriceOverride{}, ErrInvalidInput
	}

	release, err := u.lock(ctx)
	if err != nil {
		return entities.PriceOverride{}, err
	}
	defer release()

	// Rate sync writes under the same lock, so the bound checked here holds
	// until the override is stored.
	room, err := u.rooms.GetByID(ctx, roomID)
	if err != nil {
		u.logger.Error("load room failed", zap.String("room_id", roomID), zap.Error(err))
		return entities.PriceOverride{}, err
	}
	if room.ID == "" {
		return entities.PriceOverride{}, ErrRoomNotFound
	}
	if room.ReferenceRate <= 0 || math.IsNaN(room.ReferenceRate) || math.IsInf(room.ReferenceRate, 0) {
		u.logger.Warn("room has no usable reference rate", zap.String("room_id", roomID), zap.Float64("reference_rate", room.ReferenceRate))
		return entities.PriceOverride{}, ErrInvalidReferenceRate
	}

	if maxAllowed := u.policy.MaxOverridePrice(room.ReferenceRate); customPrice > maxAllowed {
		return entities.PriceOverride{}, &OutOfBoundsError{RoomID: roomID, CustomPrice: customPrice, MaxAllowed: maxAllowed}
	}

	// The superseded price is what a guest checking in today would have paid.
	auto, err := u.policy.ComputePrice(room.ReferenceRate, 0)
	if err != nil {
		return entities.PriceOverride{}, err
	}

	o := entities.PriceOverride{
		ID:          uuid.NewString(),
		RoomID:      roomID,
		CustomPrice: customPrice,
		AutoPrice:   auto.FinalPrice,
		SetAt:       u.now().UTC(),
	}
	if err := u.overrides.Put(ctx, o); err != nil {
		u.logger.Error("save price override failed", zap.String("room_id", roomID), zap.Error(err))
		return entities.PriceOverride{}, err
	}

	u.logger.Info("price override set",
		zap.String("room_id", roomID),
		zap.Float64("custom_price", customPrice),
		zap.Float64("auto_price", auto.FinalPrice),
	)
	if u.notifier != nil {
		if err := u.notifier.OverrideSet(ctx, o); err != nil {
			u.logger.Warn("publish override set failed", zap.String("room_id", roomID), zap.Error(err))
		}
	}
	return o, nil
}

func (u *OverrideUseCase) GetOverride(ctx context.Context, roomID string) (entities.PriceOverride, bool, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return entities.PriceOverride{}, false, ErrInvalidRoomID
	}
	o, err := u.overrides.Get(ctx, roomID)
	if err != nil {
		return entities.PriceOverride{}, false, err
	}
	if o.RoomID == "" {
		return entities.PriceOverride{}, false, nil
	}
	return o, true, nil
}

func (u *OverrideUseCase) ClearOverride(ctx context.Context, roomID string) (bool, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return false, ErrInvalidRoomID
	}

	release, err := u.lock(ctx)
	if err != nil {
		return false, err
	}
	defer release()

	existed, err := u.overrides.Delete(ctx, roomID)
	if err != nil {
		u.logger.Error("delete price override failed", zap.String("room_id", roomID), zap.Error(err))
		return false, err
	}
	if !existed {
		return false, nil
	}

	u.logger.Info("price override cleared", zap.String("room_id", roomID))
	if u.notifier != nil {
		if err := u.notifier.OverrideCleared(ctx, roomID, u.now().UTC()); err != nil {
			u.logger.Warn("publish override cleared failed", zap.String("room_id", roomID), zap.Error(err))
		}
	}
	return true, nil
}

// ClearAllAutoControlledOverrides drops every override. Overrides are not
// day-specific, so the weekday policy only decides when this runs.
func (u *OverrideUseCase) ClearAllAutoControlledOverrides(ctx context.Context) ([]string, error) {
	release, err := u.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	cleared, err := u.overrides.DeleteAll(ctx)
	if err != nil {
		return cleared, err
	}
	return cleared, nil
}

// WithLock runs fn while holding the lock every override mutation takes.
func (u *OverrideUseCase) WithLock(ctx context.Context, fn func() error) error {
	release, err := u.lock(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn()
}

func (u *OverrideUseCase) lock(ctx context.Context) (func(), error) {
	u.mu.Lock()
	if u.locker == nil {
		return u.mu.Unlock, nil
	}

	release, err := u.locker.Acquire(ctx, overridesLockKey)
	if err != nil {
		u.mu.Unlock()
		return nil, fmt.Errorf("acquire overrides lock: %w", err)
	}
	return func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			u.logger.Warn("release overrides lock failed", zap.Error(err))
		}
		u.mu.Unlock()
	}, nil
}
