package usecase

//go:generate mockgen -source=pricing_usecase.go -destination=../adapter/http/handlers/mocks/pricing_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/domain/pricing"
	"villa_pricing/internal/usecase/interfaces"
)

var ErrInvalidDate = errors.New("check-in date is in the past")

// IPricingUseCase is the read side used by the booking and admin UIs.
type IPricingUseCase interface {
	GetEffectivePrice(ctx context.Context, roomID string, checkIn time.Time) (entities.PriceQuote, error)
	ListEffectivePrices(ctx context.Context, checkIn time.Time) ([]entities.PriceQuote, error)
	ListRooms(ctx context.Context) ([]entities.Room, error)
	GetWeekdayPolicy() entities.WeekdayPolicy
	RateComparison(ctx context.Context, roomID string) (entities.RateComparison, error)
}

// OverrideReader is the part of the override store pricing reads from.
type OverrideReader interface {
	GetOverride(ctx context.Context, roomID string) (entities.PriceOverride, bool, error)
}

type PricingUseCase struct {
	rooms     interfaces.IRoomRateRepository
	overrides OverrideReader
	policy    pricing.Policy
	weekdays  entities.WeekdayPolicy
	logger    *zap.Logger
	now       func() time.Time
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(
	rooms interfaces.IRoomRateRepository,
	overrides OverrideReader,
	policy pricing.Policy,
	weekdays entities.WeekdayPolicy,
	logger *zap.Logger,
) *PricingUseCase {
	return &PricingUseCase{
		rooms:     rooms,
		overrides: overrides,
		policy:    policy,
		weekdays:  weekdays,
		logger:    logger,
		now:       time.Now,
	}
}

// GetEffectivePrice serves the override when one exists and the tiered policy price otherwise.
func (u *PricingUseCase) GetEffectivePrice(ctx context.Context, roomID string, checkIn time.Time) (entities.PriceQuote, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return entities.PriceQuote{}, ErrInvalidRoomID
	}
	lead, err := u.leadDays(checkIn)
	if err != nil {
		return entities.PriceQuote{}, err
	}

	room, err := u.rooms.GetByID(ctx, roomID)
	if err != nil {
		u.logger.Error("load room failed", zap.String("room_id", roomID), zap.Error(err))
		return entities.PriceQuote{}, err
	}
	if room.ID == "" {
		return entities.PriceQuote{}, ErrRoomNotFound
	}
	return u.quote(ctx, room, checkIn, lead)
}

func (u *PricingUseCase) ListEffectivePrices(ctx context.Context, checkIn time.Time) ([]entities.PriceQuote, error) {
	lead, err := u.leadDays(checkIn)
	if err != nil {
		return nil, err
	}
	rooms, err := u.rooms.List(ctx)
	if err != nil {
		u.logger.Error("list rooms failed", zap.Error(err))
		return nil, err
	}

	quotes := make([]entities.PriceQuote, 0, len(rooms))
	for _, room := range rooms {
		q, err := u.quote(ctx, room, checkIn, lead)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func (u *PricingUseCase) ListRooms(ctx context.Context) ([]entities.Room, error) {
	return u.rooms.List(ctx)
}

func (u *PricingUseCase) GetWeekdayPolicy() entities.WeekdayPolicy {
	return u.weekdays
}

func (u *PricingUseCase) RateComparison(ctx context.Context, roomID string) (entities.RateComparison, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return entities.RateComparison{}, ErrInvalidRoomID
	}
	room, err := u.rooms.GetByID(ctx, roomID)
	if err != nil {
		return entities.RateComparison{}, err
	}
	if room.ID == "" {
		return entities.RateComparison{}, ErrRoomNotFound
	}

	direct, err := u.policy.DirectRate(room.ReferenceRate)
	if err != nil {
		return entities.RateComparison{}, err
	}
	return entities.RateComparison{
		RoomID:          room.ID,
		ReferenceRate:   room.ReferenceRate,
		DirectRate:      direct,
		Savings:         pricing.RoundCents(room.ReferenceRate - direct),
		DiscountPercent: u.policy.BasePercent,
	}, nil
}

func (u *PricingUseCase) leadDays(checkIn time.Time) (int, error) {
	if checkIn.IsZero() {
		return 0, ErrInvalidDate
	}
	lead := pricing.LeadDays(checkIn, u.now())
	if lead < 0 {
		return 0, ErrInvalidDate
	}
	return lead, nil
}

func (u *PricingUseCase) quote(ctx context.Context, room entities.Room, checkIn time.Time, lead int) (entities.PriceQuote, error) {
	q := entities.PriceQuote{
		RoomID:        room.ID,
		CheckIn:       checkIn,
		LeadDays:      lead,
		ReferenceRate: room.ReferenceRate,
	}

	o, ok, err := u.overrides.GetOverride(ctx, room.ID)
	if err != nil {
		u.logger.Error("load price override failed", zap.String("room_id", room.ID), zap.Error(err))
		return entities.PriceQuote{}, err
	}
	if ok {
		q.FinalPrice = o.CustomPrice
		q.Tier = entities.TierCustom
		q.IsOverride = true
		q.Savings = pricing.RoundCents(room.ReferenceRate - o.CustomPrice)
		if room.ReferenceRate > 0 {
			q.DiscountPercent = pricing.RoundCents((room.ReferenceRate - o.CustomPrice) / room.ReferenceRate * 100)
		}
		return q, nil
	}

	res, err := u.policy.ComputePrice(room.ReferenceRate, lead)
	if err != nil {
		return entities.PriceQuote{}, err
	}
	q.FinalPrice = res.FinalPrice
	q.Tier = res.Tier
	q.DiscountPercent = res.DiscountPercent
	q.Savings = pricing.RoundCents(room.ReferenceRate - res.FinalPrice)
	return q, nil
}
