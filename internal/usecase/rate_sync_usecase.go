package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"villa_pricing/internal/usecase/interfaces"
)

var ErrRateSourceNotConfigured = errors.New("reference rate source not configured")

// SyncReport lists the rooms a sync touched.
type SyncReport struct {
	Updated []string
	Skipped []string
}

// IRateSyncUseCase refreshes reference rates from a third-party source.
type IRateSyncUseCase interface {
	ShouldSync(lastUpdate, now time.Time) bool
	Sync(ctx context.Context) (SyncReport, error)
}

// RateGuard serializes rate writes with override mutations, which read the
// rate to bound the custom price.
type RateGuard interface {
	WithLock(ctx context.Context, fn func() error) error
}

type RateSyncUseCase struct {
	rooms    interfaces.IRoomRateRepository
	source   interfaces.IRateSource
	guard    RateGuard
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

var _ IRateSyncUseCase = (*RateSyncUseCase)(nil)

// NewRateSyncUseCase accepts a nil source: no marketplace integration exists yet.
// guard is optional.
func NewRateSyncUseCase(rooms interfaces.IRoomRateRepository, source interfaces.IRateSource, guard RateGuard, interval time.Duration, logger *zap.Logger) *RateSyncUseCase {
	return &RateSyncUseCase{rooms: rooms, source: source, guard: guard, interval: interval, logger: logger, now: time.Now}
}

func (u *RateSyncUseCase) ShouldSync(lastUpdate, now time.Time) bool {
	return lastUpdate.IsZero() || now.Sub(lastUpdate) >= u.interval
}

// Sync applies fetched rates to every room whose rate is older than the interval.
func (u *RateSyncUseCase) Sync(ctx context.Context) (SyncReport, error) {
	var report SyncReport
	if u.source == nil {
		return report, ErrRateSourceNotConfigured
	}

	rates, err := u.source.FetchRates(ctx)
	if errors.Is(err, ErrRateSourceNotConfigured) {
		u.logger.Debug("reference rate source not configured, sync skipped")
		return report, err
	}
	if err != nil {
		u.logger.Error("fetch reference rates failed", zap.Error(err))
		return report, err
	}

	if u.guard == nil {
		err = u.apply(ctx, rates, &report)
	} else {
		err = u.guard.WithLock(ctx, func() error { return u.apply(ctx, rates, &report) })
	}
	return report, err
}

func (u *RateSyncUseCase) apply(ctx context.Context, rates map[string]float64, report *SyncReport) error {
	rooms, err := u.rooms.List(ctx)
	if err != nil {
		return err
	}

	now := u.now()
	known := make(map[string]bool, len(rooms))
	for _, room := range rooms {
		known[room.ID] = true
		rate, ok := rates[room.ID]
		if !ok || !u.ShouldSync(room.RateUpdatedAt, now) {
			continue
		}
		if rate <= 0 {
			u.logger.Warn("ignoring non-positive reference rate", zap.String("room_id", room.ID), zap.Float64("rate", rate))
			report.Skipped = append(report.Skipped, room.ID)
			continue
		}
		if _, err := u.rooms.UpdateReferenceRate(ctx, room.ID, rate, now.UTC()); err != nil {
			u.logger.Error("update reference rate failed", zap.String("room_id", room.ID), zap.Error(err))
			return err
		}
		u.logger.Info("reference rate updated",
			zap.String("room_id", room.ID),
			zap.Float64("previous", room.ReferenceRate),
			zap.Float64("current", rate),
		)
		report.Updated = append(report.Updated, room.ID)
	}
	for id := range rates {
		if !known[id] {
			u.logger.Warn("reference rate for unknown room", zap.String("room_id", id))
			report.Skipped = append(report.Skipped, id)
		}
	}
	return nil
}
