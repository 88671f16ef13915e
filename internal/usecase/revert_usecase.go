package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/usecase/interfaces"
)

// OverrideReverter is the part of the override store the weekly job needs.
type OverrideReverter interface {
	ClearAllAutoControlledOverrides(ctx context.Context) ([]string, error)
}

// IRevertUseCase holds the two scheduled pricing jobs, free of any timer.
type IRevertUseCase interface {
	Revert(ctx context.Context) ([]string, error)
	RemindManualRates(ctx context.Context, now time.Time) (bool, error)
}

type RevertUseCase struct {
	store    OverrideReverter
	weekdays entities.WeekdayPolicy
	notifier interfaces.IPricingNotifier
	logger   *zap.Logger
	now      func() time.Time
}

var _ IRevertUseCase = (*RevertUseCase)(nil)

func NewRevertUseCase(store OverrideReverter, weekdays entities.WeekdayPolicy, notifier interfaces.IPricingNotifier, logger *zap.Logger) *RevertUseCase {
	return &RevertUseCase{store: store, weekdays: weekdays, notifier: notifier, logger: logger, now: time.Now}
}

// Revert clears every override so the policy price applies again.
func (u *RevertUseCase) Revert(ctx context.Context) ([]string, error) {
	rooms, err := u.store.ClearAllAutoControlledOverrides(ctx)
	if err != nil {
		return rooms, err
	}

	at := u.now().UTC()
	u.logger.Info("weekly override revert completed",
		zap.Strings("rooms", rooms),
		zap.Int("count", len(rooms)),
	)
	if u.notifier != nil && len(rooms) > 0 {
		if err := u.notifier.OverridesReverted(ctx, rooms, at); err != nil {
			u.logger.Warn("publish overrides reverted failed", zap.Error(err))
		}
	}
	return rooms, nil
}

// RemindManualRates tells the operator to review the manual days when now is
// the day before the manual window opens. It reports whether a reminder went out.
func (u *RevertUseCase) RemindManualRates(ctx context.Context, now time.Time) (bool, error) {
	if !u.weekdays.IsReminderDay(now.Weekday()) {
		return false, nil
	}

	manual := u.weekdays.ManualDays()
	names := make([]string, 0, len(manual))
	for _, d := range manual {
		names = append(names, d.String())
	}
	u.logger.Info("manual rate review due", zap.Strings("manual_days", names))

	if u.notifier != nil {
		if err := u.notifier.ManualRateReminder(ctx, manual, now.UTC()); err != nil {
			return true, err
		}
	}
	return true, nil
}
