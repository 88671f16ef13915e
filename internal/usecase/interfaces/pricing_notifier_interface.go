package interfaces

//go:generate mockgen -source=pricing_notifier_interface.go -destination=mocks/pricing_notifier_interface_mock.go

import (
	"context"
	"time"

	"villa_pricing/internal/domain/entities"
)

// IPricingNotifier publishes pricing events for the admin console and operators.
type IPricingNotifier interface {
	OverrideSet(ctx context.Context, o entities.PriceOverride) error
	OverrideCleared(ctx context.Context, roomID string, at time.Time) error
	OverridesReverted(ctx context.Context, roomIDs []string, at time.Time) error
	ManualRateReminder(ctx context.Context, manualDays []time.Weekday, at time.Time) error
}
