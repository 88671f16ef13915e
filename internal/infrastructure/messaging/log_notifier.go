package messaging

import (
	"context"
	"time"

	"go.uber.org/zap"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/usecase/interfaces"
)

// LogNotifier writes pricing events to the log when no brokers are configured.
type LogNotifier struct {
	logger *zap.Logger
}

var _ interfaces.IPricingNotifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("events")}
}

func (n *LogNotifier) OverrideSet(_ context.Context, o entities.PriceOverride) error {
	n.logger.Info(EventOverrideSet,
		zap.String("room_id", o.RoomID),
		zap.Float64("custom_price", o.CustomPrice),
		zap.Time("occurred_at", o.SetAt),
	)
	return nil
}

func (n *LogNotifier) OverrideCleared(_ context.Context, roomID string, at time.Time) error {
	n.logger.Info(EventOverrideCleared, zap.String("room_id", roomID), zap.Time("occurred_at", at))
	return nil
}

func (n *LogNotifier) OverridesReverted(_ context.Context, roomIDs []string, at time.Time) error {
	n.logger.Info(EventOverridesReverted, zap.Strings("room_ids", roomIDs), zap.Time("occurred_at", at))
	return nil
}

func (n *LogNotifier) ManualRateReminder(_ context.Context, manualDays []time.Weekday, at time.Time) error {
	n.logger.Info(EventManualRateReminder, zap.Strings("manual_days", weekdayNames(manualDays)), zap.Time("occurred_at", at))
	return nil
}
