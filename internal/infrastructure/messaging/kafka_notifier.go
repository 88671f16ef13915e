package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/usecase/interfaces"
)

const (
	EventOverrideSet        = "pricing.override.set"
	EventOverrideCleared    = "pricing.override.cleared"
	EventOverridesReverted  = "pricing.overrides.reverted"
	EventManualRateReminder = "pricing.manual_rates.reminder"

	// villaKey partitions events that concern more than one room.
	villaKey = "villa"
)

// Event is the JSON envelope every pricing message is wrapped in.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type overrideClearedPayload struct {
	RoomID string `json:"room_id"`
}

type overridesRevertedPayload struct {
	RoomIDs []string `json:"room_ids"`
}

type manualRateReminderPayload struct {
	ManualDays []string `json:"manual_days"`
}

// KafkaNotifier publishes pricing events through a sarama sync producer.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

var _ interfaces.IPricingNotifier = (*KafkaNotifier)(nil)

// NewSyncProducer builds an idempotent, all-acks producer.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_1_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1
	return sarama.NewSyncProducer(brokers, cfg)
}

func NewKafkaNotifier(producer sarama.SyncProducer, topic string, logger *zap.Logger) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, topic: topic, logger: logger}
}

func (n *KafkaNotifier) OverrideSet(ctx context.Context, o entities.PriceOverride) error {
	return n.publish(ctx, o.RoomID, EventOverrideSet, o.SetAt, o)
}

func (n *KafkaNotifier) OverrideCleared(ctx context.Context, roomID string, at time.Time) error {
	return n.publish(ctx, roomID, EventOverrideCleared, at, overrideClearedPayload{RoomID: roomID})
}

func (n *KafkaNotifier) OverridesReverted(ctx context.Context, roomIDs []string, at time.Time) error {
	return n.publish(ctx, villaKey, EventOverridesReverted, at, overridesRevertedPayload{RoomIDs: roomIDs})
}

func (n *KafkaNotifier) ManualRateReminder(ctx context.Context, manualDays []time.Weekday, at time.Time) error {
	return n.publish(ctx, villaKey, EventManualRateReminder, at, manualRateReminderPayload{ManualDays: weekdayNames(manualDays)})
}

func (n *KafkaNotifier) Close() error {
	if n.producer == nil {
		return nil
	}
	return n.producer.Close()
}

func (n *KafkaNotifier) publish(ctx context.Context, key, eventType string, at time.Time, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: at.UTC(),
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", eventType, err)
	}

	partition, offset, err := n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	n.logger.Debug("pricing event published",
		zap.String("type", eventType),
		zap.String("key", key),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func weekdayNames(days []time.Weekday) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.String())
	}
	return out
}
