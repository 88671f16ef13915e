package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"go.uber.org/zap"

	"villa_pricing/internal/domain/entities"
)

var at = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func expectEvent(t *testing.T, wantType string, check func(payload map[string]any) error) mocks.ValueChecker {
	return func(val []byte) error {
		var env struct {
			ID         string         `json:"id"`
			Type       string         `json:"type"`
			OccurredAt time.Time      `json:"occurred_at"`
			Payload    map[string]any `json:"payload"`
		}
		if err := json.Unmarshal(val, &env); err != nil {
			return err
		}
		if env.ID == "" || env.Type != wantType || !env.OccurredAt.Equal(at) {
			return fmt.Errorf("unexpected envelope: %+v", env)
		}
		return check(env.Payload)
	}
}

func TestKafkaNotifier_OverrideSet(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()
	n := NewKafkaNotifier(producer, "pricing-events", zap.NewNop())

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, _ := msg.Key.Encode()
		if msg.Topic != "pricing-events" || string(key) != "knp6" {
			return fmt.Errorf("unexpected topic/key: %s/%s", msg.Topic, key)
		}
		val, _ := msg.Value.Encode()
		return expectEvent(t, EventOverrideSet, func(p map[string]any) error {
			if p["room_id"] != "knp6" || p["custom_price"] != 200.0 {
				return fmt.Errorf("unexpected payload: %v", p)
			}
			return nil
		})(val)
	})

	err := n.OverrideSet(context.Background(), entities.PriceOverride{ID: "o1", RoomID: "knp6", CustomPrice: 200, AutoPrice: 200, SetAt: at})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestKafkaNotifier_OverridesReverted(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()
	n := NewKafkaNotifier(producer, "pricing-events", zap.NewNop())

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(expectEvent(t, EventOverridesReverted, func(p map[string]any) error {
		ids, _ := p["room_ids"].([]any)
		if len(ids) != 2 || ids[0] != "knp" {
			return fmt.Errorf("unexpected payload: %v", p)
		}
		return nil
	}))

	if err := n.OverridesReverted(context.Background(), []string{"knp", "knp1"}, at); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestKafkaNotifier_ManualRateReminder(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()
	n := NewKafkaNotifier(producer, "pricing-events", zap.NewNop())

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(expectEvent(t, EventManualRateReminder, func(p map[string]any) error {
		days, _ := p["manual_days"].([]any)
		if len(days) != 3 || days[0] != "Friday" {
			return fmt.Errorf("unexpected payload: %v", p)
		}
		return nil
	}))

	err := n.ManualRateReminder(context.Background(), []time.Weekday{time.Friday, time.Saturday, time.Sunday}, at)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestKafkaNotifier_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()
	n := NewKafkaNotifier(producer, "pricing-events", zap.NewNop())

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := n.OverrideCleared(context.Background(), "knp", at)
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected ErrOutOfBrokers, got %v", err)
	}
}

func TestKafkaNotifier_CanceledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()
	n := NewKafkaNotifier(producer, "pricing-events", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := n.OverrideCleared(ctx, "knp", at); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier(zap.NewNop())
	ctx := context.Background()
	if err := n.OverrideSet(ctx, entities.PriceOverride{RoomID: "knp"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := n.OverridesReverted(ctx, []string{"knp"}, at); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
