package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/domain/pricing"
	mock_interfaces "villa_pricing/internal/usecase/interfaces/mocks"
)

var fixedNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

type overrideDeps struct {
	rooms     *mock_interfaces.MockIRoomRateRepository
	overrides *mock_interfaces.MockIPriceOverrideRepository
	locker    *mock_interfaces.MockILocker
	notifier  *mock_interfaces.MockIPricingNotifier
}

func newOverrideUseCase(t *testing.T) (*OverrideUseCase, overrideDeps) {
	ctrl := gomock.NewController(t)
	d := overrideDeps{
		rooms:     mock_interfaces.NewMockIRoomRateRepository(ctrl),
		overrides: mock_interfaces.NewMockIPriceOverrideRepository(ctrl),
		locker:    mock_interfaces.NewMockILocker(ctrl),
		notifier:  mock_interfaces.NewMockIPricingNotifier(ctrl),
	}
	uc := NewOverrideUseCase(d.rooms, d.overrides, pricing.DefaultPolicy(), d.locker, d.notifier, zap.NewNop())
	uc.now = func() time.Time { return fixedNow }
	return uc, d
}

func expectLock(d overrideDeps, released *int) {
	d.locker.EXPECT().Acquire(gomock.Any(), overridesLockKey).Return(func(context.Context) error {
		*released++
		return nil
	}, nil)
}

func TestOverrideUseCase_SetOverride(t *testing.T) {
	t.Run("invalid room id", func(t *testing.T) {
		uc, _ := newOverrideUseCase(t)
		_, err := uc.SetOverride(context.Background(), "  ", 100)
		if !errors.Is(err, ErrInvalidRoomID) {
			t.Fatalf("expected ErrInvalidRoomID, got %v", err)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		uc, _ := newOverrideUseCase(t)
		for _, p := range []float64{0, -5} {
			_, err := uc.SetOverride(context.Background(), "knp", p)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("price %v: expected ErrInvalidInput, got %v", p, err)
			}
		}
	})

	t.Run("room not found", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		released := 0
		expectLock(d, &released)
		d.rooms.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Room{}, nil)

		_, err := uc.SetOverride(context.Background(), "nope", 100)
		if !errors.Is(err, ErrRoomNotFound) {
			t.Fatalf("expected ErrRoomNotFound, got %v", err)
		}
	})

	t.Run("room lookup error", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		released := 0
		expectLock(d, &released)
		d.rooms.EXPECT().GetByID(gomock.Any(), "knp").Return(entities.Room{}, errors.New("db"))

		_, err := uc.SetOverride(context.Background(), "knp", 100)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("above maximum is rejected without writing", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		released := 0
		expectLock(d, &released)
		d.rooms.EXPECT().GetByID(gomock.Any(), "r300").Return(entities.Room{ID: "r300", ReferenceRate: 300}, nil)

		_, err := uc.SetOverride(context.Background(), "r300", 286)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds, got %v", err)
		}
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) || oob.MaxAllowed != 285 {
			t.Fatalf("expected max allowed 285, got %+v", oob)
		}
		if released != 1 {
			t.Fatalf("expected lock released once, got %d", released)
		}
	})

	t.Run("maximum never rounds above the exact bound", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		released := 0
		expectLock(d, &released)
		d.rooms.EXPECT().GetByID(gomock.Any(), "a").Return(entities.Room{ID: "a", ReferenceRate: 100.01}, nil)

		// 100.01 * 0.95 = 95.0095
		_, err := uc.SetOverride(context.Background(), "a", 95.01)
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) || oob.MaxAllowed != 95 {
			t.Fatalf("expected out of bounds with max 95, got %v", err)
		}
	})

	t.Run("room without a usable reference rate", func(t *testing.T) {
		for _, rate := range []float64{0, -10} {
			uc, d := newOverrideUseCase(t)
			released := 0
			expectLock(d, &released)
			d.rooms.EXPECT().GetByID(gomock.Any(), "z").Return(entities.Room{ID: "z", ReferenceRate: rate}, nil)

			_, err := uc.SetOverride(context.Background(), "z", 10)
			if !errors.Is(err, ErrInvalidReferenceRate) || !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("rate %v: expected ErrInvalidReferenceRate, got %v", rate, err)
			}
			if errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("rate %v: must not be reported as out of bounds", rate)
			}
		}
	})

	t.Run("exact maximum is accepted", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		released := 0
		d.rooms.EXPECT().GetByID(gomock.Any(), "r300").Return(entities.Room{ID: "r300", ReferenceRate: 300}, nil)
		expectLock(d, &released)
		d.overrides.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
		d.notifier.EXPECT().OverrideSet(gomock.Any(), gomock.Any()).Return(nil)

		o, err := uc.SetOverride(context.Background(), "r300", 285)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if o.CustomPrice != 285 {
			t.Fatalf("expected custom price 285, got %v", o.CustomPrice)
		}
		if released != 1 {
			t.Fatalf("expected lock released once, got %d", released)
		}
	})

	t.Run("success stores override and survives notifier failure", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		released := 0
		d.rooms.EXPECT().GetByID(gomock.Any(), "knp6").Return(entities.Room{ID: "knp6", ReferenceRate: 250}, nil)
		expectLock(d, &released)
		d.overrides.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.PriceOverride{})).DoAndReturn(
			func(_ context.Context, o entities.PriceOverride) error {
				if o.ID == "" || o.RoomID != "knp6" || o.CustomPrice != 200 {
					t.Fatalf("unexpected override: %+v", o)
				}
				// 250 at lead 0 is a late deal: 250 * 0.8
				if o.AutoPrice != 200 {
					t.Fatalf("expected auto price 200, got %v", o.AutoPrice)
				}
				if !o.SetAt.Equal(fixedNow) {
					t.Fatalf("expected set_at %v, got %v", fixedNow, o.SetAt)
				}
				return nil
			},
		)
		d.notifier.EXPECT().OverrideSet(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

		o, err := uc.SetOverride(context.Background(), " knp6 ", 200)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if o.RoomID != "knp6" {
			t.Fatalf("expected trimmed room id, got %q", o.RoomID)
		}
		if released != 1 {
			t.Fatalf("expected lock released once, got %d", released)
		}
	})

	t.Run("lock failure skips the room lookup", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		d.locker.EXPECT().Acquire(gomock.Any(), overridesLockKey).Return(nil, errors.New("redis"))

		_, err := uc.SetOverride(context.Background(), "knp", 300)
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("put error", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		released := 0
		d.rooms.EXPECT().GetByID(gomock.Any(), "knp").Return(entities.Room{ID: "knp", ReferenceRate: 431}, nil)
		expectLock(d, &released)
		d.overrides.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.SetOverride(context.Background(), "knp", 300)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if released != 1 {
			t.Fatalf("expected lock released after failure, got %d", released)
		}
	})
}

func TestOverrideUseCase_GetOverride(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		d.overrides.EXPECT().Get(gomock.Any(), "knp").Return(entities.PriceOverride{}, nil)

		_, ok, err := uc.GetOverride(context.Background(), "knp")
		if err != nil || ok {
			t.Fatalf("expected no override, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		d.overrides.EXPECT().Get(gomock.Any(), "knp").Return(entities.PriceOverride{ID: "o1", RoomID: "knp", CustomPrice: 350}, nil)

		o, ok, err := uc.GetOverride(context.Background(), "knp")
		if err != nil || !ok || o.CustomPrice != 350 {
			t.Fatalf("unexpected result: %+v ok=%v err=%v", o, ok, err)
		}
	})
}

func TestOverrideUseCase_ClearOverride(t *testing.T) {
	t.Run("existing override", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		released := 0
		expectLock(d, &released)
		d.overrides.EXPECT().Delete(gomock.Any(), "knp").Return(true, nil)
		d.notifier.EXPECT().OverrideCleared(gomock.Any(), "knp", fixedNow).Return(nil)

		existed, err := uc.ClearOverride(context.Background(), "knp")
		if err != nil || !existed {
			t.Fatalf("expected existed=true, got %v err=%v", existed, err)
		}
	})

	t.Run("nothing to clear", func(t *testing.T) {
		uc, d := newOverrideUseCase(t)
		released := 0
		expectLock(d, &released)
		d.overrides.EXPECT().Delete(gomock.Any(), "knp").Return(false, nil)

		existed, err := uc.ClearOverride(context.Background(), "knp")
		if err != nil || existed {
			t.Fatalf("expected existed=false, got %v err=%v", existed, err)
		}
		if released != 1 {
			t.Fatalf("expected lock released, got %d", released)
		}
	})
}

func TestOverrideUseCase_ClearAllAutoControlledOverrides(t *testing.T) {
	uc, d := newOverrideUseCase(t)
	released := 0
	expectLock(d, &released)
	d.overrides.EXPECT().DeleteAll(gomock.Any()).Return([]string{"knp", "knp6"}, nil)

	rooms, err := uc.ClearAllAutoControlledOverrides(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %v", rooms)
	}
	if released != 1 {
		t.Fatalf("expected lock released, got %d", released)
	}
}

func TestOverrideUseCase_WithoutLocker(t *testing.T) {
	ctrl := gomock.NewController(t)
	overrides := mock_interfaces.NewMockIPriceOverrideRepository(ctrl)
	uc := NewOverrideUseCase(nil, overrides, pricing.DefaultPolicy(), nil, nil, zap.NewNop())

	overrides.EXPECT().Delete(gomock.Any(), "knp").Return(true, nil)

	existed, err := uc.ClearOverride(context.Background(), "knp")
	if err != nil || !existed {
		t.Fatalf("expected existed=true, got %v err=%v", existed, err)
	}
}
