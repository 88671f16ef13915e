package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"villa_pricing/internal/domain/entities"
	mock_interfaces "villa_pricing/internal/usecase/interfaces/mocks"
)

func TestRateSyncUseCase_ShouldSync(t *testing.T) {
	uc := NewRateSyncUseCase(nil, nil, nil, 72*time.Hour, zap.NewNop())

	if !uc.ShouldSync(time.Time{}, fixedNow) {
		t.Fatalf("expected never-synced rate to be due")
	}
	if uc.ShouldSync(fixedNow.Add(-71*time.Hour), fixedNow) {
		t.Fatalf("expected fresh rate not to be due")
	}
	if !uc.ShouldSync(fixedNow.Add(-72*time.Hour), fixedNow) {
		t.Fatalf("expected rate at the interval to be due")
	}
}

func TestRateSyncUseCase_Sync(t *testing.T) {
	t.Run("source not configured", func(t *testing.T) {
		uc := NewRateSyncUseCase(nil, nil, nil, 72*time.Hour, zap.NewNop())
		_, err := uc.Sync(context.Background())
		if !errors.Is(err, ErrRateSourceNotConfigured) {
			t.Fatalf("expected ErrRateSourceNotConfigured, got %v", err)
		}
	})

	t.Run("unconfigured source is not logged as an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock_interfaces.NewMockIRateSource(ctrl)
		core, logs := observer.New(zapcore.DebugLevel)
		uc := NewRateSyncUseCase(nil, source, nil, 72*time.Hour, zap.New(core))

		source.EXPECT().FetchRates(gomock.Any()).Return(nil, ErrRateSourceNotConfigured)

		if _, err := uc.Sync(context.Background()); !errors.Is(err, ErrRateSourceNotConfigured) {
			t.Fatalf("expected ErrRateSourceNotConfigured, got %v", err)
		}
		if n := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); n != 0 {
			t.Fatalf("expected no error logs, got %d", n)
		}
	})

	t.Run("fetch error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock_interfaces.NewMockIRateSource(ctrl)
		uc := NewRateSyncUseCase(nil, source, nil, 72*time.Hour, zap.NewNop())

		source.EXPECT().FetchRates(gomock.Any()).Return(nil, errors.New("marketplace"))

		if _, err := uc.Sync(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("applies due rates and skips the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := mock_interfaces.NewMockIRoomRateRepository(ctrl)
		source := mock_interfaces.NewMockIRateSource(ctrl)
		uc := NewRateSyncUseCase(rooms, source, nil, 72*time.Hour, zap.NewNop())
		uc.now = func() time.Time { return fixedNow }

		source.EXPECT().FetchRates(gomock.Any()).Return(map[string]float64{
			"knp":   440,
			"knp1":  -1,
			"knp3":  75,
			"ghost": 99,
		}, nil)
		rooms.EXPECT().List(gomock.Any()).Return([]entities.Room{
			{ID: "knp", ReferenceRate: 431},
			{ID: "knp1", ReferenceRate: 119},
			{ID: "knp3", ReferenceRate: 70, RateUpdatedAt: fixedNow.Add(-time.Hour)},
			{ID: "knp6", ReferenceRate: 250},
		}, nil)
		rooms.EXPECT().UpdateReferenceRate(gomock.Any(), "knp", 440.0, fixedNow).Return(entities.Room{ID: "knp", ReferenceRate: 440}, nil)

		report, err := uc.Sync(context.Background())
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(report.Updated) != 1 || report.Updated[0] != "knp" {
			t.Fatalf("unexpected updated: %v", report.Updated)
		}
		sort.Strings(report.Skipped)
		if len(report.Skipped) != 2 || report.Skipped[0] != "ghost" || report.Skipped[1] != "knp1" {
			t.Fatalf("unexpected skipped: %v", report.Skipped)
		}
	})
	t.Run("rate writes run under the override lock", func(t *testing.T) {
		ovr, d := newOverrideUseCase(t)
		released := 0
		expectLock(d, &released)

		ctrl := gomock.NewController(t)
		rooms := mock_interfaces.NewMockIRoomRateRepository(ctrl)
		source := mock_interfaces.NewMockIRateSource(ctrl)
		uc := NewRateSyncUseCase(rooms, source, ovr, 72*time.Hour, zap.NewNop())
		uc.now = func() time.Time { return fixedNow }

		source.EXPECT().FetchRates(gomock.Any()).Return(map[string]float64{"knp": 440}, nil)
		rooms.EXPECT().List(gomock.Any()).Return([]entities.Room{{ID: "knp", ReferenceRate: 431}}, nil)
		rooms.EXPECT().UpdateReferenceRate(gomock.Any(), "knp", 440.0, fixedNow).DoAndReturn(
			func(context.Context, string, float64, time.Time) (entities.Room, error) {
				if released != 0 {
					t.Fatalf("rate written after the lock was released")
				}
				return entities.Room{ID: "knp", ReferenceRate: 440}, nil
			},
		)

		if _, err := uc.Sync(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if released != 1 {
			t.Fatalf("expected lock released once, got %d", released)
		}
	})

	t.Run("lock failure writes nothing", func(t *testing.T) {
		ovr, d := newOverrideUseCase(t)
		d.locker.EXPECT().Acquire(gomock.Any(), overridesLockKey).Return(nil, errors.New("redis"))

		ctrl := gomock.NewController(t)
		source := mock_interfaces.NewMockIRateSource(ctrl)
		uc := NewRateSyncUseCase(nil, source, ovr, 72*time.Hour, zap.NewNop())

		source.EXPECT().FetchRates(gomock.Any()).Return(map[string]float64{"knp": 440}, nil)

		if _, err := uc.Sync(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
