package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"villa_pricing/internal/infrastructure/config"
	"villa_pricing/internal/usecase"
)

var ErrSchedulerTransientFailure = errors.New("scheduler: transient job failure")

type State int32

const (
	StateIdle State = iota
	StateFiring
)

func (s State) String() string {
	if s == StateFiring {
		return "firing"
	}
	return "idle"
}

// RevertScheduler runs the weekly override revert, the daily manual-rate
// reminder and the reference-rate sync on a cron clock in server local time.
// A failed run is logged and retried at the next fire; nothing catches up.
type RevertScheduler struct {
	cron             *cron.Cron
	revertSchedule   cron.Schedule
	reminderSchedule cron.Schedule
	reverter         usecase.IRevertUseCase
	rateSync         usecase.IRateSyncUseCase
	cfg              config.SchedulerConfig
	logger           *zap.Logger
	state            atomic.Int32
	now              func() time.Time
}

func NewRevertScheduler(
	cfg config.SchedulerConfig,
	reverter usecase.IRevertUseCase,
	rateSync usecase.IRateSyncUseCase,
	logger *zap.Logger,
) (*RevertScheduler, error) {
	revert, err := cron.ParseStandard(cfg.RevertCron)
	if err != nil {
		return nil, fmt.Errorf("parse revert_cron %q: %w", cfg.RevertCron, err)
	}
	reminder, err := cron.ParseStandard(cfg.ReminderCron)
	if err != nil {
		return nil, fmt.Errorf("parse reminder_cron %q: %w", cfg.ReminderCron, err)
	}

	logger = logger.Named("scheduler")
	cl := cronLogger{logger.Sugar()}
	s := &RevertScheduler{
		cron: cron.New(
			cron.WithLocation(time.Local),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		revertSchedule:   revert,
		reminderSchedule: reminder,
		reverter:         reverter,
		rateSync:         rateSync,
		cfg:              cfg,
		logger:           logger,
		now:              time.Now,
	}

	s.cron.Schedule(revert, cron.FuncJob(func() { s.run("revert", s.fireRevert) }))
	s.cron.Schedule(reminder, cron.FuncJob(func() { s.run("manual_rate_reminder", s.fireReminder) }))
	if rateSync != nil && cfg.RateSyncInterval > 0 {
		s.cron.Schedule(cron.Every(cfg.RateSyncInterval), cron.FuncJob(func() { s.run("rate_sync", s.fireRateSync) }))
	}
	return s, nil
}

func (s *RevertScheduler) Start() {
	s.cron.Start()
	now := s.now()
	s.logger.Info("scheduler started",
		zap.Time("next_revert", s.NextRevert(now)),
		zap.Time("next_reminder", s.reminderSchedule.Next(now)),
	)
}

// Stop waits for running jobs until ctx is done.
func (s *RevertScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *RevertScheduler) State() State {
	return State(s.state.Load())
}

// NextRevert is the first revert fire strictly after now.
func (s *RevertScheduler) NextRevert(now time.Time) time.Time {
	return s.revertSchedule.Next(now)
}

func (s *RevertScheduler) run(job string, fire func(ctx context.Context) error) {
	ctx := context.Background()
	if s.cfg.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.JobTimeout)
		defer cancel()
	}

	start := s.now()
	if err := fire(ctx); err != nil {
		s.logger.Error("scheduled job failed", zap.String("job", job), zap.Error(err))
		return
	}
	s.logger.Debug("scheduled job done", zap.String("job", job), zap.Duration("took", s.now().Sub(start)))
}

func (s *RevertScheduler) fireRevert(ctx context.Context) error {
	s.state.Store(int32(StateFiring))
	defer s.state.Store(int32(StateIdle))

	rooms, err := s.reverter.Revert(ctx)
	if err != nil {
		return fmt.Errorf("%w: revert: %w", ErrSchedulerTransientFailure, err)
	}
	s.logger.Info("overrides reverted to automatic pricing",
		zap.Strings("rooms", rooms),
		zap.Time("next_revert", s.NextRevert(s.now())),
	)
	return nil
}

func (s *RevertScheduler) fireReminder(ctx context.Context) error {
	if _, err := s.reverter.RemindManualRates(ctx, s.now()); err != nil {
		return fmt.Errorf("%w: reminder: %w", ErrSchedulerTransientFailure, err)
	}
	return nil
}

func (s *RevertScheduler) fireRateSync(ctx context.Context) error {
	report, err := s.rateSync.Sync(ctx)
	if errors.Is(err, usecase.ErrRateSourceNotConfigured) {
		s.logger.Debug("reference rate sync skipped", zap.Error(err))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: rate sync: %w", ErrSchedulerTransientFailure, err)
	}
	s.logger.Info("reference rates synced",
		zap.Strings("updated", report.Updated),
		zap.Strings("skipped", report.Skipped),
	)
	return nil
}

// cronLogger routes cron's own logging through zap.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
