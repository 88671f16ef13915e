package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"villa_pricing/internal/adapter/http/handlers"
	"villa_pricing/internal/adapter/http/routes"
	"villa_pricing/internal/adapter/persistence/memory"
	"villa_pricing/internal/adapter/persistence/repository"
	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/infrastructure/config"
	"villa_pricing/internal/infrastructure/database"
	"villa_pricing/internal/infrastructure/lock"
	"villa_pricing/internal/infrastructure/messaging"
	"villa_pricing/internal/infrastructure/ratesource"
	"villa_pricing/internal/infrastructure/scheduler"
	"villa_pricing/internal/usecase"
	"villa_pricing/internal/usecase/interfaces"
	applog "villa_pricing/pkg/logger"
)

// @title           Villa Pricing API
// @version         1.0
// @description     Direct-booking pricing: lead-time discounts, operator overrides and the weekly revert.

// @host localhost:8080

// @BasePath  /v1

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load(os.Getenv("PRICING_CONFIG_FILE"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := applog.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	for _, w := range cfg.Warnings() {
		logger.Warn("config warning", zap.String("warning", w))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rooms, overrides := buildRepositories(ctx, cfg, logger)
	added, err := usecase.SeedCatalog(ctx, rooms, entities.DefaultRooms())
	if err != nil {
		logger.Fatal("seed room catalog failed", zap.Error(err))
	}
	if len(added) > 0 {
		logger.Info("room catalog seeded", zap.Strings("rooms", added))
	}

	locker, err := buildLocker(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	notifier, closeNotifier, err := buildNotifier(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to kafka", zap.Error(err))
	}
	defer closeNotifier()

	// Validated by config.Load.
	weekdays, _ := cfg.WeekdayPolicy()
	policy := cfg.Policy()

	overrideUseCase := usecase.NewOverrideUseCase(rooms, overrides, policy, locker, notifier, logger)
	pricingUseCase := usecase.NewPricingUseCase(rooms, overrideUseCase, policy, weekdays, logger)
	revertUseCase := usecase.NewRevertUseCase(overrideUseCase, weekdays, notifier, logger)
	rateSyncUseCase := usecase.NewRateSyncUseCase(rooms, ratesource.Unconfigured{}, overrideUseCase, cfg.Scheduler.RateSyncInterval, logger)

	var clock handlers.RevertClock
	var sched *scheduler.RevertScheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.NewRevertScheduler(cfg.Scheduler, revertUseCase, rateSyncUseCase, logger)
		if err != nil {
			logger.Fatal("init scheduler failed", zap.Error(err))
		}
		sched.Start()
		clock = sched
	} else {
		logger.Warn("scheduler disabled: overrides will not be reverted automatically")
	}

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(cfg.Server, routes.Handlers{
		Pricing:  handlers.NewPricingHandler(pricingUseCase, clock),
		Override: handlers.NewOverrideHandler(overrideUseCase),
	}, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", zap.Error(err))
	}
	if sched != nil {
		if err := sched.Stop(shutdownCtx); err != nil {
			logger.Error("scheduler shutdown failed", zap.Error(err))
		}
	}
}

func buildRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IRoomRateRepository, interfaces.IPriceOverrideRepository) {
	if cfg.Storage.Backend != config.StorageDynamoDB {
		logger.Info("using in-memory storage")
		return memory.NewRoomRateRepository(), memory.NewPriceOverrideRepository()
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.Storage.DynamoDB)
	if err != nil {
		logger.Fatal("failed to create dynamodb client", zap.Error(err))
	}
	logger.Info("using dynamodb storage",
		zap.String("rooms_table", cfg.Storage.DynamoDB.RoomsTable),
		zap.String("overrides_table", cfg.Storage.DynamoDB.OverridesTable),
	)
	return repository.NewRoomDynamoRepository(ddb, cfg.Storage.DynamoDB.RoomsTable),
		repository.NewPriceOverrideDynamoRepository(ddb, cfg.Storage.DynamoDB.OverridesTable)
}

// buildLocker uses the in-process mutex alone when redis is not configured,
// which is only safe for a single instance. A configured redis must be reachable.
func buildLocker(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.ILocker, error) {
	if cfg.Redis.Addr == "" {
		logger.Warn("redis not configured, override lock is process-local")
		return lock.NoopLocker{}, nil
	}
	rdb, err := lock.NewRedisClient(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, err
	}
	return lock.NewRedisLocker(rdb, cfg.Redis.LockTTL, logger), nil
}

func buildNotifier(cfg *config.Config, logger *zap.Logger) (interfaces.IPricingNotifier, func(), error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return messaging.NewLogNotifier(logger), func() {}, nil
	}
	producer, err := messaging.NewSyncProducer(cfg.Kafka.Brokers)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	n := messaging.NewKafkaNotifier(producer, cfg.Kafka.Topic, logger)
	return n, func() {
		if err := n.Close(); err != nil {
			logger.Warn("close kafka producer failed", zap.Error(err))
		}
	}, nil
}
