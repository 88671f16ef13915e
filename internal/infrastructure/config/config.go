package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/domain/pricing"
)

// Config aggregates everything the pricing service reads at startup.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Pricing   PricingConfig   `mapstructure:"pricing"`
	Weekdays  WeekdayConfig   `mapstructure:"weekdays"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
}

type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PricingConfig mirrors pricing.Policy; percents are expressed as 0..100.
type PricingConfig struct {
	EarlyBirdThresholdDays int     `mapstructure:"early_bird_threshold_days"`
	LateDealThresholdDays  int     `mapstructure:"late_deal_threshold_days"`
	EarlyBirdPercent       float64 `mapstructure:"early_bird_percent"`
	LateDealPercent        float64 `mapstructure:"late_deal_percent"`
	BasePercent            float64 `mapstructure:"base_percent"`
	MinimumDiscountPercent float64 `mapstructure:"minimum_discount_percent"`
}

type WeekdayConfig struct {
	AutoDays   []string `mapstructure:"auto_days"`
	ManualDays []string `mapstructure:"manual_days"`
}

type SchedulerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	RevertCron       string        `mapstructure:"revert_cron"`
	ReminderCron     string        `mapstructure:"reminder_cron"`
	RateSyncInterval time.Duration `mapstructure:"rate_sync_interval"`
	JobTimeout       time.Duration `mapstructure:"job_timeout"`
}

type StorageConfig struct {
	Backend  string         `mapstructure:"backend"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	RoomsTable      string `mapstructure:"rooms_table"`
	OverridesTable  string `mapstructure:"overrides_table"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

// Load reads configuration with precedence env > config file > defaults.
// Environment variables use the PRICING_ prefix, e.g. PRICING_PRICING_LATE_DEAL_PERCENT.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	def := pricing.DefaultPolicy()
	v.SetDefault("pricing.early_bird_threshold_days", def.EarlyBirdThresholdDays)
	v.SetDefault("pricing.late_deal_threshold_days", def.LateDealThresholdDays)
	v.SetDefault("pricing.early_bird_percent", def.EarlyBirdPercent)
	v.SetDefault("pricing.late_deal_percent", def.LateDealPercent)
	v.SetDefault("pricing.base_percent", def.BasePercent)
	v.SetDefault("pricing.minimum_discount_percent", def.MinimumDiscountPercent)

	v.SetDefault("weekdays.auto_days", []string{"monday", "tuesday", "wednesday", "thursday"})
	v.SetDefault("weekdays.manual_days", []string{"friday", "saturday", "sunday"})

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.revert_cron", "0 0 * * 0")
	v.SetDefault("scheduler.reminder_cron", "0 9 * * *")
	v.SetDefault("scheduler.rate_sync_interval", "72h")
	v.SetDefault("scheduler.job_timeout", "30s")

	v.SetDefault("storage.backend", StorageMemory)
	v.SetDefault("storage.dynamodb.region", "us-east-1")
	v.SetDefault("storage.dynamodb.endpoint", "")
	v.SetDefault("storage.dynamodb.access_key_id", "")
	v.SetDefault("storage.dynamodb.secret_access_key", "")
	v.SetDefault("storage.dynamodb.rooms_table", "rooms")
	v.SetDefault("storage.dynamodb.overrides_table", "price_overrides")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.lock_ttl", "10s")

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "villa.pricing.events")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PRICING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)
	cfg.Server.AllowOrigins = splitList(cfg.Server.AllowOrigins)
	cfg.Weekdays.AutoDays = splitList(cfg.Weekdays.AutoDays)
	cfg.Weekdays.ManualDays = splitList(cfg.Weekdays.ManualDays)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the pricing core cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port must be between 1 and 65535")
	}
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.WeekdayPolicy(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Scheduler.Enabled {
		if _, err := cron.ParseStandard(c.Scheduler.RevertCron); err != nil {
			return fmt.Errorf("config: scheduler.revert_cron: %w", err)
		}
		if _, err := cron.ParseStandard(c.Scheduler.ReminderCron); err != nil {
			return fmt.Errorf("config: scheduler.reminder_cron: %w", err)
		}
		if c.Scheduler.RateSyncInterval <= 0 {
			return fmt.Errorf("config: scheduler.rate_sync_interval must be positive")
		}
	}
	switch c.Storage.Backend {
	case StorageMemory, StorageDynamoDB:
	default:
		return fmt.Errorf("config: unknown storage.backend %q", c.Storage.Backend)
	}
	return nil
}

// Warnings lists settings that are accepted but almost certainly operator mistakes.
func (c *Config) Warnings() []string {
	var out []string
	if c.Policy().ThresholdsOverlap() {
		out = append(out, fmt.Sprintf(
			"pricing thresholds overlap (early bird >= %d days, late deal <= %d days); early bird wins",
			c.Pricing.EarlyBirdThresholdDays, c.Pricing.LateDealThresholdDays,
		))
	}
	return out
}

func (c *Config) Policy() pricing.Policy {
	return pricing.Policy{
		EarlyBirdThresholdDays: c.Pricing.EarlyBirdThresholdDays,
		LateDealThresholdDays:  c.Pricing.LateDealThresholdDays,
		EarlyBirdPercent:       c.Pricing.EarlyBirdPercent,
		LateDealPercent:        c.Pricing.LateDealPercent,
		BasePercent:            c.Pricing.BasePercent,
		MinimumDiscountPercent: c.Pricing.MinimumDiscountPercent,
	}
}

func (c *Config) WeekdayPolicy() (entities.WeekdayPolicy, error) {
	auto, err := entities.ParseWeekdays(c.Weekdays.AutoDays)
	if err != nil {
		return entities.WeekdayPolicy{}, err
	}
	manual, err := entities.ParseWeekdays(c.Weekdays.ManualDays)
	if err != nil {
		return entities.WeekdayPolicy{}, err
	}
	return entities.NewWeekdayPolicy(auto, manual)
}

// splitList accepts both yaml lists and comma separated env values.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, raw := range in {
		for _, part := range strings.Split(raw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
