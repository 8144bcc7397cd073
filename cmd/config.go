package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foodorder/internal/core/ports"

	"github.com/kelseyhightower/envconfig"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	Storage    string `envconfig:"STORAGE" default:"postgres"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"foodorder"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// An empty broker list logs notifications instead of producing them.
	KafkaBrokers       []string      `envconfig:"KAFKA_BROKERS"`
	KafkaTopic         string        `envconfig:"KAFKA_NOTIFICATIONS_TOPIC" default:"notifications"`
	KafkaWriteTimeout  time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
	LateOrderSchedule  string        `envconfig:"LATE_ORDER_SCHEDULE" default:"0 * * * * *"`
	OrderCreatedNotify string        `envconfig:"ORDER_CREATED_NOTIFY" default:"async"`
	OrderUpdateNotify  string        `envconfig:"ORDER_UPDATE_NOTIFY" default:"sync"`
	FoodNotify         string        `envconfig:"FOOD_NOTIFY" default:"async"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Storage != StoragePostgres && c.Storage != StorageMemory {
		return fmt.Errorf("STORAGE must be %s or %s, got %q", StoragePostgres, StorageMemory, c.Storage)
	}
	for _, mode := range []string{c.OrderCreatedNotify, c.OrderUpdateNotify, c.FoodNotify} {
		if _, err := ports.ParseNotifyMode(mode); err != nil {
			return err
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// NotifyModes holds the dispatch mode per group of use cases.
type NotifyModes struct {
	OrderCreated ports.NotifyMode
	OrderUpdates ports.NotifyMode
	Food         ports.NotifyMode
}

func (c Config) NotifyModes() NotifyModes {
	created, _ := ports.ParseNotifyMode(c.OrderCreatedNotify)
	updates, _ := ports.ParseNotifyMode(c.OrderUpdateNotify)
	food, _ := ports.ParseNotifyMode(c.FoodNotify)
	return NotifyModes{OrderCreated: created, OrderUpdates: updates, Food: food}
}
