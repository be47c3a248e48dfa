package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"ledger/internal/adapters/out/postgres"
	"ledger/internal/pkg/retry"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is filled from the environment, after an optional .env file.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost               string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort               string        `envconfig:"DB_PORT" default:"5432"`
	DBUser               string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword           string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName               string        `envconfig:"DB_NAME" default:"ledger"`
	DBSslMode            string        `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxOpenConns       int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	DBMaxIdleConns       int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifetime    time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	DBSlowQueryThreshold time.Duration `envconfig:"DB_SLOW_QUERY_THRESHOLD" default:"200ms"`

	OperationTimeout time.Duration `envconfig:"LEDGER_OPERATION_TIMEOUT" default:"10s"`
	MaxRetries       uint64        `envconfig:"LEDGER_MAX_RETRIES" default:"3"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	DelayedMonitorSchedule string `envconfig:"DELAYED_MONITOR_SCHEDULE" default:"0 */5 * * * *"`
}

// LoadConfig reads envFile when it exists and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Database() postgres.Config {
	return postgres.Config{
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSslMode,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,

		SlowQueryThreshold: c.DBSlowQueryThreshold,
	}
}

func (c Config) RetryPolicy() retry.Policy {
	policy := retry.DefaultPolicy()
	policy.Timeout = c.OperationTimeout
	policy.MaxRetries = c.MaxRetries
	return policy
}

// NewLogger builds the process logger from LOG_FORMAT and LOG_LEVEL.
func (c Config) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
