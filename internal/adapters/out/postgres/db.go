package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ledger/internal/adapters/out/postgres/pgerr"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config holds connection and pool settings.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// SlowQueryThreshold makes GORM log statements slower than this at WARN.
	SlowQueryThreshold time.Duration
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Open connects to PostgreSQL, applies the pool settings and checks the
// connection with a ping.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	return OpenDSN(ctx, cfg.DSN(), cfg, logger)
}

// OpenDSN is Open with an explicit DSN; pool settings still come from cfg.
func OpenDSN(ctx context.Context, dsn string, cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(logger, cfg.SlowQueryThreshold),
	})
	if err != nil {
		return nil, pgerr.Translate("open database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, pgerr.Translate("ping database", err)
	}

	return db, nil
}

// NewGormLogger routes GORM's own messages (slow queries, driver errors)
// into slog at WARN.
func NewGormLogger(logger *slog.Logger, slowThreshold time.Duration) gormlogger.Interface {
	if slowThreshold <= 0 {
		slowThreshold = 200 * time.Millisecond
	}
	return gormlogger.New(slogWriter{logger: logger.With("component", "gorm")}, gormlogger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
	})
}

type slogWriter struct {
	logger *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.logger.Warn(fmt.Sprintf(format, args...))
}
