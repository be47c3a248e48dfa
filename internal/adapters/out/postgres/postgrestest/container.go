// Package postgrestest starts a disposable PostgreSQL container with the
// ledger schema for integration tests.
package postgrestest

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"ledger/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database is a running container and an open connection to it.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine, connects with GORM and initialises the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres.InitSchema(ctx, db, DiscardLogger()); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Truncate empties every ledger table.
func (d *Database) Truncate(ctx context.Context) error {
	return d.DB.WithContext(ctx).
		Exec("TRUNCATE TABLE " + strings.Join(postgres.Tables(), ", ") + " CASCADE").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SeedDirectory inserts customers 1 and 2, locations 1 and 2 and agent 1,
// the reference rows most repository tests need.
func (d *Database) SeedDirectory(ctx context.Context) error {
	db := d.DB.WithContext(ctx)
	for _, stmt := range []string{
		`INSERT INTO customer (customer_id, name, contact) VALUES (1, 'Alice', '555-0100'), (2, 'Bob', '555-0101')`,
		`INSERT INTO location (location_id, name, postal_code) VALUES (1, 'Warehouse A', '10001'), (2, 'Hub B', '20002')`,
		`INSERT INTO agent (agent_id, name, contacts) VALUES (1, 'Dispatcher', 'desk 4')`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// InsertShipment adds a shipment from customer 1 to customer 2 between
// locations 1 and 2. SeedDirectory must have run first.
func (d *Database) InsertShipment(ctx context.Context, id int64, status string, estimatedDelivery time.Time) error {
	return d.DB.WithContext(ctx).Exec(
		`INSERT INTO shipments (shipment_id, sender_id, recipient_id, origin_id, destination_id, status, estimated_delivery_time)
		 VALUES (?, 1, 2, 1, 2, ?, ?)`,
		id, status, estimatedDelivery).Error
}
