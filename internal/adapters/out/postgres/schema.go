package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// tableStatements are ordered so that every referenced table exists first.
var tableStatements = []struct {
	table string
	ddl   string
}{
	{"customer", `
		CREATE TABLE IF NOT EXISTS customer (
			customer_id BIGINT PRIMARY KEY,
			name        VARCHAR(100) NOT NULL,
			contact     VARCHAR(50)  NOT NULL DEFAULT ''
		)`},
	{"location", `
		CREATE TABLE IF NOT EXISTS location (
			location_id        BIGINT PRIMARY KEY,
			name               VARCHAR(100) NOT NULL,
			parent_location_id BIGINT NULL REFERENCES location (location_id),
			postal_code        VARCHAR(20) NOT NULL DEFAULT '',
			CONSTRAINT location_not_own_parent CHECK (parent_location_id IS NULL OR parent_location_id <> location_id)
		)`},
	{"agent", `
		CREATE TABLE IF NOT EXISTS agent (
			agent_id BIGINT PRIMARY KEY,
			name     VARCHAR(100) NOT NULL,
			contacts VARCHAR(100) NOT NULL DEFAULT ''
		)`},
	{"driver", `
		CREATE TABLE IF NOT EXISTS driver (
			driver_id      BIGINT PRIMARY KEY,
			name           VARCHAR(100) NOT NULL,
			license_number VARCHAR(50)  NOT NULL UNIQUE,
			contact        VARCHAR(50)  NOT NULL DEFAULT '',
			capacity_limit INT NOT NULL DEFAULT 5 CHECK (capacity_limit > 0)
		)`},
	{"shipments", `
		CREATE TABLE IF NOT EXISTS shipments (
			shipment_id             BIGINT PRIMARY KEY,
			sender_id               BIGINT NOT NULL REFERENCES customer (customer_id),
			recipient_id            BIGINT NOT NULL REFERENCES customer (customer_id),
			origin_id               BIGINT NOT NULL REFERENCES location (location_id),
			destination_id          BIGINT NOT NULL REFERENCES location (location_id),
			status                  VARCHAR(20) NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'in_transit', 'delivered', 'returned')),
			created_time            TIMESTAMPTZ NOT NULL DEFAULT now(),
			estimated_delivery_time TIMESTAMPTZ NOT NULL,
			actual_delivery         TIMESTAMPTZ NULL
		)`},
	{"package", `
		CREATE TABLE IF NOT EXISTS package (
			package_id  BIGINT PRIMARY KEY,
			weight      NUMERIC(8, 2) NOT NULL CHECK (weight > 0),
			description VARCHAR(500) NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_active   BOOLEAN NOT NULL DEFAULT TRUE
		)`},
	{"package_shipment_assignment", `
		CREATE TABLE IF NOT EXISTS package_shipment_assignment (
			assignment_id        UUID PRIMARY KEY,
			package_id           BIGINT NOT NULL REFERENCES package (package_id),
			shipment_id          BIGINT NOT NULL REFERENCES shipments (shipment_id),
			assigned_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
			removed_at           TIMESTAMPTZ NULL,
			assigned_by_agent_id BIGINT NULL REFERENCES agent (agent_id),
			removal_reason       VARCHAR(20) NULL
				CHECK (removal_reason IN ('reassigned', 'damaged', 'lost', 'returned', 'other')),
			notes                TEXT NOT NULL DEFAULT '',
			CONSTRAINT package_assignment_removal_complete CHECK ((removed_at IS NULL) = (removal_reason IS NULL))
		)`},
	{"driver_shipment_assignment", `
		CREATE TABLE IF NOT EXISTS driver_shipment_assignment (
			assignment_id           UUID PRIMARY KEY,
			driver_id               BIGINT NOT NULL REFERENCES driver (driver_id),
			shipment_id             BIGINT NOT NULL REFERENCES shipments (shipment_id),
			start_location_id       BIGINT NOT NULL REFERENCES location (location_id),
			end_location_id         BIGINT NOT NULL REFERENCES location (location_id),
			delivered               BOOLEAN NOT NULL DEFAULT FALSE,
			assigned_at             TIMESTAMPTZ NOT NULL DEFAULT now(),
			estimated_pickup_time   TIMESTAMPTZ NOT NULL,
			actual_pickup_time      TIMESTAMPTZ NULL,
			estimated_delivery_time TIMESTAMPTZ NOT NULL,
			actual_delivery_time    TIMESTAMPTZ NULL,
			CONSTRAINT driver_assignment_window CHECK (estimated_delivery_time >= estimated_pickup_time)
		)`},
	{"status_logs", `
		CREATE TABLE IF NOT EXISTS status_logs (
			log_id      UUID PRIMARY KEY,
			shipment_id BIGINT NOT NULL REFERENCES shipments (shipment_id) ON DELETE CASCADE,
			location_id BIGINT NULL REFERENCES location (location_id),
			agent_id    BIGINT NULL REFERENCES agent (agent_id),
			"timestamp" TIMESTAMPTZ NOT NULL DEFAULT now(),
			status      VARCHAR(20) NOT NULL
				CHECK (status IN ('pending', 'in_transit', 'delivered', 'returned')),
			notes       TEXT NOT NULL DEFAULT ''
		)`},
	{"package_movement_log", `
		CREATE TABLE IF NOT EXISTS package_movement_log (
			log_id            UUID PRIMARY KEY,
			package_id        BIGINT NOT NULL REFERENCES package (package_id),
			from_shipment_id  BIGINT NULL REFERENCES shipments (shipment_id),
			to_shipment_id    BIGINT NULL REFERENCES shipments (shipment_id),
			moved_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
			moved_by_agent_id BIGINT NULL REFERENCES agent (agent_id),
			movement_reason   VARCHAR(20) NOT NULL
				CHECK (movement_reason IN ('reassignment', 'consolidation', 'split_shipment', 'damage', 'customer_request', 'other')),
			notes             TEXT NOT NULL DEFAULT ''
		)`},
}

// OpenAssignmentIndex enforces at most one open assignment per package.
const OpenAssignmentIndex = "uq_package_assignment_open"

var indexStatements = []struct {
	name string
	ddl  string
}{
	{"idx_package_assignment_package", `CREATE INDEX IF NOT EXISTS idx_package_assignment_package ON package_shipment_assignment (package_id)`},
	{"idx_package_assignment_shipment", `CREATE INDEX IF NOT EXISTS idx_package_assignment_shipment ON package_shipment_assignment (shipment_id)`},
	{"idx_package_assignment_removed", `CREATE INDEX IF NOT EXISTS idx_package_assignment_removed ON package_shipment_assignment (package_id, removed_at)`},
	{OpenAssignmentIndex, `CREATE UNIQUE INDEX IF NOT EXISTS ` + OpenAssignmentIndex + ` ON package_shipment_assignment (package_id) WHERE removed_at IS NULL`},
	{"idx_movement_package", `CREATE INDEX IF NOT EXISTS idx_movement_package ON package_movement_log (package_id)`},
	{"idx_movement_moved_at", `CREATE INDEX IF NOT EXISTS idx_movement_moved_at ON package_movement_log (moved_at)`},
	{"idx_shipments_status", `CREATE INDEX IF NOT EXISTS idx_shipments_status ON shipments (status)`},
	{"idx_shipments_estimated_delivery", `CREATE INDEX IF NOT EXISTS idx_shipments_estimated_delivery ON shipments (estimated_delivery_time)`},
	{"idx_driver_assignment_driver_delivered", `CREATE INDEX IF NOT EXISTS idx_driver_assignment_driver_delivered ON driver_shipment_assignment (driver_id, delivered)`},
	{"idx_status_logs_shipment", `CREATE INDEX IF NOT EXISTS idx_status_logs_shipment ON status_logs (shipment_id, "timestamp")`},
}

// Tables lists the ledger tables in creation order.
func Tables() []string {
	names := make([]string, 0, len(tableStatements))
	for _, s := range tableStatements {
		names = append(names, s.table)
	}
	return names
}

// Indexes lists the secondary indexes InitSchema creates.
func Indexes() []string {
	names := make([]string, 0, len(indexStatements))
	for _, s := range indexStatements {
		names = append(names, s.name)
	}
	return names
}

// InitSchema creates the ledger tables and indexes if they do not exist.
//
// A failing table statement aborts and is returned. A failing index statement
// is logged at WARN and skipped. Running InitSchema on an initialised database
// changes nothing.
func InitSchema(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	logger = logger.With("component", "schema")
	conn := db.WithContext(ctx)

	for _, s := range tableStatements {
		if err := conn.Exec(s.ddl).Error; err != nil {
			return fmt.Errorf("create table %s: %w", s.table, err)
		}
		logger.Debug("table ready", "table", s.table)
	}

	for _, s := range indexStatements {
		if err := conn.Exec(s.ddl).Error; err != nil {
			logger.Warn("index creation failed, continuing", "index", s.name, "error", err)
			continue
		}
		logger.Debug("index ready", "index", s.name)
	}

	logger.Info("schema initialised", "tables", len(tableStatements), "indexes", len(indexStatements))
	return nil
}
