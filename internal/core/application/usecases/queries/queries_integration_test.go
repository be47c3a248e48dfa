package queries_test

import (
	"context"
	"testing"
	"time"

	"ledger/internal/adapters/out/postgres/postgrestest"
	"ledger/internal/core/application/usecases/queries"
	"ledger/internal/core/domain/model/shipment"
	"ledger/internal/pkg/retry"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportQueriesIntegrationTestSuite struct {
	suite.Suite
	pg   *postgrestest.Database
	asOf time.Time
}

func (suite *ReportQueriesIntegrationTestSuite) SetupSuite() {
	pg, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.asOf = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
}

func (suite *ReportQueriesIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.Truncate(ctx))
	suite.Require().NoError(suite.pg.SeedDirectory(ctx))
}

func (suite *ReportQueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *ReportQueriesIntegrationTestSuite) exec(sql string, args ...any) {
	suite.Require().NoError(suite.pg.DB.Exec(sql, args...).Error)
}

func (suite *ReportQueriesIntegrationTestSuite) addDriver(id int64, name string) {
	suite.exec(`INSERT INTO driver (driver_id, name, license_number, contact, capacity_limit) VALUES (?, ?, ?, ?, 5)`,
		id, name, "DL-"+name, name+"@example.com")
}

func (suite *ReportQueriesIntegrationTestSuite) assignDriver(driverID, shipmentID int64, assignedAt time.Time, delivered bool) {
	suite.exec(`
		INSERT INTO driver_shipment_assignment
			(assignment_id, driver_id, shipment_id, start_location_id, end_location_id, delivered,
			 assigned_at, estimated_pickup_time, estimated_delivery_time)
		VALUES (gen_random_uuid(), ?, ?, 1, 2, ?, ?, ?, ?)`,
		driverID, shipmentID, delivered, assignedAt, assignedAt.Add(time.Hour), assignedAt.Add(5*time.Hour))
}

func (suite *ReportQueriesIntegrationTestSuite) addPackage(packageID, shipmentID int64, weight string, removed bool) {
	suite.exec(`INSERT INTO package (package_id, weight, description) VALUES (?, ?, 'box')`, packageID, weight)
	if removed {
		suite.exec(`
			INSERT INTO package_shipment_assignment (assignment_id, package_id, shipment_id, removed_at, removal_reason)
			VALUES (gen_random_uuid(), ?, ?, now(), 'reassigned')`, packageID, shipmentID)
		return
	}
	suite.exec(`INSERT INTO package_shipment_assignment (assignment_id, package_id, shipment_id) VALUES (gen_random_uuid(), ?, ?)`,
		packageID, shipmentID)
}

func (suite *ReportQueriesIntegrationTestSuite) TestShipmentStatusLog_NewestFirstWithJoinedNames() {
	ctx := context.Background()
	eta := suite.asOf.Add(24 * time.Hour)
	suite.Require().NoError(suite.pg.InsertShipment(ctx, 1001, "in_transit", eta))
	suite.exec(`INSERT INTO status_logs (log_id, shipment_id, location_id, agent_id, "timestamp", status, notes)
		VALUES (gen_random_uuid(), 1001, 1, 1, ?, 'pending', 'created'),
		       (gen_random_uuid(), 1001, 2, NULL, ?, 'in_transit', 'left hub')`,
		suite.asOf.Add(-2*time.Hour), suite.asOf.Add(-time.Hour))

	query, err := queries.NewGetShipmentStatusLogQuery(1001)
	suite.Require().NoError(err)
	rows, err := queries.NewGetShipmentStatusLogQueryHandler(suite.pg.DB, retry.DefaultPolicy()).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Equal(shipment.InTransit, rows[0].LogStatus)
	suite.Equal("Hub B", rows[0].LocationName)
	suite.Equal("20002", rows[0].PostalCode)
	suite.Empty(rows[0].AgentName)
	suite.Equal("left hub", rows[0].Notes)

	suite.Equal(shipment.Pending, rows[1].LogStatus)
	suite.Equal("Warehouse A", rows[1].LocationName)
	suite.Equal("Dispatcher", rows[1].AgentName)

	for _, r := range rows {
		suite.Equal(int64(1001), r.ShipmentID)
		suite.Equal(shipment.InTransit, r.CurrentStatus)
		suite.True(eta.Equal(r.EstimatedDelivery))
		suite.Nil(r.ActualDelivery)
	}
}

func (suite *ReportQueriesIntegrationTestSuite) TestShipmentStatusLog_NoEntries_YieldsOneRowWithEmptyLog() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.InsertShipment(ctx, 1001, "pending", suite.asOf))

	query, err := queries.NewGetShipmentStatusLogQuery(1001)
	suite.Require().NoError(err)
	rows, err := queries.NewGetShipmentStatusLogQueryHandler(suite.pg.DB, retry.DefaultPolicy()).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(shipment.Pending, rows[0].CurrentStatus)
	suite.Empty(rows[0].LogStatus)
	suite.Nil(rows[0].LogTimestamp)
	suite.Empty(rows[0].LocationName)
}

func (suite *ReportQueriesIntegrationTestSuite) TestShipmentStatusLog_UnknownShipment_IsEmpty() {
	query, err := queries.NewGetShipmentStatusLogQuery(4242)
	suite.Require().NoError(err)
	rows, err := queries.NewGetShipmentStatusLogQueryHandler(suite.pg.DB, retry.DefaultPolicy()).
		Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *ReportQueriesIntegrationTestSuite) TestPendingShipmentsForDriver_FiltersAndOrders() {
	ctx := context.Background()
	for _, s := range []struct {
		id     int64
		status string
	}{{1001, "pending"}, {1002, "pending"}, {1003, "in_transit"}, {1004, "pending"}} {
		suite.Require().NoError(suite.pg.InsertShipment(ctx, s.id, s.status, suite.asOf.Add(48*time.Hour)))
	}
	suite.addDriver(1, "dana")
	suite.addDriver(2, "eli")

	suite.assignDriver(1, 1002, suite.asOf.Add(-3*time.Hour), false)
	suite.assignDriver(1, 1001, suite.asOf.Add(-time.Hour), false)
	suite.assignDriver(1, 1003, suite.asOf.Add(-2*time.Hour), false)
	suite.assignDriver(1, 1004, suite.asOf.Add(-4*time.Hour), true)
	suite.assignDriver(2, 1001, suite.asOf.Add(-5*time.Hour), false)

	query, err := queries.NewGetPendingShipmentsForDriverQuery(1)
	suite.Require().NoError(err)
	rows, err := queries.NewGetPendingShipmentsForDriverQueryHandler(suite.pg.DB, retry.DefaultPolicy()).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Equal(int64(1002), rows[0].ShipmentID)
	suite.Equal(int64(1001), rows[1].ShipmentID)
	suite.Equal("Alice", rows[0].SenderName)
	suite.Equal("Bob", rows[0].RecipientName)
	suite.Equal("Warehouse A", rows[0].OriginLocation)
	suite.Equal("Hub B", rows[0].DestinationLocation)
	suite.True(suite.asOf.Add(-3 * time.Hour).Equal(rows[0].AssignedAt))
	suite.True(suite.asOf.Add(-2 * time.Hour).Equal(rows[0].EstimatedPickup))
}

func (suite *ReportQueriesIntegrationTestSuite) TestPendingShipmentsForDriver_UnknownDriver_IsEmpty() {
	query, err := queries.NewGetPendingShipmentsForDriverQuery(99)
	suite.Require().NoError(err)
	rows, err := queries.NewGetPendingShipmentsForDriverQueryHandler(suite.pg.DB, retry.DefaultPolicy()).
		Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *ReportQueriesIntegrationTestSuite) TestDelayedShipments_WorstFirstWithLatestDriver() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.InsertShipment(ctx, 1001, "pending", suite.asOf.Add(-90*time.Minute)))
	suite.Require().NoError(suite.pg.InsertShipment(ctx, 1002, "in_transit", suite.asOf.Add(-30*time.Hour)))
	suite.Require().NoError(suite.pg.InsertShipment(ctx, 1003, "delivered", suite.asOf.Add(-50*time.Hour)))
	suite.Require().NoError(suite.pg.InsertShipment(ctx, 1004, "returned", suite.asOf.Add(-50*time.Hour)))
	suite.Require().NoError(suite.pg.InsertShipment(ctx, 1005, "pending", suite.asOf.Add(time.Hour)))

	suite.addDriver(1, "dana")
	suite.addDriver(2, "eli")
	suite.assignDriver(1, 1002, suite.asOf.Add(-40*time.Hour), false)
	suite.assignDriver(2, 1002, suite.asOf.Add(-35*time.Hour), false)

	query, err := queries.NewGetDelayedShipmentsQuery(suite.asOf)
	suite.Require().NoError(err)
	rows, err := queries.NewGetDelayedShipmentsQueryHandler(suite.pg.DB, retry.DefaultPolicy()).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Equal(int64(1002), rows[0].ShipmentID)
	suite.Equal(int64(30), rows[0].DelayHours)
	suite.Equal("eli", rows[0].DriverName)
	suite.Equal("eli@example.com", rows[0].DriverContact)

	suite.Equal(int64(1001), rows[1].ShipmentID)
	suite.Equal(int64(1), rows[1].DelayHours)
	suite.Empty(rows[1].DriverName)
	suite.Nil(rows[1].ActualDelivery)
}

func (suite *ReportQueriesIntegrationTestSuite) TestDelayedShipments_NothingOverdue_IsEmpty() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.InsertShipment(ctx, 1001, "pending", suite.asOf.Add(time.Hour)))

	query, err := queries.NewGetDelayedShipmentsQuery(suite.asOf)
	suite.Require().NoError(err)
	rows, err := queries.NewGetDelayedShipmentsQueryHandler(suite.pg.DB, retry.DefaultPolicy()).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *ReportQueriesIntegrationTestSuite) TestDailyVolume_GroupsByDateAndOrigin() {
	ctx := context.Background()
	day := func(offset int) time.Time { return suite.asOf.AddDate(0, 0, -offset) }
	insert := func(id int64, status string, origin int64, created time.Time) {
		suite.exec(`
			INSERT INTO shipments (shipment_id, sender_id, recipient_id, origin_id, destination_id, status,
			                       created_time, estimated_delivery_time)
			VALUES (?, 1, 2, ?, 2, ?, ?, ?)`,
			id, origin, status, created, created.Add(48*time.Hour))
	}

	insert(1001, "pending", 1, day(1))
	insert(1002, "delivered", 1, day(1).Add(time.Hour))
	insert(1003, "in_transit", 2, day(1))
	insert(1004, "pending", 1, day(2))
	insert(1005, "pending", 1, day(45))

	suite.addPackage(2001, 1001, "2.50", false)
	suite.addPackage(2002, 1001, "1.25", false)
	suite.addPackage(2003, 1002, "4.00", false)
	suite.addPackage(2004, 1002, "9.00", true)

	query, err := queries.NewGetDailyShipmentVolumeQuery(suite.asOf)
	suite.Require().NoError(err)
	rows, err := queries.NewGetDailyShipmentVolumeQueryHandler(suite.pg.DB, retry.DefaultPolicy()).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	yesterday := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	suite.True(yesterday.Equal(rows[0].Date))
	suite.Equal(int64(1), rows[0].OriginLocationID)
	suite.Equal("Warehouse A", rows[0].OriginLocation)
	suite.Equal("10001", rows[0].OriginPostalCode)
	suite.Equal(int64(2), rows[0].TotalShipments)
	suite.Equal(int64(1), rows[0].Delivered)
	suite.Equal(int64(1), rows[0].Pending)
	suite.Equal(int64(0), rows[0].InTransit)
	suite.True(decimal.RequireFromString("7.75").Equal(rows[0].TotalWeight), rows[0].TotalWeight.String())

	suite.True(yesterday.Equal(rows[1].Date))
	suite.Equal(int64(2), rows[1].OriginLocationID)
	suite.Equal(int64(1), rows[1].InTransit)
	suite.True(decimal.Zero.Equal(rows[1].TotalWeight))

	suite.True(time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC).Equal(rows[2].Date))
	suite.Equal(int64(1), rows[2].TotalShipments)
}

func TestReportQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReportQueriesIntegrationTestSuite))
}
