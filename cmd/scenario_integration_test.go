package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"ledger/internal/adapters/out/postgres/postgrestest"
	"ledger/internal/core/application/usecases/commands"
	"ledger/internal/core/domain/model/driver"
	"ledger/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
)

type ScenarioIntegrationTestSuite struct {
	suite.Suite
	pg   *postgrestest.Database
	root CompositionRoot
}

func (suite *ScenarioIntegrationTestSuite) SetupSuite() {
	pg, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ScenarioIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.Truncate(ctx))
	config := Config{OperationTimeout: 10 * time.Second, MaxRetries: 3}
	suite.root = NewCompositionRoot(config, suite.pg.DB, postgrestest.DiscardLogger())
	suite.Require().NoError(suite.root.SeedDemo(ctx))
}

func (suite *ScenarioIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *ScenarioIntegrationTestSuite) count(sql string, args ...any) int64 {
	var n int64
	suite.Require().NoError(suite.pg.DB.Raw(sql, args...).Scan(&n).Error)
	return n
}

func (suite *ScenarioIntegrationTestSuite) TestDemoScenario_MovesPackageToSecondShipment() {
	ctx := context.Background()
	suite.Require().NoError(suite.root.RunDemoScenario(ctx))

	var status string
	suite.Require().NoError(suite.pg.DB.Raw(`SELECT status FROM shipments WHERE shipment_id = 1001`).Scan(&status).Error)
	suite.Equal("in_transit", status)
	suite.Require().NoError(suite.pg.DB.Raw(`SELECT status FROM shipments WHERE shipment_id = 1002`).Scan(&status).Error)
	suite.Equal("pending", status)

	suite.Equal(int64(1), suite.count(`SELECT COUNT(*) FROM status_logs WHERE shipment_id = 1001 AND status = 'in_transit'`))
	suite.Equal(int64(1), suite.count(`SELECT COUNT(*) FROM driver_shipment_assignment WHERE driver_id = 1 AND shipment_id = 1001`))

	suite.Equal(int64(1), suite.count(
		`SELECT COUNT(*) FROM package_shipment_assignment WHERE package_id = 2001 AND removed_at IS NULL AND shipment_id = 1002`))
	suite.Equal(int64(0), suite.count(
		`SELECT COUNT(*) FROM package_shipment_assignment WHERE package_id = 2001 AND removed_at IS NULL AND shipment_id = 1001`))
	suite.Equal(int64(1), suite.count(
		`SELECT COUNT(*) FROM package_shipment_assignment WHERE package_id = 2001 AND shipment_id = 1001 AND removal_reason = 'reassigned'`))
	suite.Equal(int64(1), suite.count(
		`SELECT COUNT(*) FROM package_movement_log
		 WHERE package_id = 2001 AND from_shipment_id = 1001 AND to_shipment_id = 1002 AND movement_reason = 'reassignment'`))
}

func (suite *ScenarioIntegrationTestSuite) TestDemoScenario_RerunIsSkipped() {
	ctx := context.Background()
	suite.Require().NoError(suite.root.RunDemoScenario(ctx))
	suite.Require().NoError(suite.root.SeedDemo(ctx))
	suite.Require().NoError(suite.root.RunDemoScenario(ctx))

	suite.Equal(int64(1), suite.count(`SELECT COUNT(*) FROM package_shipment_assignment WHERE package_id = 2001 AND removed_at IS NULL`))
	suite.Equal(int64(1), suite.count(`SELECT COUNT(*) FROM package_movement_log WHERE package_id = 2001`))
}

func (suite *ScenarioIntegrationTestSuite) TestPrintReports() {
	ctx := context.Background()
	suite.Require().NoError(suite.root.RunDemoScenario(ctx))

	var out bytes.Buffer
	suite.Require().NoError(suite.root.PrintReports(ctx, &out, kernel.Now().Add(96*time.Hour)))

	suite.Contains(out.String(), "Status log of shipment 1001")
	suite.Contains(out.String(), "Left central hub")
	suite.Contains(out.String(), "Central Hub")
	suite.Contains(out.String(), "Dana Driver")
	suite.Contains(out.String(), "2.50")
}

func (suite *ScenarioIntegrationTestSuite) TestCapacityLimit_RejectsAssignmentBeyondLimit() {
	ctx := context.Background()
	createShipment := suite.root.CreateCreateShipmentCommandHandler()
	assign := suite.root.CreateAssignShipmentToDriverCommandHandler()
	now := kernel.Now()

	for _, id := range []int64{3001, 3002, 3003} {
		cmd, err := commands.NewCreateShipmentCommand(id, 1, 2, 1, 2, now.Add(24*time.Hour))
		suite.Require().NoError(err)
		suite.Require().NoError(createShipment.Handle(ctx, cmd))
	}

	// Driver 2 is seeded with a limit of 2.
	for i, id := range []int64{3001, 3002, 3003} {
		cmd, err := commands.NewAssignShipmentToDriverCommand(2, id, 1, 2, now, now.Add(4*time.Hour))
		suite.Require().NoError(err)
		err = assign.Handle(ctx, cmd)
		if i < 2 {
			suite.Require().NoError(err)
			continue
		}
		suite.ErrorIs(err, driver.ErrCapacityExceeded)
	}

	suite.Equal(int64(2), suite.count(`SELECT COUNT(*) FROM driver_shipment_assignment WHERE driver_id = 2`))
}

func (suite *ScenarioIntegrationTestSuite) TestCapacityLimit_SixthAssignmentToDefaultLimitIsRejected() {
	ctx := context.Background()
	assign := suite.root.CreateAssignShipmentToDriverCommandHandler()
	now := kernel.Now()

	shipmentIDs := []int64{3101, 3102, 3103, 3104, 3105, 3106}
	suite.createShipments(ctx, shipmentIDs...)

	// Driver 1 is seeded with a limit of 5.
	for _, id := range shipmentIDs[:5] {
		cmd, err := commands.NewAssignShipmentToDriverCommand(1, id, 1, 2, now, now.Add(4*time.Hour))
		suite.Require().NoError(err)
		suite.Require().NoError(assign.Handle(ctx, cmd))
	}
	before := suite.count(`SELECT COUNT(*) FROM driver_shipment_assignment`)

	cmd, err := commands.NewAssignShipmentToDriverCommand(1, 3106, 1, 2, now, now.Add(4*time.Hour))
	suite.Require().NoError(err)
	err = assign.Handle(ctx, cmd)

	var capacityErr *driver.CapacityExceededError
	suite.Require().ErrorAs(err, &capacityErr)
	suite.Equal(int64(5), capacityErr.Active)
	suite.Equal(5, capacityErr.Limit)

	suite.Equal(before, suite.count(`SELECT COUNT(*) FROM driver_shipment_assignment`))
	suite.Equal(int64(0), suite.count(`SELECT COUNT(*) FROM driver_shipment_assignment WHERE shipment_id = 3106`))
	suite.Equal(int64(5), suite.count(`SELECT COUNT(*) FROM driver_shipment_assignment WHERE driver_id = 1 AND delivered = FALSE`))
}

func TestScenarioIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioIntegrationTestSuite))
}
