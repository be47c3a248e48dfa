package cmd

import (
	"context"
	"errors"
	"sync"
	"time"

	"ledger/internal/adapters/out/postgres/driverrepo"
	"ledger/internal/adapters/out/postgres/parcelrepo"
	"ledger/internal/core/application/usecases/commands"
	"ledger/internal/core/domain/model/driver"
	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/parcel"
	"ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

func (suite *ScenarioIntegrationTestSuite) createShipments(ctx context.Context, ids ...int64) {
	handler := suite.root.CreateCreateShipmentCommandHandler()
	estimated := kernel.Now().Add(24 * time.Hour)
	for _, id := range ids {
		cmd, err := commands.NewCreateShipmentCommand(id, 1, 2, 1, 2, estimated)
		suite.Require().NoError(err)
		suite.Require().NoError(handler.Handle(ctx, cmd))
	}
}

func (suite *ScenarioIntegrationTestSuite) TestConcurrentAssignments_NeverExceedCapacity() {
	ctx := context.Background()

	register, err := commands.NewRegisterDriverCommand(3, "Rae Runner", "LIC-3003", "555-0303", 5)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.root.CreateRegisterDriverCommandHandler().Handle(ctx, register))

	shipmentIDs := []int64{4001, 4002, 4003, 4004, 4005, 4006, 4007, 4008, 4009, 4010}
	suite.createShipments(ctx, shipmentIDs...)

	assign := suite.root.CreateAssignShipmentToDriverCommandHandler()
	now := kernel.Now()
	results := make([]error, len(shipmentIDs))

	var wg sync.WaitGroup
	for i, id := range shipmentIDs {
		cmd, err := commands.NewAssignShipmentToDriverCommand(3, id, 1, 2, now, now.Add(4*time.Hour))
		suite.Require().NoError(err)

		wg.Add(1)
		go func(i int, cmd commands.AssignShipmentToDriverCommand) {
			defer wg.Done()
			results[i] = assign.Handle(ctx, cmd)
		}(i, cmd)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, driver.ErrCapacityExceeded):
			rejected++
		default:
			suite.Failf("unexpected assignment error", "%v", err)
		}
	}
	suite.Equal(5, succeeded)
	suite.Equal(5, rejected)

	active, err := driverrepo.NewGormDriverRepository(suite.pg.DB).CountActiveAssignments(ctx, kernel.MustID(3))
	suite.Require().NoError(err)
	suite.Equal(int64(5), active)
}

func (suite *ScenarioIntegrationTestSuite) TestConcurrentMoves_LeaveOneOpenAssignment() {
	ctx := context.Background()
	suite.createShipments(ctx, 5001, 5002, 5003)

	add, err := commands.NewAddPackageToShipmentCommand(6001, decimal.RequireFromString("1.25"), "Lamp", 5001, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.root.CreateAddPackageToShipmentCommandHandler().Handle(ctx, add))

	move := suite.root.CreateMovePackageBetweenShipmentsCommandHandler()
	destinations := []int64{5002, 5003}
	results := make([]error, len(destinations))

	var wg sync.WaitGroup
	for i, to := range destinations {
		cmd, err := commands.NewMovePackageBetweenShipmentsCommand(
			6001, 5001, to, 1, parcel.MovementReassignment.String(), "",
		)
		suite.Require().NoError(err)

		wg.Add(1)
		go func(i int, cmd commands.MovePackageBetweenShipmentsCommand) {
			defer wg.Done()
			results[i] = move.Handle(ctx, cmd)
		}(i, cmd)
	}
	wg.Wait()

	var succeeded int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.True(
			errors.Is(err, errs.ErrPreconditionFailed) || errors.Is(err, errs.ErrConstraintViolation),
			"losing move failed with %v", err)
	}
	suite.Equal(1, succeeded)

	assignments, err := parcelrepo.NewGormPackageRepository(suite.pg.DB).ListAssignments(ctx, kernel.MustID(6001))
	suite.Require().NoError(err)

	var open int
	for _, a := range assignments {
		if a.IsOpen() {
			open++
		}
	}
	suite.Equal(1, open)
	suite.Len(assignments, 2)
	suite.Equal(int64(1), suite.count(`SELECT COUNT(*) FROM package_movement_log WHERE package_id = 6001`))
}
