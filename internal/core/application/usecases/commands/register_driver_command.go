package commands

import (
	"errors"

	"ledger/internal/core/domain/model/driver"
	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"
	"ledger/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand adds a driver. A capacity limit of 0 selects
// driver.DefaultCapacityLimit.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.ID
	name          string
	licenseNumber string
	contact       string
	capacityLimit int

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(
	driverID int64,
	name, licenseNumber, contact string,
	capacityLimit int,
) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		name:          name,
		licenseNumber: licenseNumber,
		contact:       contact,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.driverID, "driverID", driverID),
		cmd.setCapacityLimit(capacityLimit),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() kernel.ID   { return c.driverID }
func (c RegisterDriverCommand) Name() string          { return c.name }
func (c RegisterDriverCommand) LicenseNumber() string { return c.licenseNumber }
func (c RegisterDriverCommand) Contact() string       { return c.contact }
func (c RegisterDriverCommand) CapacityLimit() int    { return c.capacityLimit }

func (c *RegisterDriverCommand) setCapacityLimit(limit int) error {
	if limit < 0 || limit > driver.MaxCapacityLimit {
		return errs.NewValueIsOutOfRangeError("capacityLimit", limit, 0, driver.MaxCapacityLimit)
	}
	c.capacityLimit = limit
	return nil
}
