package commands

import (
	"errors"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/parcel"
	"ledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddPackageToShipmentCommandIsNotConstructed = errors.New(
	"AddPackageToShipmentCommand must be created via NewAddPackageToShipmentCommand constructor",
)

// AddPackageToShipmentCommand registers a new package and places it in a shipment.
// The weight must be positive, at most 999999.99 and carry no more than two
// decimal places.
type AddPackageToShipmentCommand struct { //nolint:recvcheck //using for validation
	packageID   kernel.ID
	weight      decimal.Decimal
	description string
	shipmentID  kernel.ID
	agentID     kernel.ID

	guard guard.ConstructorGuard
}

func NewAddPackageToShipmentCommand(
	packageID int64,
	weight decimal.Decimal,
	description string,
	shipmentID, agentID int64,
) (AddPackageToShipmentCommand, error) {
	cmd := AddPackageToShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.packageID, "packageID", packageID),
		cmd.setWeight(weight),
		cmd.setDescription(description),
		setID(&cmd.shipmentID, "shipmentID", shipmentID),
		setID(&cmd.agentID, "agentID", agentID),
	); err != nil {
		return AddPackageToShipmentCommand{}, err
	}

	return cmd, nil
}

func (c AddPackageToShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAddPackageToShipmentCommandIsNotConstructed)
}

func (c AddPackageToShipmentCommand) PackageID() kernel.ID    { return c.packageID }
func (c AddPackageToShipmentCommand) Weight() decimal.Decimal { return c.weight }
func (c AddPackageToShipmentCommand) Description() string     { return c.description }
func (c AddPackageToShipmentCommand) ShipmentID() kernel.ID   { return c.shipmentID }
func (c AddPackageToShipmentCommand) AgentID() kernel.ID      { return c.agentID }

func (c *AddPackageToShipmentCommand) setWeight(weight decimal.Decimal) error {
	if err := parcel.ValidateWeight(weight); err != nil {
		return err
	}
	c.weight = weight
	return nil
}

func (c *AddPackageToShipmentCommand) setDescription(description string) error {
	v, err := kernel.RequiredText("description", description, parcel.MaxDescriptionLength)
	if err != nil {
		return err
	}
	c.description = v
	return nil
}
