package commands

import (
	"errors"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrRegisterLocationCommandIsNotConstructed = errors.New(
		"RegisterLocationCommand must be created via NewRegisterLocationCommand constructor",
	)
	ErrRegisterAgentCommandIsNotConstructed = errors.New(
		"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
	)
)

// RegisterCustomerCommand adds a sender or recipient.
type RegisterCustomerCommand struct {
	customerID kernel.ID
	name       string
	contact    string

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(customerID int64, name, contact string) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{name: name, contact: contact, guard: guard.NewConstructorGuard()}
	if err := setID(&cmd.customerID, "customerID", customerID); err != nil {
		return RegisterCustomerCommand{}, err
	}
	return cmd, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) CustomerID() kernel.ID { return c.customerID }
func (c RegisterCustomerCommand) Name() string          { return c.name }
func (c RegisterCustomerCommand) Contact() string       { return c.contact }

// RegisterLocationCommand adds a location, optionally below a parent location.
type RegisterLocationCommand struct {
	locationID kernel.ID
	name       string
	parentID   *kernel.ID
	postalCode string

	guard guard.ConstructorGuard
}

func NewRegisterLocationCommand(locationID int64, name string, parentID *int64, postalCode string) (RegisterLocationCommand, error) {
	cmd := RegisterLocationCommand{name: name, postalCode: postalCode, guard: guard.NewConstructorGuard()}

	parent, err := kernel.NewOptionalID("parentLocationID", parentID)
	if err = errors.Join(setID(&cmd.locationID, "locationID", locationID), err); err != nil {
		return RegisterLocationCommand{}, err
	}
	cmd.parentID = parent

	return cmd, nil
}

func (c RegisterLocationCommand) Validate() error {
	return c.guard.Validate(ErrRegisterLocationCommandIsNotConstructed)
}

func (c RegisterLocationCommand) LocationID() kernel.ID { return c.locationID }
func (c RegisterLocationCommand) Name() string          { return c.name }
func (c RegisterLocationCommand) ParentID() *kernel.ID  { return c.parentID }
func (c RegisterLocationCommand) PostalCode() string    { return c.postalCode }

// RegisterAgentCommand adds an agent who records status changes and moves.
type RegisterAgentCommand struct {
	agentID  kernel.ID
	name     string
	contacts string

	guard guard.ConstructorGuard
}

func NewRegisterAgentCommand(agentID int64, name, contacts string) (RegisterAgentCommand, error) {
	cmd := RegisterAgentCommand{name: name, contacts: contacts, guard: guard.NewConstructorGuard()}
	if err := setID(&cmd.agentID, "agentID", agentID); err != nil {
		return RegisterAgentCommand{}, err
	}
	return cmd, nil
}

func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

func (c RegisterAgentCommand) AgentID() kernel.ID { return c.agentID }
func (c RegisterAgentCommand) Name() string       { return c.name }
func (c RegisterAgentCommand) Contacts() string   { return c.contacts }
