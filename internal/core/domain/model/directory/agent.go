package directory

import (
	"errors"

	"ledger/internal/core/domain/model/kernel"
)

// Agent is a staff member who handles packages and records status changes.
type Agent struct {
	id       kernel.ID
	name     string
	contacts string
}

func NewAgent(id kernel.ID, name, contacts string) (*Agent, error) {
	n, nameErr := kernel.RequiredText("name", name, MaxNameLength)
	c, contactsErr := kernel.OptionalText("contacts", contacts, MaxAgentContactsLength)
	if err := errors.Join(id.Validate(), nameErr, contactsErr); err != nil {
		return nil, err
	}
	return &Agent{id: id, name: n, contacts: c}, nil
}

func (a *Agent) ID() kernel.ID    { return a.id }
func (a *Agent) Name() string     { return a.name }
func (a *Agent) Contacts() string { return a.contacts }
