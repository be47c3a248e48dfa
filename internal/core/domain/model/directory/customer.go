package directory

import (
	"errors"

	"ledger/internal/core/domain/model/kernel"
)

const (
	MaxNameLength            = 100
	MaxCustomerContactLength = 50
	MaxAgentContactsLength   = 100
	MaxPostalCodeLength      = 20
)

type Customer struct {
	id      kernel.ID
	name    string
	contact string
}

func NewCustomer(id kernel.ID, name, contact string) (*Customer, error) {
	n, nameErr := kernel.RequiredText("name", name, MaxNameLength)
	c, contactErr := kernel.OptionalText("contact", contact, MaxCustomerContactLength)
	if err := errors.Join(id.Validate(), nameErr, contactErr); err != nil {
		return nil, err
	}
	return &Customer{id: id, name: n, contact: c}, nil
}

func (c *Customer) ID() kernel.ID   { return c.id }
func (c *Customer) Name() string    { return c.name }
func (c *Customer) Contact() string { return c.contact }
