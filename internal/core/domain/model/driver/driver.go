package driver

import (
	"errors"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"
)

const (
	// DefaultCapacityLimit applies when a driver is registered with limit 0.
	DefaultCapacityLimit = 5
	MaxCapacityLimit     = 1000

	MaxNameLength          = 100
	MaxLicenseNumberLength = 50
	MaxContactLength       = 50
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is a courier who can be assigned shipments.
type Driver struct {
	id            kernel.ID
	name          string
	licenseNumber string
	contact       string
	capacityLimit int

	isConstructed bool
}

// NewDriver validates and creates a driver. A capacityLimit of 0 selects
// DefaultCapacityLimit; negative limits are rejected.
func NewDriver(id kernel.ID, name, licenseNumber, contact string, capacityLimit int) (*Driver, error) {
	d := &Driver{isConstructed: true}

	if capacityLimit == 0 {
		capacityLimit = DefaultCapacityLimit
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenseNumber(licenseNumber),
		d.setContact(contact),
		d.setCapacityLimit(capacityLimit),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver read from storage.
func RestoreDriver(id kernel.ID, name, licenseNumber, contact string, capacityLimit int) (*Driver, error) {
	return NewDriver(id, name, licenseNumber, contact, capacityLimit)
}

func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.ID         { return d.id }
func (d *Driver) Name() string          { return d.name }
func (d *Driver) LicenseNumber() string { return d.licenseNumber }
func (d *Driver) Contact() string       { return d.contact }
func (d *Driver) CapacityLimit() int    { return d.capacityLimit }

// CheckCapacity returns a CapacityExceededError when active undelivered
// assignments already reach the limit.
func (d *Driver) CheckCapacity(active int64) error {
	if active >= int64(d.capacityLimit) {
		return NewCapacityExceededError(d.id.Int64(), active, d.capacityLimit)
	}
	return nil
}

func (d *Driver) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	v, err := kernel.RequiredText("name", name, MaxNameLength)
	if err != nil {
		return err
	}
	d.name = v
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	v, err := kernel.RequiredText("licenseNumber", licenseNumber, MaxLicenseNumberLength)
	if err != nil {
		return err
	}
	d.licenseNumber = v
	return nil
}

func (d *Driver) setContact(contact string) error {
	v, err := kernel.OptionalText("contact", contact, MaxContactLength)
	if err != nil {
		return err
	}
	d.contact = v
	return nil
}

func (d *Driver) setCapacityLimit(limit int) error {
	if limit < 1 || limit > MaxCapacityLimit {
		return errs.NewValueIsOutOfRangeError("capacityLimit", limit, 1, MaxCapacityLimit)
	}
	d.capacityLimit = limit
	return nil
}
