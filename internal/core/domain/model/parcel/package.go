package parcel

import (
	"errors"
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const MaxDescriptionLength = 500

var (
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

	// MaxWeight is the largest weight NUMERIC(8,2) can hold.
	MaxWeight = decimal.RequireFromString("999999.99")
	minWeight = decimal.RequireFromString("0.01")
)

// Package is a physical item carried inside a shipment.
type Package struct {
	id          kernel.ID
	weight      decimal.Decimal
	description string
	createdAt   time.Time
	isActive    bool

	isConstructed bool
}

// NewPackage creates an active package.
func NewPackage(id kernel.ID, weight decimal.Decimal, description string, createdAt time.Time) (*Package, error) {
	p := &Package{
		createdAt:     createdAt,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setWeight(weight),
		p.setDescription(description),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return p, nil
}

// RestorePackage rebuilds a package read from storage.
func RestorePackage(
	id kernel.ID,
	weight decimal.Decimal,
	description string,
	createdAt time.Time,
	isActive bool,
) (*Package, error) {
	p := &Package{
		createdAt:     createdAt,
		isActive:      isActive,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setWeight(weight),
		p.setDescription(description),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

func (p *Package) ID() kernel.ID           { return p.id }
func (p *Package) Weight() decimal.Decimal { return p.weight }
func (p *Package) Description() string     { return p.description }
func (p *Package) CreatedAt() time.Time    { return p.createdAt }
func (p *Package) IsActive() bool          { return p.isActive }

// ValidateWeight checks a weight against the stored column's bounds.
func ValidateWeight(weight decimal.Decimal) error {
	if weight.LessThan(minWeight) || weight.GreaterThan(MaxWeight) {
		return errs.NewValueIsOutOfRangeError("weight", weight.String(), minWeight.String(), MaxWeight.String())
	}
	if !weight.Equal(weight.Round(2)) {
		return errs.NewValueIsInvalidErrorWithCause("weight", errors.New("more than two decimal places"))
	}
	return nil
}

func (p *Package) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setWeight(weight decimal.Decimal) error {
	if err := ValidateWeight(weight); err != nil {
		return err
	}
	p.weight = weight
	return nil
}

func (p *Package) setDescription(description string) error {
	d, err := kernel.RequiredText("description", description, MaxDescriptionLength)
	if err != nil {
		return err
	}
	p.description = d
	return nil
}
