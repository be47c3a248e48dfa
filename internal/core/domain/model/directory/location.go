package directory

import (
	"errors"
	"fmt"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"
)

// Location is a hub or depot. Locations form a tree through parentID; a
// location may not be its own parent, deeper cycles are not detected.
type Location struct {
	id         kernel.ID
	name       string
	parentID   *kernel.ID
	postalCode string
}

func NewLocation(id kernel.ID, name string, parentID *kernel.ID, postalCode string) (*Location, error) {
	n, nameErr := kernel.RequiredText("name", name, MaxNameLength)
	p, postalErr := kernel.OptionalText("postalCode", postalCode, MaxPostalCodeLength)
	if err := errors.Join(id.Validate(), nameErr, postalErr); err != nil {
		return nil, err
	}
	if parentID != nil && parentID.IsEqual(id) {
		return nil, errs.NewValueIsInvalidErrorWithCause("parentLocationID",
			fmt.Errorf("location %s cannot be its own parent", id))
	}
	return &Location{id: id, name: n, parentID: parentID, postalCode: p}, nil
}

func (l *Location) ID() kernel.ID        { return l.id }
func (l *Location) Name() string         { return l.name }
func (l *Location) ParentID() *kernel.ID { return l.parentID }
func (l *Location) PostalCode() string   { return l.postalCode }
