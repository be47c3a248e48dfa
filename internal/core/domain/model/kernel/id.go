package kernel

import (
	"strconv"

	"ledger/internal/pkg/errs"
)

// ID is a business identifier supplied by the caller, for example a shipment
// or package number printed on a label. Valid ids are strictly positive.
type ID struct {
	value int64
}

// NewID returns an ID for value, or a ValueIsOutOfRangeError naming paramName
// when value is not positive.
func NewID(paramName string, value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsOutOfRangeError(paramName, value, 1, int64(^uint64(0)>>1))
	}
	return ID{value: value}, nil
}

// MustID is NewID for literals known to be valid. It panics otherwise.
func MustID(value int64) ID {
	id, err := NewID("id", value)
	if err != nil {
		panic(err)
	}
	return id
}

// NewOptionalID maps a nil or zero value to nil, anything else through NewID.
func NewOptionalID(paramName string, value *int64) (*ID, error) {
	if value == nil || *value == 0 {
		return nil, nil
	}
	id, err := NewID(paramName, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (i ID) Int64() int64 {
	return i.value
}

func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

func (i ID) IsZero() bool {
	return i.value == 0
}

func (i ID) Validate() error {
	if i.value <= 0 {
		return errs.NewValueIsRequiredError("ID")
	}
	return nil
}

// Int64Ptr converts an optional ID to its storage form.
func Int64Ptr(id *ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.value
	return &v
}

// IDFromPtr restores an optional ID read from storage. Non-positive values map to nil.
func IDFromPtr(v *int64) *ID {
	if v == nil || *v <= 0 {
		return nil
	}
	return &ID{value: *v}
}
