package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks values that went through their constructor.
// Embed it in commands, queries and entities; the zero value fails Validate.
//
//	type AddPackageCommand struct {
//	    packageID kernel.ID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c AddPackageCommand) Validate() error {
//	    return c.guard.Validate(ErrAddPackageCommandNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError, or ErrDefaultConstructorGuard when it is nil,
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
