// Package guard provides the constructor-guard pattern used by commands,
// queries and value objects to reject zero-value instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not created through its constructor and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures that structs embedding it are only usable when
// created through their designated constructor function. A zero-value struct
// carries a zero-value guard and fails Validate.
//
// Example usage:
//
//	type AddMenuItemCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAddMenuItemCommand(name string) (AddMenuItemCommand, error) {
//	    if name == "" {
//	        return AddMenuItemCommand{}, errors.New("name is required")
//	    }
//	    return AddMenuItemCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AddMenuItemCommand) Validate() error {
//	    return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly
// constructed. Call it inside the holder's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
