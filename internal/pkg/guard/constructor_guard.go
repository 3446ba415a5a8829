// Package guard provides ConstructorGuard, a marker that lets value objects and
// commands detect whether they were built through their constructor or are a
// zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is not usable.
// Only NewConstructorGuard produces a guard that passes Validate.
//
// Example:
//
//	type IssueDeliveryNoteCommand struct {
//	    noteID string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c IssueDeliveryNoteCommand) Validate() error {
//	    return c.guard.Validate(ErrIssueDeliveryNoteCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
