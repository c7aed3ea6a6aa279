package di

import (
	"errors"
	"reflect"
)

// ErrNotFound is the sentinel behind every [LookupError]; use errors.Is to
// detect a missing value regardless of which type was requested.
var ErrNotFound = errors.New("di: no value for requested type")

// LookupError is returned by [Get] when no value of the requested type is
// stored. Type identifies what was asked for.
type LookupError struct {
	Type reflect.Type
}

// Error implements the error interface.
func (e LookupError) Error() string {
	// Example: di: no value of type main.Config in registry
	return "di: no value of type " + e.Type.String() + " in registry"
}

// Is reports ErrNotFound so callers can match without knowing the type.
func (e LookupError) Is(target error) bool { return target == ErrNotFound }

// BuildError is returned by [Build] when a type's construction logic fails.
// Type is the type that failed to build; Err is whatever its FromRegistry
// returned: a nested LookupError, a nested BuildError from a transitive
// dependency, or a domain error.
type BuildError struct {
	Type reflect.Type
	Err  error
}

// Error implements the error interface.
func (e BuildError) Error() string {
	// Example: di: building main.Outer: di: no value of type main.Config in registry
	return "di: building " + e.Type.String() + ": " + e.Err.Error()
}

// Unwrap exposes the cause, so errors.Is/errors.As walk the whole failed
// dependency chain.
func (e BuildError) Unwrap() error { return e.Err }
