package ordered

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a required slice, slice pointer or
	// function argument is nil.
	ErrInvalidArgument = errors.New("ordered: invalid argument")

	// ErrEmptyCollection indicates a search over a zero-length slice.
	ErrEmptyCollection = errors.New("ordered: collection is empty")

	// ErrNotFound indicates no element's projected key equals the target.
	ErrNotFound = errors.New("ordered: key not found")
)

// nilArg wraps ErrInvalidArgument with the name of the offending parameter.
func nilArg(name string) error {
	return fmt.Errorf("%w: %s is nil", ErrInvalidArgument, name)
}
