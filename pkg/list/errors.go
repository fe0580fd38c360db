package list

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required content, node or head is missing
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when a search finds no matching content
	ErrNotFound = errors.New("not found")
	// ErrEmptyList is returned when searching an empty list
	ErrEmptyList = fmt.Errorf("list is empty: %w", ErrNotFound)
	// ErrPrecondition is returned when a node is not where the operation needs it to be
	ErrPrecondition = errors.New("precondition violated")
	// ErrCorrupt is returned by Check when a structural invariant does not hold
	ErrCorrupt = errors.New("list corrupt")
)
