package stateset

import (
	"errors"
	"fmt"
)

// Programmer errors. Sets panic with an error wrapping one of these; they are
// not part of any recoverable error path.
var (
	// ErrAlreadyCreated is raised when Create is called on an active Set.
	ErrAlreadyCreated = errors.New("stateset: already created")

	// ErrNotCreated is raised when an insertion targets an inactive Set.
	ErrNotCreated = errors.New("stateset: not created")

	// ErrOutOfRange is raised for identifiers outside [0, universeSize).
	ErrOutOfRange = errors.New("stateset: identifier out of range")

	// ErrUniverseMismatch is raised when two sets of different universe
	// sizes are compared.
	ErrUniverseMismatch = errors.New("stateset: universe size mismatch")
)

// RangeError describes an identifier outside its universe.
//
// It unwraps to ErrOutOfRange.
type RangeError struct {
	ID           StateID
	UniverseSize uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("stateset: identifier %d out of range [0, %d)", e.ID, e.UniverseSize)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// CheckRange panics with a *RangeError if id is not below universeSize.
func CheckRange(id StateID, universeSize uint32) {
	if uint32(id) >= universeSize {
		panic(&RangeError{ID: id, UniverseSize: universeSize})
	}
}

// CheckCreate panics if a Set that is already active is created again.
func CheckCreate(active bool) {
	if active {
		panic(ErrAlreadyCreated)
	}
}

// CheckActive panics if an insertion targets an inactive Set.
func CheckActive(active bool, op string) {
	if !active {
		panic(fmt.Errorf("%w: %s", ErrNotCreated, op))
	}
}

// CheckUniverse panics if a and b are both active with different universe
// sizes. Inactive sets carry no universe and match anything.
func CheckUniverse(a, b Set) {
	if !a.IsActive() || !b.IsActive() {
		return
	}
	if a.UniverseSize() != b.UniverseSize() {
		panic(fmt.Errorf("%w: %d != %d", ErrUniverseMismatch, a.UniverseSize(), b.UniverseSize()))
	}
}
