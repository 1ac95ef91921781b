package powerset

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyStates is returned when construction exceeds the state limit.
	ErrTooManyStates = errors.New("powerset: too many states")

	// ErrInvalidMapping is returned by Renumber for a mapping that is not a
	// compaction.
	ErrInvalidMapping = errors.New("powerset: invalid renumbering")
)

// StateLimitError reports which limit a construction hit.
//
// It unwraps to ErrTooManyStates.
type StateLimitError struct {
	Limit int
}

func (e *StateLimitError) Error() string {
	return fmt.Sprintf("powerset: construction exceeded %d states", e.Limit)
}

func (e *StateLimitError) Unwrap() error { return ErrTooManyStates }
