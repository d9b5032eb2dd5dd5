package machine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDefinition = errors.New("invalid machine definition")
	ErrUnknownState      = errors.New("unknown state")
)

// NewErrUnknownState wraps ErrUnknownState with the offending state name.
func NewErrUnknownState(state string) error {
	return fmt.Errorf("%w: '%s'", ErrUnknownState, state)
}

// ErrNoTransitionAvailable indicates the state has no transition for the given input.
type ErrNoTransitionAvailable struct {
	StateName string
	Input     string
}

func (e *ErrNoTransitionAvailable) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for input '%s'", e.StateName, e.Input)
}

func NewErrNoTransitionAvailable(stateName, input string) *ErrNoTransitionAvailable {
	return &ErrNoTransitionAvailable{
		StateName: stateName,
		Input:     input,
	}
}

func IsNoTransitionAvailableError(err error) bool {
	var e *ErrNoTransitionAvailable
	return errors.As(err, &e)
}
