package domain

import (
	"errors"
	"fmt"
)

// ErrAllocation is returned when a payload copy or a node cannot be produced.
var ErrAllocation = errors.New("allocation failure")

// ErrChainClosed is returned by any operation on a chain after teardown.
var ErrChainClosed = errors.New("chain is closed")

// ErrForeignNode is returned when a node does not belong to the chain it is used with.
var ErrForeignNode = errors.New("node does not belong to this chain")

// ErrInvalidWeight is returned when a transition is declared with a non-positive count.
var ErrInvalidWeight = errors.New("transition weight must be positive")

// ErrNoTransitions is returned when the selector is asked to advance from a node
// with an empty frequency list.
var ErrNoTransitions = errors.New("state has no outgoing transitions")

// ErrNoStartState is returned when a random start is requested but every state is terminal.
var ErrNoStartState = errors.New("no non-terminal state to start from")

// ErrInvalidLength is returned when a walk is requested with a length bound below 1.
var ErrInvalidLength = errors.New("max length must be at least 1")

// ErrStateNotFound is returned when a payload does not match any state of the chain.
var ErrStateNotFound = errors.New("state not found")

// StepError reports the walk position at which generation failed.
// States emitted before the failure are still part of the returned walk.
type StepError struct {
	Step int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
