package domain

// StopReason explains why a walk ended.
type StopReason string

const (
	StopTerminal  StopReason = "terminal"   // A terminal state was emitted
	StopMaxLength StopReason = "max_length" // The length bound was reached
	StopCanceled  StopReason = "canceled"   // The context was cancelled between steps
	StopFailed    StopReason = "failed"     // The walk hit an error (e.g. a non-terminal dead end)
)

// Walk is the outcome of one generation.
type Walk[T any] struct {
	// ID identifies the walk in events and logs.
	ID string `json:"id"`

	// States holds the emitted payloads in order. They are the chain's own
	// copies and stay valid until the chain is closed; do not mutate them.
	States []T `json:"states"`

	// Reason tells why the walk stopped.
	Reason StopReason `json:"reason"`
}

// Len returns the number of emitted states.
func (w Walk[T]) Len() int {
	return len(w.States)
}

// Last returns the final emitted state.
func (w Walk[T]) Last() (T, bool) {
	if len(w.States) == 0 {
		var zero T
		return zero, false
	}
	return w.States[len(w.States)-1], true
}
