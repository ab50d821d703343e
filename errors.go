package markov

import "github.com/aretw0/markov/pkg/domain"

// Errors returned by Chain operations. They alias the pkg/domain sentinels so
// errors.Is works with either.
var (
	ErrAllocation    = domain.ErrAllocation
	ErrChainClosed   = domain.ErrChainClosed
	ErrForeignNode   = domain.ErrForeignNode
	ErrInvalidWeight = domain.ErrInvalidWeight
	ErrNoTransitions = domain.ErrNoTransitions
	ErrNoStartState  = domain.ErrNoStartState
	ErrInvalidLength = domain.ErrInvalidLength
	ErrStateNotFound = domain.ErrStateNotFound
)
