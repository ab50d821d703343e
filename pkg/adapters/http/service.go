package http

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/markov"
	"github.com/aretw0/markov/internal/presentation/graph"
)

// WalkResponse is the JSON rendering of one walk.
type WalkResponse struct {
	ID     string   `json:"id"`
	States []string `json:"states"`
	Length int      `json:"length"`
	Reason string   `json:"reason"`
}

// ChainService serves walks and the graph of one chain. Chains are not safe
// for concurrent use, so every call holds the service lock.
type ChainService[T any] struct {
	mu         sync.Mutex
	chain      *markov.Chain[T]
	label      func(T) string
	startFirst bool
}

// NewChainService wraps chain. label renders one payload; startFirst makes
// every walk begin at the first state instead of a random one.
func NewChainService[T any](chain *markov.Chain[T], label func(T) string, startFirst bool) *ChainService[T] {
	return &ChainService[T]{chain: chain, label: label, startFirst: startFirst}
}

// Walks generates count walks of at most maxLength states.
func (s *ChainService[T]) Walks(ctx context.Context, count, maxLength int) ([]WalkResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var start *markov.Node[T]
	if s.startFirst {
		first, ok := s.chain.First()
		if !ok {
			return nil, markov.ErrNoStartState
		}
		start = first
	}

	walks := make([]WalkResponse, 0, count)
	for i := 0; i < count; i++ {
		walk, err := s.chain.Generate(ctx, start, maxLength)
		if err != nil {
			return walks, fmt.Errorf("walk %d: %w", i+1, err)
		}
		resp := WalkResponse{
			ID:     walk.ID,
			States: make([]string, 0, walk.Len()),
			Length: walk.Len(),
			Reason: string(walk.Reason),
		}
		for _, st := range walk.States {
			resp.States = append(resp.States, s.label(st))
		}
		walks = append(walks, resp)
	}
	return walks, nil
}

// Mermaid renders the chain as a Mermaid flowchart.
func (s *ChainService[T]) Mermaid() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return graph.GenerateMermaid(s.chain.Nodes(), s.label, s.chain.Adapter().IsTerminal, nil)
}

// Healthy reports whether the chain can still generate.
func (s *ChainService[T]) Healthy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chain.Len() == 0 {
		return errors.New("chain is empty")
	}
	return nil
}
