package dsl

import (
	"fmt"

	"github.com/aretw0/markov"
	"github.com/aretw0/markov/pkg/ports"
)

type edge[T any] struct {
	from, to T
	count    int
}

// Builder records states and transitions until Build.
type Builder[T any] struct {
	states []T
	edges  []edge[T]
}

// New creates a new chain builder.
func New[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Add declares a state and returns a builder for its outgoing transitions.
// Declaring a state twice is harmless: Build deduplicates through the adapter.
func (b *Builder[T]) Add(state T) *NodeBuilder[T] {
	b.states = append(b.states, state)
	return &NodeBuilder[T]{state: state, builder: b}
}

// Sequence declares every state and one transition between each consecutive pair.
func (b *Builder[T]) Sequence(states ...T) *Builder[T] {
	for i, s := range states {
		b.states = append(b.states, s)
		if i > 0 {
			b.edges = append(b.edges, edge[T]{from: states[i-1], to: s, count: 1})
		}
	}
	return b
}

// Build creates a chain over adapter and replays the declarations into it.
// The chain is closed again if any declaration fails.
func (b *Builder[T]) Build(adapter ports.Adapter[T], opts ...markov.Option) (*markov.Chain[T], error) {
	chain, err := markov.New(adapter, opts...)
	if err != nil {
		return nil, err
	}

	for _, s := range b.states {
		if _, err := chain.Add(s); err != nil {
			_ = chain.Close()
			return nil, fmt.Errorf("failed to add state: %w", err)
		}
	}

	for i, e := range b.edges {
		from, err := chain.Add(e.from)
		if err != nil {
			_ = chain.Close()
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
		to, err := chain.Add(e.to)
		if err != nil {
			_ = chain.Close()
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
		if err := chain.AddTransitionN(from, to, e.count); err != nil {
			_ = chain.Close()
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
	}

	return chain, nil
}
