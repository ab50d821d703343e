package dsl

// NodeBuilder provides a fluent API for the transitions leaving one state.
type NodeBuilder[T any] struct {
	state   T
	builder *Builder[T]
}

// Go records one observation of the transition to target.
func (n *NodeBuilder[T]) Go(target T) *NodeBuilder[T] {
	return n.GoN(target, 1)
}

// GoN records count observations of the transition to target.
// A count below 1 makes Build fail with markov.ErrInvalidWeight.
func (n *NodeBuilder[T]) GoN(target T, count int) *NodeBuilder[T] {
	n.builder.edges = append(n.builder.edges, edge[T]{from: n.state, to: target, count: count})
	return n
}

// Add declares another state; it lets declarations chain fluently.
func (n *NodeBuilder[T]) Add(state T) *NodeBuilder[T] {
	return n.builder.Add(state)
}
