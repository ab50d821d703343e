package runtime

import (
	"fmt"

	"github.com/aretw0/markov/pkg/domain"
	"github.com/aretw0/markov/pkg/ports"
)

// Node wraps one owned payload of the chain together with its outgoing
// frequency list.
type Node[T any] struct {
	data        T
	index       int
	frequencies []Frequency[T]
	owner       *Database[T]
}

// Frequency is a weighted edge from a node to Target. Target is a plain
// reference into the owning database; dropping a Frequency never releases it.
type Frequency[T any] struct {
	Target *Node[T]
	Count  int
}

// Data returns the node's payload. The payload is owned by the chain.
func (n *Node[T]) Data() T {
	return n.data
}

// Index returns the node's position in insertion order.
func (n *Node[T]) Index() int {
	return n.index
}

// Frequencies returns a copy of the outgoing edges in first-occurrence order.
func (n *Node[T]) Frequencies() []Frequency[T] {
	out := make([]Frequency[T], len(n.frequencies))
	copy(out, n.frequencies)
	return out
}

// TotalWeight sums the counts of every outgoing edge.
func (n *Node[T]) TotalWeight() int {
	total := 0
	for _, f := range n.frequencies {
		total += f.Count
	}
	return total
}

// Database is the insertion-ordered, deduplicating store of a chain's states.
// Not safe for concurrent use.
type Database[T any] struct {
	adapter ports.Adapter[T]
	hasher  ports.Hasher[T]
	nodes   []*Node[T]
	index   map[uint64][]*Node[T]
	closed  bool
}

// NewDatabase creates an empty database driven by adapter.
// If the adapter also implements ports.Hasher, lookups go through a hash index.
func NewDatabase[T any](adapter ports.Adapter[T]) *Database[T] {
	db := &Database[T]{adapter: adapter}
	if h, ok := adapter.(ports.Hasher[T]); ok {
		db.hasher = h
		db.index = make(map[uint64][]*Node[T])
	}
	return db
}

// Adapter returns the capability set the database was built with.
func (d *Database[T]) Adapter() ports.Adapter[T] {
	return d.adapter
}

// Find returns the first node, in insertion order, whose payload compares
// equal to data.
func (d *Database[T]) Find(data T) (*Node[T], bool) {
	candidates := d.nodes
	if d.hasher != nil {
		candidates = d.index[d.hasher.Hash(data)]
	}
	for _, n := range candidates {
		if d.adapter.Compare(n.data, data) == 0 {
			return n, true
		}
	}
	return nil, false
}

// InsertOrGet returns the node holding data, creating it when the state is new.
// A new node owns a clone of data and starts with no transitions.
// A clone failure leaves the database untouched and wraps domain.ErrAllocation.
func (d *Database[T]) InsertOrGet(data T) (*Node[T], error) {
	if d.closed {
		return nil, domain.ErrChainClosed
	}
	if n, ok := d.Find(data); ok {
		return n, nil
	}

	owned, err := d.adapter.Clone(data)
	if err != nil {
		return nil, fmt.Errorf("%w: clone state: %v", domain.ErrAllocation, err)
	}

	n := &Node[T]{
		data:  owned,
		index: len(d.nodes),
		owner: d,
	}
	d.nodes = append(d.nodes, n)
	if d.hasher != nil {
		key := d.hasher.Hash(owned)
		d.index[key] = append(d.index[key], n)
	}
	return n, nil
}

// Len returns the number of states.
func (d *Database[T]) Len() int {
	return len(d.nodes)
}

// At returns the node at insertion position i.
func (d *Database[T]) At(i int) *Node[T] {
	return d.nodes[i]
}

// First returns the oldest node, the default start of a walk.
func (d *Database[T]) First() (*Node[T], bool) {
	if len(d.nodes) == 0 {
		return nil, false
	}
	return d.nodes[0], true
}

// Nodes returns the nodes in insertion order. The slice is a copy; the nodes are not.
func (d *Database[T]) Nodes() []*Node[T] {
	out := make([]*Node[T], len(d.nodes))
	copy(out, d.nodes)
	return out
}

// Owns reports whether n was created by this database and is still live.
func (d *Database[T]) Owns(n *Node[T]) bool {
	return n != nil && n.owner == d && !d.closed
}

// Closed reports whether Release has run.
func (d *Database[T]) Closed() bool {
	return d.closed
}

// Release tears the database down: every payload goes back to the adapter
// exactly once and every node is detached. Calling it again is a no-op.
func (d *Database[T]) Release() {
	if d.closed {
		return
	}
	var zero T
	for _, n := range d.nodes {
		n.frequencies = nil
		d.adapter.Release(n.data)
		n.data = zero
		n.owner = nil
	}
	d.nodes = nil
	d.index = nil
	d.closed = true
}
