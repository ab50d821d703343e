package runtime

import (
	"github.com/aretw0/markov/pkg/domain"
)

// AddTransition records one observation of the edge from -> to.
func (d *Database[T]) AddTransition(from, to *Node[T]) error {
	return d.AddTransitionN(from, to, 1)
}

// AddTransitionN records count observations of the edge from -> to.
// An existing entry for a target comparing equal to `to` is incremented;
// otherwise a new entry is appended, so entries keep first-occurrence order.
func (d *Database[T]) AddTransitionN(from, to *Node[T], count int) error {
	if d.closed {
		return domain.ErrChainClosed
	}
	if !d.Owns(from) || !d.Owns(to) {
		return domain.ErrForeignNode
	}
	if count < 1 {
		return domain.ErrInvalidWeight
	}

	for i := range from.frequencies {
		if d.adapter.Compare(to.data, from.frequencies[i].Target.data) == 0 {
			from.frequencies[i].Count += count
			return nil
		}
	}
	from.frequencies = append(from.frequencies, Frequency[T]{Target: to, Count: count})
	return nil
}
