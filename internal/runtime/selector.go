package runtime

import (
	"github.com/aretw0/markov/pkg/domain"
	"github.com/aretw0/markov/pkg/ports"
)

// SelectNext draws the successor of node with probability proportional to
// the recorded counts. Entries are scanned in list order, which makes the
// draw reproducible for a given source.
func SelectNext[T any](src ports.Source, node *Node[T]) (*Node[T], error) {
	total := node.TotalWeight()
	if total <= 0 {
		return nil, domain.ErrNoTransitions
	}

	r := src.IntN(total)
	for _, f := range node.frequencies {
		if r < f.Count {
			return f.Target, nil
		}
		r -= f.Count
	}
	// Unreachable while counts stay positive.
	return node.frequencies[len(node.frequencies)-1].Target, nil
}
