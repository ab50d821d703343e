package validator

import (
	"errors"
	"fmt"

	"github.com/aretw0/markov/internal/runtime"
	"github.com/aretw0/markov/pkg/domain"
)

// Report lists the structural problems found in a chain, by node index.
type Report struct {
	// DeadEnds are non-terminal states without outgoing transitions.
	// A walk reaching one of them fails.
	DeadEnds []int

	// Unreachable are states that no walk starting at the first state can visit.
	// Random-start walks may still begin there.
	Unreachable []int
}

// Err joins one error per dead end, or returns nil when there is none.
// Unreachable states are informational and never make Err fail.
func (r Report) Err() error {
	errs := make([]error, 0, len(r.DeadEnds))
	for _, idx := range r.DeadEnds {
		errs = append(errs, fmt.Errorf("state %d: %w", idx, domain.ErrNoTransitions))
	}
	return errors.Join(errs...)
}

// ValidateChain reports non-terminal states without transitions
// and crawls the chain from its first state to find unreachable states.
func ValidateChain[T any](db *runtime.Database[T]) (Report, error) {
	var report Report
	if db.Closed() {
		return report, domain.ErrChainClosed
	}

	adapter := db.Adapter()
	nodes := db.Nodes()

	for _, n := range nodes {
		if len(n.Frequencies()) == 0 && !adapter.IsTerminal(n.Data()) {
			report.DeadEnds = append(report.DeadEnds, n.Index())
		}
	}

	start, ok := db.First()
	if !ok {
		return report, nil
	}

	// Breadth-first crawl over frequency targets
	visited := make([]bool, len(nodes))
	queue := []*runtime.Node[T]{start}
	visited[start.Index()] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, f := range current.Frequencies() {
			if !visited[f.Target.Index()] {
				visited[f.Target.Index()] = true
				queue = append(queue, f.Target)
			}
		}
	}

	for i, seen := range visited {
		if !seen {
			report.Unreachable = append(report.Unreachable, i)
		}
	}

	return report, nil
}
