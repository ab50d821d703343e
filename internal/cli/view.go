package cli

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/markov"
	"github.com/aretw0/markov/internal/presentation/graph"
	"github.com/aretw0/markov/pkg/adapters/board"
	markovhttp "github.com/aretw0/markov/pkg/adapters/http"
)

// topStates is how many states the inspect summary lists.
const topStates = 10

// chainView is the payload-independent face of a loaded chain used by the
// graph, inspect, validate and serve commands.
type chainView interface {
	Name() string
	Len() int
	Mermaid() string
	Summary() (string, error)
	Validate() (markov.ValidationReport, error)
	Generator() markovhttp.Generator
	Close() error
}

type typedView[T any] struct {
	name       string
	chain      *markov.Chain[T]
	label      func(T) string
	startFirst bool
}

func (v *typedView[T]) Name() string { return v.name }

func (v *typedView[T]) Len() int { return v.chain.Len() }

func (v *typedView[T]) Close() error { return v.chain.Close() }

func (v *typedView[T]) Mermaid() string {
	return graph.GenerateMermaid(v.chain.Nodes(), v.label, v.chain.Adapter().IsTerminal, nil)
}

func (v *typedView[T]) Validate() (markov.ValidationReport, error) {
	return v.chain.Validate()
}

func (v *typedView[T]) Generator() markovhttp.Generator {
	return markovhttp.NewChainService(v.chain, v.label, v.startFirst)
}

// Summary renders a Markdown overview of the chain.
func (v *typedView[T]) Summary() (string, error) {
	report, err := v.chain.Validate()
	if err != nil && !errors.Is(err, markov.ErrNoTransitions) {
		return "", err
	}

	nodes := v.chain.Nodes()
	edges, weight, terminal := 0, 0, 0
	for _, n := range nodes {
		edges += len(n.Frequencies())
		weight += n.TotalWeight()
		if v.chain.IsTerminal(n) {
			terminal++
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Chain `%s`\n\n", v.name)
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| States | %d |\n", len(nodes))
	fmt.Fprintf(&sb, "| Transitions | %d |\n", edges)
	fmt.Fprintf(&sb, "| Observations | %d |\n", weight)
	fmt.Fprintf(&sb, "| Terminal states | %d |\n", terminal)
	fmt.Fprintf(&sb, "| Dead ends | %d |\n", len(report.DeadEnds))
	fmt.Fprintf(&sb, "| Unreachable | %d |\n", len(report.Unreachable))

	ranked := slices.Clone(nodes)
	slices.SortStableFunc(ranked, func(a, b *markov.Node[T]) int {
		return cmp.Compare(b.TotalWeight(), a.TotalWeight())
	})
	if len(ranked) > topStates {
		ranked = ranked[:topStates]
	}

	sb.WriteString("\n## Busiest states\n\n| State | Successors | Observations |\n|---|---|---|\n")
	for _, n := range ranked {
		fmt.Fprintf(&sb, "| %s | %d | %d |\n", escapeCell(v.label(n.Data())), len(n.Frequencies()), n.TotalWeight())
	}
	return sb.String(), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// loadView opens a word chain when path is set and the board otherwise.
func loadView(ctx context.Context, path string, limit int, cfg Config, s chainSettings) (chainView, error) {
	if path != "" {
		chain, err := newWordChain(ctx, path, limit, s)
		if err != nil {
			return nil, err
		}
		return &typedView[string]{name: path, chain: chain, label: func(w string) string { return w }}, nil
	}

	chain, err := newBoardChain(cfg.Layout, s)
	if err != nil {
		return nil, err
	}
	return &typedView[board.Cell]{name: "board", chain: chain, label: board.Cell.String, startFirst: true}, nil
}
