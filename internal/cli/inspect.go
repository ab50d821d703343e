package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/markov"
	"github.com/aretw0/markov/internal/presentation/tui"
)

// ChainOptions selects the chain a command works on: the word corpus at Path,
// or the board when Path is empty.
type ChainOptions struct {
	Path  string
	Limit int
}

func openView(ctx context.Context, opts ChainOptions, cfg Config, out, errOut io.Writer) (chainView, error) {
	// Walks are not printed by these commands.
	s, err := newSettings(cfg, io.Discard, errOut)
	if err != nil {
		return nil, err
	}
	return loadView(ctx, opts.Path, opts.Limit, cfg, s)
}

// RunGraph prints the chain as a Mermaid flowchart.
func RunGraph(ctx context.Context, opts ChainOptions, cfg Config, out, errOut io.Writer) error {
	view, err := openView(ctx, opts, cfg, out, errOut)
	if err != nil {
		return err
	}
	defer view.Close()

	_, err = io.WriteString(out, view.Mermaid())
	return err
}

// RunInspect prints a Markdown summary of the chain, rendered with glamour
// when out is a terminal.
func RunInspect(ctx context.Context, opts ChainOptions, cfg Config, out, errOut io.Writer) error {
	view, err := openView(ctx, opts, cfg, out, errOut)
	if err != nil {
		return err
	}
	defer view.Close()

	summary, err := view.Summary()
	if err != nil {
		return err
	}
	rendered, err := tui.NewRenderer(out)(summary)
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	_, err = io.WriteString(out, rendered)
	return err
}

// RunValidate reports dead ends as an error and unreachable states as a note.
func RunValidate(ctx context.Context, opts ChainOptions, cfg Config, out, errOut io.Writer) error {
	view, err := openView(ctx, opts, cfg, out, errOut)
	if err != nil {
		return err
	}
	defer view.Close()

	report, err := view.Validate()
	if len(report.Unreachable) > 0 {
		printSystemMessage(out, "%d state(s) unreachable from the first state: %v", len(report.Unreachable), report.Unreachable)
	}
	if err != nil {
		if errors.Is(err, markov.ErrNoTransitions) {
			return fmt.Errorf("%d dead end(s): %w", len(report.DeadEnds), err)
		}
		return err
	}
	fmt.Fprintf(out, "Chain %s is valid (%d states)\n", view.Name(), view.Len())
	return nil
}
