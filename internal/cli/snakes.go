package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

// MaxWalkLength is the number of cells of one random walk on the board.
const MaxWalkLength = 60

// SnakesOptions configures the snakes command.
type SnakesOptions struct {
	Seed    uint64
	Count   int
	Colored bool
}

// ParseSnakesArgs reads "<seed> <count>".
func ParseSnakesArgs(args []string) (SnakesOptions, error) {
	if len(args) != 2 {
		return SnakesOptions{}, fmt.Errorf("%w: the program receives only 2 arguments", ErrUsage)
	}
	seed, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return SnakesOptions{}, fmt.Errorf("%w: invalid seed %q", ErrUsage, args[0])
	}
	count, err := strconv.Atoi(args[1])
	if err != nil || count < 0 {
		return SnakesOptions{}, fmt.Errorf("%w: invalid walk count %q", ErrUsage, args[1])
	}
	return SnakesOptions{Seed: seed, Count: count}, nil
}

// RunSnakes builds the board chain and prints Count walks from the first
// cell, each at most MaxWalkLength cells long. An interruption is reported on
// errOut and is not an error.
func RunSnakes(ctx context.Context, opts SnakesOptions, cfg Config, out, errOut io.Writer) (err error) {
	defer func() { err = finishCommand(ctx, errOut, "snakes", err) }()

	cfg.Seed, cfg.SeedSet = opts.Seed, true
	s, err := newSettings(cfg, out, errOut)
	if err != nil {
		return err
	}
	s.colored = opts.Colored

	chain, err := newBoardChain(cfg.Layout, s)
	if err != nil {
		return err
	}
	defer chain.Close()

	start, _ := chain.First()
	for i := 0; i < opts.Count; i++ {
		fmt.Fprintf(out, "Random Walk %d: ", i+1)
		if _, err := chain.Generate(ctx, start, MaxWalkLength); err != nil {
			fmt.Fprintln(out)
			return fmt.Errorf("walk %d: %w", i+1, err)
		}
		fmt.Fprintln(out)
	}
	return nil
}
