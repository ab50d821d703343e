package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/markov/pkg/adapters/words"
)

// MaxTweetLength is the number of words of one tweet.
const MaxTweetLength = 20

// TweetsOptions configures the tweets command.
type TweetsOptions struct {
	Seed  uint64
	Count int
	Path  string
	Limit int // words read from the corpus, words.Unlimited for all
}

// ParseTweetsArgs reads "<seed> <count> <path> [words]".
func ParseTweetsArgs(args []string) (TweetsOptions, error) {
	if len(args) != 3 && len(args) != 4 {
		return TweetsOptions{}, fmt.Errorf("%w: the program receives only 3 or 4 arguments", ErrUsage)
	}

	seed, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return TweetsOptions{}, fmt.Errorf("%w: invalid seed %q", ErrUsage, args[0])
	}
	count, err := strconv.Atoi(args[1])
	if err != nil || count < 0 {
		return TweetsOptions{}, fmt.Errorf("%w: invalid tweet count %q", ErrUsage, args[1])
	}

	opts := TweetsOptions{Seed: seed, Count: count, Path: args[2], Limit: words.Unlimited}
	if len(args) == 4 {
		limit, err := strconv.Atoi(args[3])
		if err != nil || limit < 1 {
			return TweetsOptions{}, fmt.Errorf("%w: invalid word count %q", ErrUsage, args[3])
		}
		opts.Limit = limit
	}
	return opts, nil
}

// RunTweets builds a word chain from the corpus and prints Count tweets of at
// most MaxTweetLength words, each from a random start. An interruption is
// reported on errOut and is not an error.
func RunTweets(ctx context.Context, opts TweetsOptions, cfg Config, out, errOut io.Writer) (err error) {
	defer func() { err = finishCommand(ctx, errOut, "tweets", err) }()

	cfg.Seed, cfg.SeedSet = opts.Seed, true
	s, err := newSettings(cfg, out, errOut)
	if err != nil {
		return err
	}

	chain, err := newWordChain(ctx, opts.Path, opts.Limit, s)
	if err != nil {
		return err
	}
	defer chain.Close()

	for i := 0; i < opts.Count; i++ {
		fmt.Fprintf(out, "Tweet %d: ", i+1)
		if _, err := chain.Generate(ctx, nil, MaxTweetLength); err != nil {
			fmt.Fprintln(out)
			return fmt.Errorf("tweet %d: %w", i+1, err)
		}
		fmt.Fprintln(out)
	}
	return nil
}
