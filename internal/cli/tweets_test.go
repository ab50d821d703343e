package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/markov/internal/testutils"
	"github.com/aretw0/markov/pkg/adapters/words"
)

const corpus = "the cat sat on the mat.\nthe dog ran to the cat.\na bird sang.\n"

func TestParseTweetsArgs(t *testing.T) {
	opts, err := ParseTweetsArgs([]string{"7", "3", "corpus.txt"})
	require.NoError(t, err)
	assert.Equal(t, TweetsOptions{Seed: 7, Count: 3, Path: "corpus.txt", Limit: words.Unlimited}, opts)

	opts, err = ParseTweetsArgs([]string{"7", "3", "corpus.txt", "100"})
	require.NoError(t, err)
	assert.Equal(t, 100, opts.Limit)

	for _, args := range [][]string{
		{"7", "3"},
		{"7", "3", "corpus.txt", "100", "extra"},
		{"seed", "3", "corpus.txt"},
		{"7", "-1", "corpus.txt"},
		{"7", "3", "corpus.txt", "0"},
	} {
		t.Run(strings.Join(args, "_"), func(t *testing.T) {
			_, err := ParseTweetsArgs(args)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func runTweets(t *testing.T, seed uint64, count int) string {
	t.Helper()
	path := testutils.WriteFile(t, "corpus.txt", corpus)
	var out bytes.Buffer
	err := RunTweets(context.Background(), TweetsOptions{Seed: seed, Count: count, Path: path, Limit: words.Unlimited}, Config{MaxLength: DefaultMaxLength}, &out, io.Discard)
	require.NoError(t, err)
	return out.String()
}

func TestRunTweets(t *testing.T) {
	out := runTweets(t, 42, 5)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	for i, line := range lines {
		prefix := fmt.Sprintf("Tweet %d: ", i+1)
		require.True(t, strings.HasPrefix(line, prefix), line)

		tweet := strings.Fields(strings.TrimPrefix(line, prefix))
		require.NotEmpty(t, tweet)
		assert.LessOrEqual(t, len(tweet), MaxTweetLength)
		if len(tweet) < MaxTweetLength {
			assert.True(t, strings.HasSuffix(tweet[len(tweet)-1], "."), "short tweets end on a terminal word: %q", line)
		}
		assert.False(t, strings.HasSuffix(tweet[0], "."), "tweets start on a non-terminal word")
	}
}

func TestRunTweets_Seeded(t *testing.T) {
	assert.Equal(t, runTweets(t, 3, 10), runTweets(t, 3, 10))
}

func TestRunTweets_Interrupted(t *testing.T) {
	path := testutils.WriteFile(t, "corpus.txt", corpus)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	err := RunTweets(ctx, TweetsOptions{Seed: 1, Count: 3, Path: path, Limit: words.Unlimited}, Config{MaxLength: DefaultMaxLength}, &out, &errOut)
	assert.NoError(t, err)
	assert.Equal(t, "[markov] tweets stopped\n", errOut.String())
}

func TestRunTweets_MissingFile(t *testing.T) {
	err := RunTweets(context.Background(), TweetsOptions{Seed: 1, Count: 1, Path: "does/not/exist.txt"}, Config{}, io.Discard, io.Discard)
	assert.ErrorIs(t, err, ErrFileNotFound)
}
