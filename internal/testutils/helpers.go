package testutils

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/markov"
	"github.com/aretw0/markov/pkg/adapters/words"
)

// WriteFile creates name with content in a fresh temporary directory and
// returns its path. It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", name)
	return path
}

// NewWordChain builds a seeded, silent word chain from lines and closes it
// when the test ends.
func NewWordChain(t *testing.T, seed uint64, lines ...string) *markov.Chain[string] {
	t.Helper()
	chain, err := markov.New[string](words.NewAdapter(io.Discard), markov.WithSeed(seed))
	require.NoError(t, err)
	t.Cleanup(func() { _ = chain.Close() })

	_, err = words.Fill(context.Background(), chain, strings.NewReader(strings.Join(lines, "\n")), words.Unlimited)
	require.NoError(t, err)
	return chain
}
