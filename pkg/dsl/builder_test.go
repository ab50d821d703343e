package dsl_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/markov"
	"github.com/aretw0/markov/pkg/adapters/words"
	"github.com/aretw0/markov/pkg/dsl"
)

func weights(t *testing.T, chain *markov.Chain[string], state string) map[string]int {
	t.Helper()
	n, ok := chain.Find(state)
	require.True(t, ok, state)
	out := map[string]int{}
	for _, f := range n.Frequencies() {
		out[f.Target.Data()] = f.Count
	}
	return out
}

func TestBuilder_SimpleChain(t *testing.T) {
	b := dsl.New[string]()
	b.Add("the").Go("cat").GoN("dog", 2).
		Add("cat").Go("sat.")
	b.Sequence("dog", "ran", "off.")

	chain, err := b.Build(words.NewAdapter(io.Discard), markov.WithSeed(1))
	require.NoError(t, err)
	defer chain.Close()

	assert.Equal(t, 6, chain.Len())
	first, _ := chain.First()
	assert.Equal(t, "the", first.Data())

	assert.Equal(t, map[string]int{"cat": 1, "dog": 2}, weights(t, chain, "the"))
	assert.Equal(t, map[string]int{"ran": 1}, weights(t, chain, "dog"))

	report, err := chain.Validate()
	require.NoError(t, err)
	assert.Empty(t, report.Unreachable)

	walk, err := chain.GenerateFrom(context.Background(), "cat", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "sat."}, walk.States)
}

func TestBuilder_RepeatedDeclarations(t *testing.T) {
	b := dsl.New[string]()
	b.Add("a").Go("b.")
	b.Add("a").Go("b.")

	chain, err := b.Build(words.NewAdapter(io.Discard))
	require.NoError(t, err)
	defer chain.Close()

	assert.Equal(t, 2, chain.Len())
	assert.Equal(t, map[string]int{"b.": 2}, weights(t, chain, "a"))
}

func TestBuilder_InvalidWeight(t *testing.T) {
	b := dsl.New[string]()
	b.Add("a").GoN("b.", 0)

	_, err := b.Build(words.NewAdapter(io.Discard))
	assert.ErrorIs(t, err, markov.ErrInvalidWeight)
}

func TestBuilder_NilAdapter(t *testing.T) {
	_, err := dsl.New[string]().Build(nil)
	assert.Error(t, err)
}
