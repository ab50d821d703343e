/*
Package dsl provides a fluent builder for Markov chains.

States are declared with Add and linked with Go (one observation) or GoN
(several). Sequence records a whole path at once. Build replays the
declarations into a new markov.Chain in declaration order, so the first state
added is the chain's first state.

	b := dsl.New[string]()
	b.Add("the").Go("cat").GoN("dog", 2)
	b.Sequence("cat", "sat.")
	chain, err := b.Build(words.NewAdapter(nil), markov.WithSeed(1))
*/
package dsl
