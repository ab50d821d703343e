/*
Package markov is a generic Markov-chain engine: it stores arbitrary discrete states,
records weighted transitions between them and performs random walks over the result.

The engine never looks inside a state. Every state-specific behavior (copying, equality,
rendering, releasing, detecting the end of a walk) is supplied by a ports.Adapter, so the
same engine drives a word generator and a board-game simulator alike.

# Concept

A Chain owns a state database. Adding a payload either returns the existing state that
compares equal to it or stores a clone of it as a new state, keeping insertion order.
Transitions are counted per source state in first-occurrence order. A walk starts at a
given (or random non-terminal) state and repeatedly draws a successor with probability
proportional to the recorded counts, until a terminal state is emitted or the length
bound is reached.

# Usage

	chain, err := markov.New[string](words.NewAdapter(os.Stdout), markov.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}
	defer chain.Close()

	the, _ := chain.Add("the")
	cat, _ := chain.Add("cat.")
	_ = chain.AddTransition(the, cat)

	walk, err := chain.Generate(context.Background(), the, 20)

# Ownership

States are cloned on insertion and released exactly once by Close. Transitions only
reference states, they never own them. Close is safe on a partially built chain, which is
how callers recover from a failed Add or AddTransition.

# Concurrency

A Chain and its random source are single-threaded. Hosts that serve walks concurrently
(see pkg/adapters/http) serialize access themselves.
*/
package markov
