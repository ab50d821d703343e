// Package words adapts the markov engine to text: every whitespace-separated
// word is a state and a word ending in '.' closes a sentence.
package words
