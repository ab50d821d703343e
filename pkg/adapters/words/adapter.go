package words

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/aretw0/markov/pkg/ports"
)

// SentenceEnd is the last byte of a terminal word.
const SentenceEnd = '.'

// Adapter implements ports.Adapter[string] and ports.Hasher[string] for words.
type Adapter struct {
	out io.Writer
}

var (
	_ ports.Adapter[string] = (*Adapter)(nil)
	_ ports.Hasher[string]  = (*Adapter)(nil)
)

// NewAdapter returns a word adapter printing to w (os.Stdout when nil).
func NewAdapter(w io.Writer) *Adapter {
	if w == nil {
		w = os.Stdout
	}
	return &Adapter{out: w}
}

// Clone copies the word so the chain never aliases the caller's buffer.
func (a *Adapter) Clone(word string) (string, error) {
	return strings.Clone(word), nil
}

func (a *Adapter) Compare(x, y string) int {
	return strings.Compare(x, y)
}

// Print writes the word followed by a single space.
func (a *Adapter) Print(word string) {
	fmt.Fprintf(a.out, "%s ", word)
}

// Release is a no-op: cloned strings are garbage collected.
func (a *Adapter) Release(string) {}

// IsTerminal reports whether the word ends a sentence.
// The empty word is not terminal; Fill never stores it.
func (a *Adapter) IsTerminal(word string) bool {
	return word != "" && word[len(word)-1] == SentenceEnd
}

func (a *Adapter) Hash(word string) uint64 {
	return xxhash.Sum64String(word)
}
