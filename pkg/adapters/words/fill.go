package words

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/markov"
)

// Unlimited makes Fill read the whole input.
const Unlimited = -1

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Tokenize splits a line on spaces, tabs, carriage returns and newlines.
// Empty tokens are dropped.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
}

// Fill feeds the words read from r into chain and returns how many were read.
// Consecutive words of the same line become transitions; lines are independent,
// so the last word of a line never leads to the first word of the next one.
// Reading stops after limit words unless limit is Unlimited (or 0).
// On error the chain holds whatever was added so far; the caller closes it.
func Fill(ctx context.Context, chain *markov.Chain[string], r io.Reader, limit int) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	read := 0
	more := func() bool { return limit <= 0 || read < limit }

	for more() && scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return read, err
		}

		var prev *markov.Node[string]
		for _, word := range Tokenize(scanner.Text()) {
			if !more() {
				break
			}
			node, err := chain.Add(word)
			if err != nil {
				return read, fmt.Errorf("add word %q: %w", word, err)
			}
			read++

			if prev != nil {
				if err := chain.AddTransition(prev, node); err != nil {
					return read, fmt.Errorf("link %q: %w", word, err)
				}
			}
			prev = node
		}
	}

	if err := scanner.Err(); err != nil {
		return read, fmt.Errorf("read corpus: %w", err)
	}
	return read, nil
}
