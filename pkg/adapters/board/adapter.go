package board

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/markov/pkg/ports"
)

// Painter decorates the rendered text of a cell, e.g. with terminal colours.
type Painter func(kind Kind, text string) string

// Adapter implements ports.Adapter[Cell] and ports.Hasher[Cell].
type Adapter struct {
	out     io.Writer
	last    int
	painter Painter
}

var (
	_ ports.Adapter[Cell] = (*Adapter)(nil)
	_ ports.Hasher[Cell]  = (*Adapter)(nil)
)

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithPainter decorates printed cells.
func WithPainter(p Painter) AdapterOption {
	return func(a *Adapter) {
		a.painter = p
	}
}

// NewAdapter returns a cell adapter for a board of size cells printing to w
// (os.Stdout when nil). The cell numbered size is terminal.
func NewAdapter(w io.Writer, size int, opts ...AdapterOption) *Adapter {
	if w == nil {
		w = os.Stdout
	}
	a := &Adapter{out: w, last: size}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Clone(c Cell) (Cell, error) {
	return c, nil
}

// Compare orders cells by number only.
func (a *Adapter) Compare(x, y Cell) int {
	return cmp.Compare(x.Number, y.Number)
}

// Print writes "[n] -> ", "[n]-ladder to m -> ", "[n]-snake to m -> ",
// or "[n]" for the last cell.
func (a *Adapter) Print(c Cell) {
	kind, text := a.Render(c)
	if a.painter != nil {
		text = a.painter(kind, text)
	}
	fmt.Fprint(a.out, text)
}

// Render returns the undecorated text of a cell and its kind.
func (a *Adapter) Render(c Cell) (Kind, string) {
	switch {
	case c.Number == a.last:
		return KindLast, fmt.Sprintf("[%d]", c.Number)
	case c.SnakeTo != Empty:
		return KindSnake, fmt.Sprintf("[%d]-snake to %d -> ", c.Number, c.SnakeTo)
	case c.LadderTo != Empty:
		return KindLadder, fmt.Sprintf("[%d]-ladder to %d -> ", c.Number, c.LadderTo)
	}
	return KindPlain, fmt.Sprintf("[%d] -> ", c.Number)
}

func (a *Adapter) Release(Cell) {}

func (a *Adapter) IsTerminal(c Cell) bool {
	return c.Number == a.last
}

func (a *Adapter) Hash(c Cell) uint64 {
	return uint64(c.Number)
}
