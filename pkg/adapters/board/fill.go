package board

import (
	"fmt"

	"github.com/aretw0/markov"
)

// DiceMax is the number of faces of the die.
const DiceMax = 6

// Fill inserts the cells returned by NewBoard in board order, then wires the moves: a single
// transition along a ladder or snake, otherwise one transition per die face
// that stays on the board.
func Fill(chain *markov.Chain[Cell], cells []Cell) error {
	nodes := make([]*markov.Node[Cell], len(cells))
	for i, c := range cells {
		n, err := chain.Add(c)
		if err != nil {
			return fmt.Errorf("add cell %d: %w", c.Number, err)
		}
		nodes[i] = n
	}

	for i, c := range cells {
		if dest, ok := c.Destination(); ok {
			if err := chain.AddTransition(nodes[i], nodes[dest-1]); err != nil {
				return fmt.Errorf("jump %d -> %d: %w", c.Number, dest, err)
			}
			continue
		}
		for face := 1; face <= DiceMax; face++ {
			next := c.Number + face
			if next > len(cells) {
				break
			}
			if err := chain.AddTransition(nodes[i], nodes[next-1]); err != nil {
				return fmt.Errorf("move %d -> %d: %w", c.Number, next, err)
			}
		}
	}
	return nil
}
