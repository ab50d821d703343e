/*
Package board adapts the markov engine to a snakes-and-ladders board.

Every cell is a state. A cell at the foot of a ladder or the head of a snake
has a single transition to its destination; any other cell moves one to six
cells forward with equal weight, like a die. The last cell is terminal.

Layouts are YAML documents:

	size: 100
	jumps:
	  - [13, 4]   # snake: from 13 down to 4
	  - [8, 30]   # ladder: from 8 up to 30
	  - {from: 28, to: 50}
*/
package board
