package model

import "github.com/sheikhrachel/go-life/rules"

const (
	glyphAlive = "#"
	glyphDead  = "."
)

// CellState is the two-valued state of a cell
type CellState uint8

const (
	// Dead is the zero value, so a zero Cell is dead
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	}
	return "unknown"
}

// Cell is a single grid position; copied by value
type Cell struct {
	state CellState
}

// NewCell returns a cell in the given state
func NewCell(state CellState) Cell {
	return Cell{state: state}
}

// State returns the cell's state
func (c Cell) State() CellState {
	return c.state
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.state == Alive
}

// IsDead reports whether the cell is dead
func (c Cell) IsDead() bool {
	return c.state == Dead
}

// Toggle flips the cell's state
func (c *Cell) Toggle() {
	switch c.state {
	case Alive:
		c.state = Dead
	case Dead:
		c.state = Alive
	}
}

// Update moves the cell to its next state given a snapshot of its neighbours.
// Nil entries are out-of-grid positions and do not count.
func (c *Cell) Update(neighbors []*Cell) {
	count := LiveCount(neighbors)

	switch c.state {
	case Alive:
		if !rules.ApplyConwayRules(count, true) {
			c.state = Dead
		}
	case Dead:
		if rules.ApplyConwayRules(count, false) {
			c.state = Alive
		}
	}
}

// LiveCount returns the number of present, alive neighbours
func LiveCount(neighbors []*Cell) (count int) {
	for _, n := range neighbors {
		if n != nil && n.IsAlive() {
			count++
		}
	}
	return
}

func (c Cell) String() string {
	if c.IsAlive() {
		return glyphAlive
	}
	return glyphDead
}
