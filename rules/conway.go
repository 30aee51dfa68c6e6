package rules

// MaxNeighbors is the size of a Moore neighbourhood
const MaxNeighbors = 8

// Rule is a life-like birth/survival rule keyed by live-neighbour count
type Rule struct {
	Birth   [MaxNeighbors + 1]bool
	Survive [MaxNeighbors + 1]bool
}

// Conway is the standard B3/S23 rule
var Conway = NewRule([]int{3}, []int{2, 3})

// NewRule builds a Rule from the neighbour counts that cause birth and survival.
// Counts outside 0..8 are ignored.
func NewRule(birth, survive []int) Rule {
	var r Rule
	for _, n := range birth {
		if n >= 0 && n <= MaxNeighbors {
			r.Birth[n] = true
		}
	}
	for _, n := range survive {
		if n >= 0 && n <= MaxNeighbors {
			r.Survive[n] = true
		}
	}
	return r
}

// Next returns whether a cell is alive in the next generation
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > MaxNeighbors {
		return false
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Conway.Next(alive, neighbors)
}
