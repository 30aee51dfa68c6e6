package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is returned by writes addressed outside the grid
	ErrOutOfBounds = errors.New("coordinate outside board")
	// ErrInvalidDimensions is returned for negative board dimensions or
	// boards larger than MaxCells
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)

// MaxCells is the largest number of cells a board may hold
const MaxCells = 1 << 24

// checkDimensions rejects negative extents and any whose product exceeds MaxCells.
// The division form never overflows.
func checkDimensions(op string, width, height int) error {
	if width < 0 || height < 0 || (width != 0 && height > MaxCells/width) {
		return errors.Wrapf(ErrInvalidDimensions, "[%s] %dx%d", op, width, height)
	}
	return nil
}

// neighborOffsets lists the Moore neighbourhood around a cell
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Board is a bounded grid of cells stored row-major in a flat slice
type Board struct {
	width  int
	height int
	cells  []Cell

	// prev holds generation N while Step writes generation N+1 into cells
	prev []Cell
}

// NewBoard creates a width x height board with every cell dead.
// Zero dimensions give an empty board; negative dimensions or more than
// MaxCells cells are rejected.
func NewBoard(width, height int) (*Board, error) {
	if err := checkDimensions("NewBoard", width, height); err != nil {
		return nil, err
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of cells
func (b *Board) Len() int {
	return len(b.cells)
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Index returns the flat row-major index of (x, y)
func (b *Board) Index(x, y int) (int, error) {
	if !b.inBounds(x, y) {
		return 0, b.outOfBounds("Index", x, y)
	}
	return y*b.width + x, nil
}

// GetCell returns a copy of the cell at (x, y); ok is false outside the grid
func (b *Board) GetCell(x, y int) (cell Cell, ok bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Cells returns a copy of the flat cell sequence
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// ToggleCell flips the cell at (x, y)
func (b *Board) ToggleCell(x, y int) error {
	if !b.inBounds(x, y) {
		return b.outOfBounds("ToggleCell", x, y)
	}
	b.cells[y*b.width+x].Toggle()
	return nil
}

// SetCell sets the cell at (x, y) to alive or dead
func (b *Board) SetCell(x, y int, alive bool) error {
	if !b.inBounds(x, y) {
		return b.outOfBounds("SetCell", x, y)
	}
	state := Dead
	if alive {
		state = Alive
	}
	b.cells[y*b.width+x] = NewCell(state)
	return nil
}

func (b *Board) outOfBounds(op string, x, y int) error {
	return errors.Wrapf(ErrOutOfBounds, "[%s] (%d,%d) on %dx%d board", op, x, y, b.width, b.height)
}

// Reset kills every cell, keeping the dimensions
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// Resize changes the board extent. Cells inside both the old and the new
// extent keep their (x, y) position; every other cell starts dead.
func (b *Board) Resize(width, height int) error {
	if err := checkDimensions("Resize", width, height); err != nil {
		return err
	}
	if width == b.width && height == b.height {
		return nil
	}

	cells := make([]Cell, width*height)
	for y := range min(height, b.height) {
		for x := range min(width, b.width) {
			cells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.width = width
	b.height = height
	b.cells = cells
	b.prev = nil
	return nil
}

// neighbors collects the eight neighbours of (x, y) from src into dst.
// Positions outside the grid are nil.
func (b *Board) neighbors(src []Cell, x, y int, dst []*Cell) []*Cell {
	dst = dst[:0]
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if !b.inBounds(nx, ny) {
			dst = append(dst, nil)
			continue
		}
		dst = append(dst, &src[ny*b.width+nx])
	}
	return dst
}

// Neighbors returns copies of the eight neighbours of (x, y) in the current
// generation, nil where the position falls outside the grid
func (b *Board) Neighbors(x, y int) []*Cell {
	snapshot := b.Cells()
	return b.neighbors(snapshot, x, y, make([]*Cell, 0, len(neighborOffsets)))
}

// Step advances the board one generation. The whole current generation is
// copied aside first so no cell ever sees a neighbour's next state.
func (b *Board) Step() {
	if len(b.prev) != len(b.cells) {
		b.prev = make([]Cell, len(b.cells))
	}
	copy(b.prev, b.cells)

	scratch := make([]*Cell, 0, len(neighborOffsets))
	for y := range b.height {
		for x := range b.width {
			scratch = b.neighbors(b.prev, x, y, scratch)
			b.cells[y*b.width+x].Update(scratch)
		}
	}
}

// StepN advances the board n generations
func (b *Board) StepN(n int) {
	for range n {
		b.Step()
	}
}

// Population returns the number of living cells
func (b *Board) Population() (count int) {
	for _, c := range b.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the board's dimensions and cell states
func (b *Board) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.width, b.height)
	for _, c := range b.cells {
		h.Write([]byte{byte(c.state)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both boards have the same extent and cell states
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  b.Cells(),
	}
}

func (b *Board) String() string {
	return Render(b)
}
