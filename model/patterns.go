package model

import "math/rand"

// glider heads down and to the right
var glider = [][]bool{
	{false, true, false},
	{false, false, true},
	{true, true, true},
}

// stamp writes pattern with its top-left corner at (startX, startY).
// Pattern cells falling outside the board are clipped.
func stamp(b *Board, startX, startY int, pattern [][]bool) {
	for y, row := range pattern {
		for x, alive := range row {
			_ = b.SetCell(startX+x, startY+y, alive)
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func AddGlider(b *Board, startX, startY int) {
	stamp(b, startX, startY, glider)
}

// AddBlinker adds a horizontal blinker oscillator at the specified position
func AddBlinker(b *Board, startX, startY int) {
	stamp(b, startX, startY, [][]bool{{true, true, true}})
}

// Randomize sets every cell alive with probability density
func Randomize(b *Board, density float64, rng *rand.Rand) {
	for y := range b.Height() {
		for x := range b.Width() {
			_ = b.SetCell(x, y, rng.Float64() < density)
		}
	}
}

// InjectRandomLife brings count random cells to life
func InjectRandomLife(b *Board, count int, rng *rand.Rand) {
	if b.Len() == 0 {
		return
	}
	for range count {
		_ = b.SetCell(rng.Intn(b.Width()), rng.Intn(b.Height()), true)
	}
}

// SeedInteresting clears the board, places gliders and blinkers where they
// fit, then sprinkles random life at the given density
func SeedInteresting(b *Board, density float64, rng *rand.Rand) {
	b.Reset()

	w, h := b.Width(), b.Height()
	if w >= 10 && h >= 10 {
		AddGlider(b, 5, 5)
		if w >= 20 && h >= 15 {
			AddGlider(b, w-8, 5)
		}

		AddBlinker(b, w/4, h/4)
		if w >= 30 {
			AddBlinker(b, 3*w/4, 3*h/4)
		}
	}

	if density <= 0 {
		return
	}
	for y := range h {
		for x := range w {
			if rng.Float64() < density {
				_ = b.SetCell(x, y, true)
			}
		}
	}
}
