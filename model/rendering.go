package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const clearCmd = "clear"

// CellReader is the read-only view a renderer needs
type CellReader interface {
	Width() int
	Height() int
	GetCell(x, y int) (Cell, bool)
}

// Render draws one glyph per cell, rows separated by newlines
func Render(r CellReader) string {
	var sb strings.Builder
	sb.Grow((r.Width() + 1) * r.Height())
	for y := range r.Height() {
		for x := range r.Width() {
			cell, _ := r.GetCell(x, y)
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TerminalRenderer writes frames to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the board to the terminal
func (r *TerminalRenderer) Display(b CellReader) {
	fmt.Fprint(r.Out, Render(b))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
