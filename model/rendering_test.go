package model

import (
	"bytes"
	"testing"
)

func TestRender(t *testing.T) {
	b := mustBoard(t, 3, 2)
	setAlive(t, b, [2]int{0, 0}, [2]int{2, 1})

	want := "#..\n..#\n"
	if got := Render(b); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
	if b.String() != want {
		t.Errorf("String = %q, want %q", b.String(), want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(mustBoard(t, 0, 0)); got != "" {
		t.Errorf("empty board rendered %q", got)
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	b := mustBoard(t, 2, 2)
	setAlive(t, b, [2]int{1, 0})

	r.Display(b)
	if buf.String() != ".#\n..\n" {
		t.Errorf("Display wrote %q", buf.String())
	}
}
