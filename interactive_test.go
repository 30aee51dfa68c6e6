package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    command
		wantErr error
	}{
		{line: "t 1 2", want: command{name: "t", args: []int{1, 2}}},
		{line: "  N  ", want: command{name: "n", args: []int{}}},
		{line: "n 5", want: command{name: "n", args: []int{5}}},
		{line: "s 4 3", want: command{name: "s", args: []int{4, 3}}},
		{line: "q", want: command{name: "q", args: []int{}}},
		{line: "x", wantErr: errUnknownCommand},
		{line: "", wantErr: errUnknownCommand},
		{line: "t 1", wantErr: errBadArguments},
		{line: "t a b", wantErr: errBadArguments},
		{line: "r 1", wantErr: errBadArguments},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseCommand(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.name != tt.want.name || len(got.args) != len(tt.want.args) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			for i := range got.args {
				if got.args[i] != tt.want.args[i] {
					t.Errorf("arg %d = %d, want %d", i, got.args[i], tt.want.args[i])
				}
			}
		})
	}
}

func TestRunInteractiveBlinker(t *testing.T) {
	board, err := model.NewBoard(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	in := strings.NewReader("t 0 1\nt 1 1\nt 2 1\nn\n")
	var out bytes.Buffer

	if err = runInteractive(board, in, &out); err != nil {
		t.Fatal(err)
	}
	if got, want := board.String(), ".#.\n.#.\n.#.\n"; got != want {
		t.Errorf("board = %q, want %q", got, want)
	}
	if !strings.Contains(out.String(), "Gen: 1 | 3x3 | Living: 3") {
		t.Errorf("missing status line in output:\n%s", out.String())
	}
}

func TestRunInteractiveErrorsAndQuit(t *testing.T) {
	board, err := model.NewBoard(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	in := strings.NewReader("t 5 5\nbogus\ns 4 1\nq\nt 0 0\n")
	var out bytes.Buffer

	if err = runInteractive(board, in, &out); err != nil {
		t.Fatal(err)
	}
	if strings.Count(out.String(), "Error:") != 2 {
		t.Errorf("expected two errors in output:\n%s", out.String())
	}
	if board.Width() != 4 || board.Height() != 1 {
		t.Errorf("board is %dx%d, want 4x1", board.Width(), board.Height())
	}
	if board.Population() != 0 {
		t.Error("commands after quit must not run")
	}
}

func TestSessionReset(t *testing.T) {
	board, err := model.NewBoard(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	s := &session{board: board, out: &bytes.Buffer{}}
	for _, line := range []string{"t 0 0", "t 2 2", "n 2", "r"} {
		cmd, err := parseCommand(line)
		if err != nil {
			t.Fatal(err)
		}
		if _, err = s.execute(cmd); err != nil {
			t.Fatal(err)
		}
	}
	if board.Population() != 0 || s.generation != 0 {
		t.Errorf("after reset: population %d, generation %d", board.Population(), s.generation)
	}
}

func TestSessionRejectsUnboundedStep(t *testing.T) {
	board, err := model.NewBoard(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	s := &session{board: board, out: &bytes.Buffer{}}

	for _, steps := range []int{-1, maxSteps + 1, 2000000000} {
		_, err := s.execute(command{name: "n", args: []int{steps}})
		if !errors.Is(err, errBadArguments) {
			t.Errorf("n %d: err = %v, want errBadArguments", steps, err)
		}
	}
	if s.generation != 0 {
		t.Errorf("rejected steps advanced the session to generation %d", s.generation)
	}

	if _, err = s.execute(command{name: "n", args: []int{maxSteps}}); err != nil {
		t.Errorf("n %d should be accepted: %v", maxSteps, err)
	}
}

func TestRunInteractiveOversizedResize(t *testing.T) {
	board, err := model.NewBoard(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	in := strings.NewReader("s 4294967296 4294967296\np\n")
	var out bytes.Buffer

	if err = runInteractive(board, in, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("oversized resize should report an error:\n%s", out.String())
	}
	if board.Width() != 3 || board.Height() != 3 || board.Len() != 9 {
		t.Errorf("board is %dx%d with %d cells, want 3x3 with 9", board.Width(), board.Height(), board.Len())
	}
}
