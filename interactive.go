package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// maxSteps bounds a single "n" command so the session stays responsive
const maxSteps = 10000

var (
	errUnknownCommand = errors.New("unknown command")
	errBadArguments   = errors.New("bad arguments")
)

const interactiveHelp = `Commands:
  t X Y   toggle the cell at column X, row Y
  n [N]   advance N generations (default 1, at most 10000)
  r       reset every cell to dead
  s W H   resize the board to W columns by H rows
  p       print the board
  h       show this help
  q       quit`

// command is a parsed interactive instruction
type command struct {
	name string
	args []int
}

// arity lists the accepted argument counts per command
var arity = map[string][]int{
	"t": {2},
	"n": {0, 1},
	"r": {0},
	"s": {2},
	"p": {0},
	"h": {0},
	"q": {0},
}

// parseCommand parses one input line such as "t 3 4"
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, errors.Wrap(errUnknownCommand, "[parseCommand] empty line")
	}

	name := strings.ToLower(fields[0])
	counts, ok := arity[name]
	if !ok {
		return command{}, errors.Wrapf(errUnknownCommand, "[parseCommand] %q", fields[0])
	}

	args := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return command{}, errors.Wrapf(errBadArguments, "[parseCommand] %q is not an integer", f)
		}
		args = append(args, n)
	}

	for _, c := range counts {
		if len(args) == c {
			return command{name: name, args: args}, nil
		}
	}
	return command{}, errors.Wrapf(errBadArguments, "[parseCommand] %q takes %v arguments, got %d", name, counts, len(args))
}

// session applies interactive commands to a board
type session struct {
	board      *model.Board
	out        io.Writer
	generation int
}

// execute runs cmd against the board; quit is true for the quit command
func (s *session) execute(cmd command) (quit bool, err error) {
	switch cmd.name {
	case "t":
		if err = s.board.ToggleCell(cmd.args[0], cmd.args[1]); err != nil {
			return false, err
		}
	case "n":
		steps := 1
		if len(cmd.args) == 1 {
			steps = cmd.args[0]
		}
		if steps < 0 || steps > maxSteps {
			return false, errors.Wrapf(errBadArguments, "[execute] cannot step %d generations (max %d)", steps, maxSteps)
		}
		s.board.StepN(steps)
		s.generation += steps
	case "r":
		s.board.Reset()
		s.generation = 0
	case "s":
		if err = s.board.Resize(cmd.args[0], cmd.args[1]); err != nil {
			return false, err
		}
	case "p":
	case "h":
		fmt.Fprintln(s.out, interactiveHelp)
		return false, nil
	case "q":
		return true, nil
	}

	s.print()
	return false, nil
}

func (s *session) print() {
	fmt.Fprintf(s.out, "Gen: %d | %dx%d | Living: %d\n",
		s.generation, s.board.Width(), s.board.Height(), s.board.Population())
	fmt.Fprint(s.out, s.board.String())
}

// runInteractive reads commands from in until quit or EOF
func runInteractive(board *model.Board, in io.Reader, out io.Writer) error {
	s := &session{board: board, out: out}
	fmt.Fprintln(out, interactiveHelp)
	s.print()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := parseCommand(line)
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
			continue
		}
		quit, err := s.execute(cmd)
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
			continue
		}
		if quit {
			return nil
		}
	}
	return errors.Wrap(scanner.Err(), "[runInteractive] failed to read input")
}
