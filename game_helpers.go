package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// frame is one rendered generation handed from the simulation to the display
type frame struct {
	generation   int
	livingCells  int
	density      float64
	status       string
	sinceRestart int
	view         string
	note         string
	stats        utils.Stats
}

// game owns the board and everything the autoplay loop tracks about it
type game struct {
	config  utils.Config
	board   *model.Board
	history *model.History
	stats   *utils.Stats
	rng     *rand.Rand

	generation     int
	stagnantCount  int
	lastRestartGen int
	lastFrameTime  time.Time
}

// newGame sets up the initial game state
func newGame(config utils.Config) (*game, error) {
	board, err := model.NewBoard(config.Width, config.Height)
	if err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &game{
		config:        config,
		board:         board,
		history:       model.NewHistory(0),
		stats:         utils.NewStats(),
		rng:           rand.New(rand.NewSource(seed)),
		lastFrameTime: time.Now(),
	}
	model.SeedInteresting(g.board, config.RandomDensity, g.rng)
	return g, nil
}

// density returns the percentage of living cells
func (g *game) density(livingCells int) float64 {
	if g.board.Len() == 0 {
		return 0
	}
	return float64(livingCells) / float64(g.board.Len()) * 100
}

// tick captures the current generation as a frame, then advances the board.
// done is true once the generation limit is reached; the board is not
// advanced in that case. A restart replaces the step, so the fresh seed is
// the next frame shown.
func (g *game) tick() (f frame, done bool) {
	var (
		livingCells = g.board.Population()
		hash        = g.board.Hash()
		isStagnant  = g.history.IsStagnant(hash)
	)
	g.history.Record(hash)

	now := time.Now()
	g.stats.Update(g.generation, livingCells, now.Sub(g.lastFrameTime))
	g.lastFrameTime = now

	if isStagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	f = frame{
		generation:   g.generation,
		livingCells:  livingCells,
		density:      g.density(livingCells),
		status:       status,
		sinceRestart: g.generation - g.lastRestartGen,
		view:         g.board.String(),
		stats:        *g.stats,
	}

	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		f.note = fmt.Sprintf("🏁 Reached maximum generations limit (%d)", g.config.MaxGenerations)
		return f, true
	}

	shouldRestart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.generation, g.config)
	switch {
	case shouldRestart && g.config.AutoRestart:
		f.note = fmt.Sprintf("🔄 Restarting due to %s...", reason)
		g.restart()
		return f, false
	case g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold:
		// Inject some life to try to break the stagnation
		model.InjectRandomLife(g.board, g.config.InjectionCount, g.rng)
	}

	g.board.Step()
	g.generation++
	return f, false
}

// restart reseeds the board in place; the seed counts as the next generation
func (g *game) restart() {
	model.SeedInteresting(g.board, g.config.RandomDensity, g.rng)
	g.history.Clear()
	g.generation++
	g.lastRestartGen = g.generation
	g.stagnantCount = 0
	g.stats.Restarts++
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.RestartEvery > 0 && generation > 0 && generation%config.RestartEvery == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// simulate advances the game and publishes a frame per generation until the
// generation limit is hit or ctx is cancelled. It closes frames on return.
func simulate(ctx context.Context, g *game, frames chan<- frame) error {
	defer close(frames)

	for {
		f, done := g.tick()
		select {
		case frames <- f:
		case <-ctx.Done():
			return nil
		}
		if done {
			return nil
		}

		select {
		case <-time.After(g.config.FrameRate):
		case <-ctx.Done():
			return nil
		}
	}
}

// display renders every frame it receives
func display(renderer *model.TerminalRenderer, frames <-chan frame) error {
	for f := range frames {
		renderer.Clear()
		displayGameStatus(renderer, f)
		fmt.Fprint(renderer.Out, f.view)
		if f.note != "" {
			fmt.Fprintln(renderer.Out, f.note)
		}
	}
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(renderer *model.TerminalRenderer, g *game) {
	fmt.Fprintf(renderer.Out, "Grid: %dx%d | Initial living cells: %d\n",
		g.board.Width(), g.board.Height(), g.board.Population())
	fmt.Fprintln(renderer.Out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(renderer.Out)
}

// displayGameStatus shows the current game status
func displayGameStatus(renderer *model.TerminalRenderer, f frame) {
	fmt.Fprintf(renderer.Out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		f.generation, f.livingCells, f.density, f.status)
	fmt.Fprintf(renderer.Out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		f.stats.GenerationsPerSecond, f.stats.AveragePopulation, f.stats.Runtime().Seconds())

	if f.sinceRestart > 0 {
		fmt.Fprintf(renderer.Out, "Generations since restart: %d\n", f.sinceRestart)
	}
	fmt.Fprintln(renderer.Out)
}

// displayFinalStats prints the run summary
func displayFinalStats(renderer *model.TerminalRenderer, stats *utils.Stats) {
	fmt.Fprintf(renderer.Out, "Final stats: %d generations in %.1f seconds (%d restarts)\n",
		stats.TotalGenerations, stats.Runtime().Seconds(), stats.Restarts)
	fmt.Fprintf(renderer.Out, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
