package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigPath = "config.yaml"

func main() {
	configPath := defaultConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		log.Printf("Using default configuration: %v", err)
		config = utils.DefaultConfig()
	}

	renderer := model.NewTerminalRenderer()

	if config.Interactive {
		board, err := model.NewBoard(config.Width, config.Height)
		if err != nil {
			log.Fatalf("Failed to create board: %v", err)
		}
		if err = runInteractive(board, os.Stdin, renderer.Out); err != nil {
			log.Fatalf("Interactive session failed: %v", err)
		}
		return
	}

	g, err := newGame(config)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	displayGameInfo(renderer, g)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		frames    = make(chan frame)
	)
	eg.Go(func() error {
		return simulate(egCtx, g, frames)
	})
	eg.Go(func() error {
		return display(renderer, frames)
	})

	if err = eg.Wait(); err != nil {
		log.Printf("Game loop error: %v", err)
	}
	if ctx.Err() != nil {
		fmt.Fprintln(renderer.Out, "\n🛑 Shutting down gracefully...")
	}
	displayFinalStats(renderer, g.stats)
}
