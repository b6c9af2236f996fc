package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"sandfall/internal/app"
	"sandfall/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	world, err := cfg.NewWorld()
	if err != nil {
		return err
	}
	player, err := cfg.NewPlayer(world)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	size := world.Size()
	if w, h := screen.Size(); w < size.W || h < size.H+3 {
		log.Printf("terminal is %dx%d, world needs %dx%d; the view will be clipped", w, h, size.W, size.H+3)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("sandfall: %dx%d seed %d tps %d scenario %q", size.W, size.H, cfg.Seed, cfg.TPS, cfg.Scenario)
	return term.NewSession(screen, world, term.Options{TPS: cfg.TPS, Player: player}).Run(ctx)
}
