package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/report"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd plays seeded computer-only rounds and prints statistics
type SimulateCmd struct {
	Rounds  int    `kong:"help='Number of rounds to simulate (default from config)'"`
	Players int    `kong:"help='Computer players per round (default from config)'"`
	Workers int    `kong:"help='Parallel workers (0 uses all CPUs)'"`
	Seed    *int64 `kong:"help='Base RNG seed; round i uses seed+i (optional)'"`
	Report  string `kong:"help='Also write a JSON report to this path'"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.run(ctx, g, os.Stdout)
}

func (c *SimulateCmd) run(ctx context.Context, g *Globals, out io.Writer) error {
	cfg, err := g.load()
	if err != nil {
		console.NewRenderer(out, !g.NoColor).Error(err)
		return err
	}
	renderer := console.NewRenderer(out, cfg.UI.Color)
	if err := c.simulate(ctx, cfg, out, renderer); err != nil {
		renderer.Error(err)
		return err
	}
	return nil
}

func (c *SimulateCmd) simulate(ctx context.Context, cfg *config.Config, out io.Writer, renderer *console.Renderer) error {
	if c.Rounds != 0 {
		cfg.Simulate.Rounds = c.Rounds
	}
	if c.Players != 0 {
		cfg.Simulate.Players = c.Players
	}
	if c.Workers != 0 {
		cfg.Simulate.Workers = c.Workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := resolveSeed(c.Seed, cfg.Game.Seed)
	logger.Info("Starting simulation", "rounds", cfg.Simulate.Rounds, "players", cfg.Simulate.Players, "seed", seed)

	sim := simulator.New(simulator.Config{
		Rounds:  cfg.Simulate.Rounds,
		Players: cfg.Simulate.Players,
		Seed:    seed,
		Workers: cfg.Simulate.Workers,
		Logger:  logger,
	})
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	renderer.Statistics(stats)
	_, _ = fmt.Fprintf(out, "  Seed: %d\n", seed)

	if c.Report != "" {
		if err := report.WriteFile(c.Report, report.New(seed, stats, time.Now())); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Report)
	}
	return nil
}
