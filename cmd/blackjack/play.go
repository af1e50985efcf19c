package main

import (
	"io"
	rand "math/rand/v2"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// PlayCmd runs interactive rounds until the player declines another
type PlayCmd struct {
	Mode    string `kong:"help='Game mode PvP or PvC (prompted when empty)'"`
	Players int    `kong:"help='Number of PvP players (prompted when zero)'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
}

func (c *PlayCmd) Run(g *Globals) error {
	return c.run(g, os.Stdin, os.Stdout)
}

func (c *PlayCmd) run(g *Globals, in io.Reader, out io.Writer) error {
	cfg, err := g.load()
	if err != nil {
		console.NewRenderer(out, !g.NoColor).Error(err)
		return err
	}
	renderer := console.NewRenderer(out, cfg.UI.Color)
	if err := c.play(cfg, in, renderer); err != nil {
		renderer.Error(err)
		return err
	}
	return nil
}

func (c *PlayCmd) play(cfg *config.Config, in io.Reader, renderer *console.Renderer) error {
	if c.Mode != "" {
		cfg.Game.Mode = c.Mode
	}
	if c.Players != 0 {
		cfg.Game.Players = c.Players
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
	logger.Info("Using seed", "seed", seed)
	rng := randutil.New(seed)

	prompter := console.NewPrompter(in, renderer, logger)

	for {
		renderer.Title("♠ ♥ Welcome to Blackjack! ♦ ♣")
		if err := playRound(cfg, rng, renderer, prompter, logger); err != nil {
			logger.Error("Game aborted", "error", err)
			return err
		}

		again, err := prompter.PlayAgain()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// playRound asks for whatever the config leaves open and plays one round
// with a fresh deck
func playRound(cfg *config.Config, rng *rand.Rand, renderer *console.Renderer, prompter *console.Prompter, logger *log.Logger) error {
	var (
		mode game.Mode
		err  error
	)
	if cfg.Game.Mode != "" {
		mode, err = game.ParseMode(cfg.Game.Mode)
	} else {
		mode, err = prompter.Mode()
	}
	if err != nil {
		return err
	}

	players := 2
	if mode == game.PlayerVsPlayer {
		players = cfg.Game.Players
		if players == 0 {
			if players, err = prompter.PlayerCount(); err != nil {
				return err
			}
		}
	}

	round, err := game.NewRound(rng, mode,
		game.WithPlayers(players),
		game.WithLogger(logger),
		game.WithEventHandler(renderer.HandleEvent),
	)
	if err != nil {
		return err
	}

	_, err = round.Play(game.Policies{
		Human:    prompter.Decide,
		Computer: game.DealerPolicy,
	})
	return err
}
