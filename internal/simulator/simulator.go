package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Players int
	Seed    int64
	Workers int // Defaults to GOMAXPROCS
	Logger  *log.Logger
	Clock   quartz.Clock
}

// Simulator plays independent computer-only rounds and aggregates results
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config}
}

// Run plays every round and returns the aggregated statistics. Round i is
// seeded with Seed+i, so results do not depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Rounds < 1 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}
	names, err := seatNames(s.config.Players)
	if err != nil {
		return nil, err
	}

	workers := min(s.config.Workers, s.config.Rounds)
	partials := make([]*statistics.Statistics, workers)
	g, gctx := errgroup.WithContext(ctx)

	// Worker w plays rounds w, w+workers, ... into its own statistics.
	// Scores are integral so the merged totals do not depend on how
	// rounds are split between workers.
	for w := range partials {
		partial := statistics.New(names)
		partials[w] = partial
		g.Go(func() error {
			for i := w; i < s.config.Rounds; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				seed := s.config.Seed + int64(i)
				result, err := s.playRound(seed)
				if err != nil {
					return fmt.Errorf("round %d (seed %d): %w", i+1, seed, err)
				}
				partial.Add(result)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := statistics.New(names)
	for _, partial := range partials {
		if err := stats.Merge(partial); err != nil {
			return nil, err
		}
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete", "rounds", stats.Rounds, "players", stats.Players,
		"wins", stats.Wins, "ties", stats.Ties, "no_winner", stats.NoWinner)
	return stats, nil
}

func (s *Simulator) playRound(seed int64) (statistics.RoundResult, error) {
	round, err := game.NewRound(randutil.New(seed), game.ComputerOnly,
		game.WithPlayers(s.config.Players),
		game.WithClock(s.config.Clock),
		game.WithLogger(s.config.Logger.With("seed", seed)),
	)
	if err != nil {
		return statistics.RoundResult{}, err
	}

	res, err := round.Play(game.Policies{Computer: game.DealerPolicy})
	if err != nil {
		return statistics.RoundResult{}, err
	}
	return toRoundResult(seed, res), nil
}

func toRoundResult(seed int64, res *game.Result) statistics.RoundResult {
	out := statistics.RoundResult{
		Seed:     seed,
		Scores:   make([]int, len(res.Players)),
		Naturals: make([]bool, len(res.Players)),
		Duration: res.Duration,
	}
	index := make(map[string]int, len(res.Players))
	for i, p := range res.Players {
		out.Scores[i] = p.Score
		out.Naturals[i] = game.IsNatural(p.Cards)
		index[p.Name] = i
	}
	for _, w := range res.Outcome.Winners {
		out.Winners = append(out.Winners, index[w.Name])
	}
	return out
}

func seatNames(players int) ([]string, error) {
	seats, err := game.ComputerOnly.Seats(players)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(seats))
	for i, p := range seats {
		names[i] = p.Name
	}
	return names, nil
}
