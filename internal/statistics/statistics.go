package statistics

import (
	"fmt"
	"math"
	"time"
)

// RoundResult is the outcome of one simulated round, indexed by seat
type RoundResult struct {
	Seed     int64   // RNG seed for this round (for replay)
	Scores   []int   // Final score per seat
	Naturals []bool  // Two-card 21 per seat
	Winners  []int   // Seats sharing the top score; more than one is a tie
	Duration time.Duration
}

// SeatStats tracks results for one seat across rounds
type SeatStats struct {
	Name     string
	Rounds   int
	Wins     int
	Ties     int
	Busts    int
	Naturals int
	SumScore float64
	SumSq    float64 // Sum of squares for variance calculation
}

// WinRate returns the fraction of rounds won outright
func (s SeatStats) WinRate(rounds int) float64 {
	return rate(s.Wins, rounds)
}

// TieRate returns the fraction of rounds tied for the top score
func (s SeatStats) TieRate(rounds int) float64 {
	return rate(s.Ties, rounds)
}

// BustRate returns the fraction of rounds that ended over 21
func (s SeatStats) BustRate(rounds int) float64 {
	return rate(s.Busts, rounds)
}

// MeanScore returns the mean final score, busts included
func (s SeatStats) MeanScore() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumScore / float64(s.Rounds)
}

// Variance returns the sample variance of final scores
func (s SeatStats) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.MeanScore()
	return (s.SumSq - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of final scores
func (s SeatStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Statistics aggregates simulated rounds
type Statistics struct {
	Rounds   int
	Players  int
	Wins     int // Rounds with a single winner
	Ties     int // Rounds where the top score was shared
	NoWinner int // Rounds where every seat busted
	Seats    []SeatStats
	Duration time.Duration // Summed round durations
}

// New creates empty statistics for the named seats
func New(names []string) *Statistics {
	seats := make([]SeatStats, len(names))
	for i, name := range names {
		seats[i].Name = name
	}
	return &Statistics{Players: len(names), Seats: seats}
}

// Add incorporates a round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	s.Rounds++
	s.Duration += result.Duration

	switch len(result.Winners) {
	case 0:
		s.NoWinner++
	case 1:
		s.Wins++
		s.Seats[result.Winners[0]].Wins++
	default:
		s.Ties++
		for _, seat := range result.Winners {
			s.Seats[seat].Ties++
		}
	}

	for i, score := range result.Scores {
		seat := &s.Seats[i]
		seat.Rounds++
		seat.SumScore += float64(score)
		seat.SumSq += float64(score * score)
		if score > 21 {
			seat.Busts++
		}
		if i < len(result.Naturals) && result.Naturals[i] {
			seat.Naturals++
		}
	}
}

// Merge folds other into s. Both must track the same seats.
func (s *Statistics) Merge(other *Statistics) error {
	if other.Players != s.Players {
		return fmt.Errorf("cannot merge statistics for %d seats into %d", other.Players, s.Players)
	}
	s.Rounds += other.Rounds
	s.Wins += other.Wins
	s.Ties += other.Ties
	s.NoWinner += other.NoWinner
	s.Duration += other.Duration
	for i := range s.Seats {
		o := other.Seats[i]
		seat := &s.Seats[i]
		seat.Rounds += o.Rounds
		seat.Wins += o.Wins
		seat.Ties += o.Ties
		seat.Busts += o.Busts
		seat.Naturals += o.Naturals
		seat.SumScore += o.SumScore
		seat.SumSq += o.SumSq
	}
	return nil
}

// Validate checks the statistics are internally consistent
func (s *Statistics) Validate() error {
	if s.Wins+s.Ties+s.NoWinner != s.Rounds {
		return fmt.Errorf("outcomes %d+%d+%d do not add up to %d rounds", s.Wins, s.Ties, s.NoWinner, s.Rounds)
	}
	wins := 0
	for _, seat := range s.Seats {
		if seat.Rounds != s.Rounds {
			return fmt.Errorf("seat %s played %d rounds, expected %d", seat.Name, seat.Rounds, s.Rounds)
		}
		if seat.Wins+seat.Ties+seat.Busts > seat.Rounds {
			return fmt.Errorf("seat %s has more results than rounds", seat.Name)
		}
		wins += seat.Wins
	}
	if wins != s.Wins {
		return fmt.Errorf("seat wins %d do not match round wins %d", wins, s.Wins)
	}
	return nil
}

func rate(n, rounds int) float64 {
	if rounds == 0 {
		return 0
	}
	return float64(n) / float64(rounds)
}
