// Package report writes simulation summaries as JSON files.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/blackjack/internal/statistics"
)

// SeatReport is one seat's share of a simulation
type SeatReport struct {
	Name      string  `json:"name"`
	WinRate   float64 `json:"win_rate"`
	TieRate   float64 `json:"tie_rate"`
	BustRate  float64 `json:"bust_rate"`
	Naturals  int     `json:"naturals"`
	MeanScore float64 `json:"mean_score"`
	StdDev    float64 `json:"std_dev"`
}

// Report is the JSON summary of a simulation run
type Report struct {
	Seed        int64        `json:"seed"`
	Rounds      int          `json:"rounds"`
	Players     int          `json:"players"`
	Wins        int          `json:"wins"`
	Ties        int          `json:"ties"`
	NoWinner    int          `json:"no_winner"`
	Seats       []SeatReport `json:"seats"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// New summarises stats for a run seeded with seed
func New(seed int64, stats *statistics.Statistics, at time.Time) Report {
	r := Report{
		Seed:        seed,
		Rounds:      stats.Rounds,
		Players:     stats.Players,
		Wins:        stats.Wins,
		Ties:        stats.Ties,
		NoWinner:    stats.NoWinner,
		Seats:       make([]SeatReport, len(stats.Seats)),
		GeneratedAt: at.UTC(),
	}
	for i, s := range stats.Seats {
		r.Seats[i] = SeatReport{
			Name:      s.Name,
			WinRate:   s.WinRate(stats.Rounds),
			TieRate:   s.TieRate(stats.Rounds),
			BustRate:  s.BustRate(stats.Rounds),
			Naturals:  s.Naturals,
			MeanScore: s.MeanScore(),
			StdDev:    s.StdDev(),
		}
	}
	return r
}

// WriteFile writes r as indented JSON. The file is written to a temporary
// sibling and renamed into place, so readers never see a partial report.
func WriteFile(filename string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
