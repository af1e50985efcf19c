package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/statistics"
)

func sampleStats() *statistics.Statistics {
	s := statistics.New([]string{"Computer 1", "Computer 2"})
	s.Add(statistics.RoundResult{Scores: []int{20, 18}, Winners: []int{0}})
	s.Add(statistics.RoundResult{Scores: []int{22, 21}, Naturals: []bool{false, true}, Winners: []int{1}})
	return s
}

func TestNew(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r := New(42, sampleStats(), at)

	assert.Equal(t, int64(42), r.Seed)
	assert.Equal(t, 2, r.Rounds)
	assert.Equal(t, 2, r.Wins)
	require.Len(t, r.Seats, 2)
	assert.InDelta(t, 0.5, r.Seats[0].WinRate, 1e-9)
	assert.InDelta(t, 0.5, r.Seats[0].BustRate, 1e-9)
	assert.Equal(t, 1, r.Seats[1].Naturals)
	assert.Equal(t, at, r.GeneratedAt)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	r := New(7, sampleStats(), time.Now())

	require.NoError(t, WriteFile(path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r.Seed, got.Seed)
	assert.Equal(t, r.Seats, got.Seats)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")

	// Overwrite keeps a single file
	require.NoError(t, WriteFile(path, New(8, sampleStats(), time.Now())))
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileMissingDir(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "nope", "report.json"), Report{})
	assert.Error(t, err)
}
