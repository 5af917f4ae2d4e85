package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wonny/threes/internal/contracts"
	"github.com/wonny/threes/internal/reference"
	"github.com/wonny/threes/pkg/logger"
)

var errStatsDown = errors.New("stats api down")

// fakeFetcher returns two teams per season; the 2023-24 champion is one of them
type fakeFetcher struct {
	mu     sync.Mutex
	calls  []string
	failOn string
}

func (f *fakeFetcher) FetchTeamStats(_ context.Context, season string) ([]contracts.TeamSeasonRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, season)
	f.mu.Unlock()

	if season == f.failOn {
		return nil, errStatsDown
	}

	var start int
	fmt.Sscanf(season, "%d", &start)
	bump := start - 2014

	return []contracts.TeamSeasonRecord{
		{
			TeamID: 1610612738, TeamName: "Boston Celtics",
			GamesPlayed: 82, Wins: 50 + bump, Losses: 32 - bump,
			ThreesMade: 800 + 50*bump, ThreesAttempted: 2300 + 120*bump,
			ThreePct: 0.35 + float64(bump)/1000, Points: 8500 + 100*bump,
		},
		{
			TeamID: 1610612744, TeamName: "Golden State Warriors",
			GamesPlayed: 82, Wins: 60 - bump, Losses: 22 + bump,
			ThreesMade: 880 + 40*bump, ThreesAttempted: 2200 + 110*bump,
			ThreePct: 0.398, Points: 9000 + 50*bump,
		},
	}, nil
}

func (f *fakeFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func testPaths(t *testing.T) Paths {
	t.Helper()
	dir := t.TempDir()
	return Paths{
		Stats:     filepath.Join(dir, "processed_team_stats_2015_2025.csv"),
		Champions: filepath.Join(dir, "champions.csv"),
	}
}

func testReference(t *testing.T) *reference.Data {
	t.Helper()
	ref, err := reference.Default()
	require.NoError(t, err)
	return ref
}

// newTestBuilder records waits instead of sleeping
func newTestBuilder(t *testing.T, f SeasonFetcher, paths Paths) (*Builder, *[]time.Duration) {
	t.Helper()
	b := NewBuilder(f, testReference(t), paths, 1500*time.Millisecond, logger.Nop())
	var waits []time.Duration
	b.wait = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return b, &waits
}
