package dataset

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/threes/internal/contracts"
	"github.com/wonny/threes/pkg/logger"
)

func TestLoader_BuildsWhenMissing(t *testing.T) {
	paths := testPaths(t)
	fetcher := &fakeFetcher{}
	b, _ := newTestBuilder(t, fetcher, paths)
	l := NewLoader(b, paths, logger.Nop())

	ds, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, fetcher.Calls(), 10)
	assert.Len(t, ds.Records, 20)
	assert.Equal(t, contracts.UnitFraction, ds.ThreePctUnit)
	assert.Equal(t, "2023-24", ds.LatestSeason())
	assert.Len(t, ds.Seasons(), 10)
}

func TestLoader_SkipsBuildWhenPresent(t *testing.T) {
	paths := testPaths(t)
	b, _ := newTestBuilder(t, &fakeFetcher{}, paths)
	_, err := b.Build(context.Background())
	require.NoError(t, err)

	fetcher := &fakeFetcher{}
	again, _ := newTestBuilder(t, fetcher, paths)
	l := NewLoader(again, paths, logger.Nop())

	built, err := l.Ensure(context.Background())
	require.NoError(t, err)
	assert.False(t, built)
	assert.Empty(t, fetcher.Calls())
}

func TestLoader_RebuildsWhenOneFileMissing(t *testing.T) {
	paths := testPaths(t)
	b, _ := newTestBuilder(t, &fakeFetcher{}, paths)
	_, err := b.Build(context.Background())
	require.NoError(t, err)
	require.NoError(t, os.Remove(paths.Champions))

	fetcher := &fakeFetcher{}
	again, _ := newTestBuilder(t, fetcher, paths)
	built, err := NewLoader(again, paths, logger.Nop()).Ensure(context.Background())
	require.NoError(t, err)
	assert.True(t, built)
	assert.Len(t, fetcher.Calls(), 10)
}

func TestLoader_ChampionFlag(t *testing.T) {
	paths := testPaths(t)
	b, _ := newTestBuilder(t, &fakeFetcher{}, paths)
	ds, err := NewLoader(b, paths, logger.Nop()).Load(context.Background())
	require.NoError(t, err)

	championBySeason := testReference(t).ChampionBySeason()
	flagged := map[string]int{}
	for _, r := range ds.Records {
		assert.Equal(t, championBySeason[r.Season], r.ChampionTeam)
		assert.Equal(t, r.TeamName == r.ChampionTeam, r.IsChampion)
		if r.IsChampion {
			flagged[r.Season]++
		}
	}

	// the fake only serves Celtics and Warriors
	assert.Equal(t, 1, flagged["2023-24"])
	assert.Equal(t, 1, flagged["2014-15"])
	assert.Zero(t, flagged["2022-23"], "Denver is not in the fake data")
}

func TestLoader_MissingManifestAssumesFraction(t *testing.T) {
	paths := testPaths(t)
	b, _ := newTestBuilder(t, &fakeFetcher{}, paths)
	_, err := b.Build(context.Background())
	require.NoError(t, err)
	require.NoError(t, os.Remove(paths.Manifest()))

	ds, err := NewLoader(b, paths, logger.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, contracts.UnitFraction, ds.ThreePctUnit)
	assert.Equal(t, contracts.UnitFraction, ds.PercentPointsThreeUnit)
}

func TestLoader_PercentManifest(t *testing.T) {
	paths := testPaths(t)
	b, _ := newTestBuilder(t, &fakeFetcher{}, paths)
	_, err := b.Build(context.Background())
	require.NoError(t, err)

	m, err := ReadManifest(paths.Manifest())
	require.NoError(t, err)
	m.Units[contracts.ColThreePct] = contracts.UnitPercent
	require.NoError(t, WriteManifest(paths.Manifest(), m))

	ds, err := NewLoader(b, paths, logger.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, contracts.UnitPercent, ds.ThreePctUnit)
}

func TestLoader_BuildFailure(t *testing.T) {
	paths := testPaths(t)
	b, _ := newTestBuilder(t, &fakeFetcher{failOn: "2014-15"}, paths)

	_, err := NewLoader(b, paths, logger.Nop()).Load(context.Background())
	assert.ErrorIs(t, err, errStatsDown)
}

func TestDataset_Queries(t *testing.T) {
	ds := &Dataset{Records: []contracts.JoinedRecord{
		{TeamSeasonRecord: contracts.TeamSeasonRecord{Season: "2023-24", TeamName: "Boston Celtics"}},
		{TeamSeasonRecord: contracts.TeamSeasonRecord{Season: "2022-23", TeamName: "Denver Nuggets"}},
		{TeamSeasonRecord: contracts.TeamSeasonRecord{Season: "2023-24", TeamName: "Atlanta Hawks"}},
	}}

	assert.Equal(t, []string{"2022-23", "2023-24"}, ds.Seasons())
	assert.Equal(t, "2023-24", ds.LatestSeason())
	assert.True(t, ds.HasSeason("2022-23"))
	assert.False(t, ds.HasSeason("2014-15"))
	assert.Equal(t, []string{"Atlanta Hawks", "Boston Celtics"}, ds.TeamsInSeason("2023-24"))
	assert.Empty(t, (&Dataset{}).LatestSeason())
}
