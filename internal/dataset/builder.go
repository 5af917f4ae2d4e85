package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/threes/internal/contracts"
	"github.com/wonny/threes/internal/reference"
	"github.com/wonny/threes/pkg/logger"
)

// SeasonFetcher returns one season's team totals, tagged with the season label
type SeasonFetcher interface {
	FetchTeamStats(ctx context.Context, season string) ([]contracts.TeamSeasonRecord, error)
}

// Paths locates the flat files
type Paths struct {
	Stats     string
	Champions string
}

// Manifest returns the manifest path belonging to p.Stats
func (p Paths) Manifest() string {
	return ManifestPath(p.Stats)
}

// BuildResult summarises a completed build
type BuildResult struct {
	Seasons  int           `json:"seasons"`
	Rows     int           `json:"rows"`
	Paths    Paths         `json:"paths"`
	Duration time.Duration `json:"duration"`
}

// Builder produces the flat files from scratch.
// Seasons are fetched one at a time with a fixed pause in between; the
// remote service rate-limits aggressively, so calls are never parallelised.
// ⭐ SSOT: the only writer of the flat files
type Builder struct {
	fetcher SeasonFetcher
	ref     *reference.Data
	paths   Paths
	delay   time.Duration
	wait    func(ctx context.Context, d time.Duration) error
	logger  *logger.Logger
}

// NewBuilder creates a Builder
func NewBuilder(fetcher SeasonFetcher, ref *reference.Data, paths Paths, delay time.Duration, log *logger.Logger) *Builder {
	return &Builder{
		fetcher: fetcher,
		ref:     ref,
		paths:   paths,
		delay:   delay,
		wait:    sleep,
		logger:  log.Module("builder"),
	}
}

// sleep waits d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Build fetches every reference season, derives the computed columns and
// overwrites the team stats file, the champions file and the manifest.
// A fetch failure aborts before any file is touched.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()
	seasons := b.ref.Seasons

	b.logger.WithFields(map[string]interface{}{
		"seasons": len(seasons),
		"delay":   b.delay.String(),
	}).Info("Starting dataset build")

	var all []contracts.TeamSeasonRecord
	for i, season := range seasons {
		if i > 0 {
			if err := b.wait(ctx, b.delay); err != nil {
				return nil, fmt.Errorf("build interrupted before %s: %w", season, err)
			}
		}

		records, err := b.fetcher.FetchTeamStats(ctx, season)
		if err != nil {
			b.logger.WithError(err).WithField("season", season).Error("Season fetch failed, aborting build")
			return nil, fmt.Errorf("fetch season %s: %w", season, err)
		}

		for j := range records {
			records[j].Season = season
			records[j].Derive()
		}
		all = append(all, records...)

		b.logger.WithFields(map[string]interface{}{
			"season":   season,
			"rows":     len(records),
			"progress": fmt.Sprintf("%d/%d", i+1, len(seasons)),
		}).Info("Season fetched")
	}

	if err := WriteTeamStats(b.paths.Stats, all); err != nil {
		return nil, fmt.Errorf("write team stats: %w", err)
	}

	if err := WriteChampions(b.paths.Champions, b.ref.Champions); err != nil {
		return nil, fmt.Errorf("write champions: %w", err)
	}

	hash, err := b.ref.Hash()
	if err != nil {
		return nil, fmt.Errorf("hash reference data: %w", err)
	}
	manifest := &Manifest{
		ReferenceVersion: b.ref.Version,
		ReferenceHash:    hash,
		Seasons:          seasons,
		Rows:             len(all),
		Units: map[string]contracts.PercentUnit{
			contracts.ColThreePct:           contracts.UnitFraction,
			contracts.ColPercentPointsThree: contracts.UnitFraction,
		},
	}
	if err := WriteManifest(b.paths.Manifest(), manifest); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	result := &BuildResult{
		Seasons:  len(seasons),
		Rows:     len(all),
		Paths:    b.paths,
		Duration: time.Since(start),
	}

	b.logger.WithFields(map[string]interface{}{
		"rows":     result.Rows,
		"duration": result.Duration.String(),
	}).Info("Dataset build completed")

	return result, nil
}
