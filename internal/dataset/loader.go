package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/wonny/threes/internal/contracts"
	"github.com/wonny/threes/pkg/logger"
)

// Loader guarantees the flat files exist, then reads and joins them
type Loader struct {
	builder *Builder
	paths   Paths
	logger  *logger.Logger
}

// NewLoader creates a Loader that builds through b when a file is missing
func NewLoader(b *Builder, paths Paths, log *logger.Logger) *Loader {
	return &Loader{
		builder: b,
		paths:   paths,
		logger:  log.Module("loader"),
	}
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Ensure runs the builder when either flat file is missing.
// Existence is the only trigger; stale files are never rebuilt.
func (l *Loader) Ensure(ctx context.Context) (built bool, err error) {
	for _, path := range []string{l.paths.Stats, l.paths.Champions} {
		ok, err := exists(path)
		if err != nil {
			return false, fmt.Errorf("stat %s: %w", path, err)
		}
		if !ok {
			l.logger.WithField("missing", path).Info("Flat file missing, building dataset")
			if _, err := l.builder.Build(ctx); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Load ensures the files, reads them, joins stats with champions and flags champion rows
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	if _, err := l.Ensure(ctx); err != nil {
		return nil, fmt.Errorf("ensure data files: %w", err)
	}

	stats, err := ReadTeamStats(l.paths.Stats)
	if err != nil {
		return nil, err
	}

	champions, err := ReadChampions(l.paths.Champions)
	if err != nil {
		return nil, err
	}

	manifest, err := ReadManifest(l.paths.Manifest())
	if err != nil {
		return nil, err
	}
	if manifest == nil {
		l.logger.WithField("path", l.paths.Manifest()).Warn("Manifest missing, assuming fractional percentages")
	}

	championBySeason := make(map[string]string, len(champions))
	for _, c := range champions {
		championBySeason[c.Season] = c.ChampionTeam
	}

	records := make([]contracts.JoinedRecord, len(stats))
	for i, r := range stats {
		records[i] = contracts.Join(r, championBySeason)
	}

	l.logger.WithFields(map[string]interface{}{
		"rows":      len(records),
		"champions": len(champions),
	}).Info("Dataset loaded")

	return &Dataset{
		Records:                records,
		ThreePctUnit:           manifest.Unit(contracts.ColThreePct),
		PercentPointsThreeUnit: manifest.Unit(contracts.ColPercentPointsThree),
	}, nil
}
