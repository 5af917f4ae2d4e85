package dataset

import (
	"context"
	"time"

	"github.com/wonny/threes/internal/contracts"
	"github.com/wonny/threes/pkg/logger"
	"github.com/wonny/threes/pkg/redis"
)

// SeasonCache stores JSON-encoded values by key; *redis.Cache satisfies it
type SeasonCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CachedFetcher serves seasons from Redis when present and stores fresh
// downloads there, so a forced rebuild does not hit the stats API again.
// With Redis disabled it is a transparent pass-through.
type CachedFetcher struct {
	next   SeasonFetcher
	cache  SeasonCache
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedFetcher wraps next with cache
func NewCachedFetcher(next SeasonFetcher, cache SeasonCache, ttl time.Duration, log *logger.Logger) *CachedFetcher {
	return &CachedFetcher{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: log.Module("season_cache"),
	}
}

// FetchTeamStats implements SeasonFetcher
func (f *CachedFetcher) FetchTeamStats(ctx context.Context, season string) ([]contracts.TeamSeasonRecord, error) {
	key := redis.SeasonStatsKey(season)

	var cached []contracts.TeamSeasonRecord
	found, err := f.cache.Get(ctx, key, &cached)
	if err != nil {
		f.logger.WithError(err).WithField("season", season).Warn("Season cache read failed, fetching")
	}
	if found {
		f.logger.WithField("season", season).Debug("Season served from cache")
		return cached, nil
	}

	records, err := f.next.FetchTeamStats(ctx, season)
	if err != nil {
		return nil, err
	}

	if err := f.cache.Set(ctx, key, records, f.ttl); err != nil {
		f.logger.WithError(err).WithField("season", season).Warn("Season cache write failed")
	}

	return records, nil
}
