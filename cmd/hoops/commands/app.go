package commands

import (
	"fmt"

	"github.com/wonny/threes/internal/dataset"
	"github.com/wonny/threes/internal/external/nbastats"
	"github.com/wonny/threes/internal/reference"
	"github.com/wonny/threes/pkg/config"
	"github.com/wonny/threes/pkg/httputil"
	"github.com/wonny/threes/pkg/logger"
	"github.com/wonny/threes/pkg/redis"
)

// app bundles the wired pipeline shared by every command
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	ref     *reference.Data
	redis   *redis.Client
	builder *dataset.Builder
	loader  *dataset.Loader
	cache   *dataset.Cache
}

// newApp wires config → logger → stats client → builder → loader → cache
func newApp() (*app, error) {
	// 1. Load config
	cfg, err := config.LoadWithEnvFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Reference data (season list + champions)
	ref, err := reference.Load(cfg.Data.ReferenceFile)
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}

	// 4. Stats client, paced and never retried
	httpClient := httputil.New(cfg, log).WithRateLimit(cfg.NBAStats.MaxRPS)
	statsClient := nbastats.NewClient(httpClient, cfg.NBAStats.BaseURL, log)

	// 5. Optional Redis season cache
	rdb, err := redis.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	var fetcher dataset.SeasonFetcher = statsClient
	if rdb.Enabled() {
		fetcher = dataset.NewCachedFetcher(statsClient, redis.NewCache(rdb, "threes"), redis.TTLWeek, log)
		log.Info("Redis season cache enabled")
	}

	// 6. Builder, loader and process-wide cache
	paths := dataset.Paths{
		Stats:     cfg.Data.StatsPath(),
		Champions: cfg.Data.ChampionsPath(),
	}
	builder := dataset.NewBuilder(fetcher, ref, paths, cfg.Data.FetchDelay, log)
	loader := dataset.NewLoader(builder, paths, log)

	log.WithFields(map[string]interface{}{
		"stats":             paths.Stats,
		"champions":         paths.Champions,
		"reference_version": ref.Version,
	}).Debug("Pipeline wired")

	return &app{
		cfg:     cfg,
		log:     log,
		ref:     ref,
		redis:   rdb,
		builder: builder,
		loader:  loader,
		cache:   dataset.NewCache(loader),
	}, nil
}

// Close releases external connections
func (a *app) Close() {
	if err := a.redis.Close(); err != nil {
		a.log.WithError(err).Warn("Failed to close redis")
	}
}
