package dashboard

import (
	"errors"
	"fmt"

	"github.com/wonny/threes/internal/dataset"
)

var (
	// ErrUnknownSeason is returned when the selected season has no rows
	ErrUnknownSeason = errors.New("unknown season")

	// ErrInvalidMinPct is returned when the minimum percentage is off the slider range
	ErrInvalidMinPct = errors.New("invalid minimum three-point percentage")
)

// Slider range of the minimum three-point percentage filter (display scale)
const (
	MinThreePctFloor   = 0.0
	MinThreePctCeiling = 60.0
	MinThreePctStep    = 1.0
	DefaultMinThreePct = 30.0
)

// Filters are the user-selected controls
type Filters struct {
	Season      string   `json:"season"`
	Teams       []string `json:"teams"`         // empty means every team of the season
	MinThreePct float64  `json:"min_three_pct"` // display scale, [0,100]
}

// DefaultFilters selects the latest season, all its teams and a 30% floor
func DefaultFilters(ds *dataset.Dataset) Filters {
	season := ds.LatestSeason()
	return Filters{
		Season:      season,
		Teams:       ds.TeamsInSeason(season),
		MinThreePct: DefaultMinThreePct,
	}
}

// Validate checks f against ds. An empty dataset accepts the empty season,
// so the dashboard still renders with every metric unavailable.
func (f Filters) Validate(ds *dataset.Dataset) error {
	emptyDefault := f.Season == "" && len(ds.Records) == 0
	if !emptyDefault && !ds.HasSeason(f.Season) {
		return fmt.Errorf("%w: %q", ErrUnknownSeason, f.Season)
	}
	if f.MinThreePct < MinThreePctFloor || f.MinThreePct > MinThreePctCeiling {
		return fmt.Errorf("%w: %g (valid: %g-%g)", ErrInvalidMinPct, f.MinThreePct, MinThreePctFloor, MinThreePctCeiling)
	}
	return nil
}
