package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/threes/internal/dashboard"
	"github.com/wonny/threes/internal/dataset"
)

// filterFlags are the dashboard controls as CLI flags
type filterFlags struct {
	season string
	teams  []string
	minPct float64
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.season, "season", "", "season label, e.g. 2023-24 (default: latest)")
	cmd.Flags().StringArrayVar(&f.teams, "team", nil, "team name, repeatable, taken verbatim (default: every team of the season)")
	cmd.Flags().Float64Var(&f.minPct, "min-pct", dashboard.DefaultMinThreePct, "minimum three-point percentage (0-60)")
}

// resolve turns the flags into validated filters
func (f *filterFlags) resolve(ds *dataset.Dataset) (dashboard.Filters, error) {
	filters := dashboard.DefaultFilters(ds)
	if f.season != "" {
		filters.Season = f.season
		filters.Teams = ds.TeamsInSeason(f.season)
	}
	if len(f.teams) > 0 {
		filters.Teams = f.teams
	}
	filters.MinThreePct = f.minPct

	return filters, filters.Validate(ds)
}
