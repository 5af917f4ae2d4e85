package dataset

import (
	"sort"

	"github.com/wonny/threes/internal/contracts"
)

// Dataset is the joined, champion-flagged table plus the units of its percentage columns
type Dataset struct {
	Records                []contracts.JoinedRecord
	ThreePctUnit           contracts.PercentUnit
	PercentPointsThreeUnit contracts.PercentUnit
}

// Seasons returns the distinct seasons, oldest first
func (d *Dataset) Seasons() []string {
	seen := make(map[string]bool)
	var seasons []string
	for _, r := range d.Records {
		if !seen[r.Season] {
			seen[r.Season] = true
			seasons = append(seasons, r.Season)
		}
	}
	sort.Strings(seasons)
	return seasons
}

// LatestSeason returns the most recent season, or "" for an empty dataset
func (d *Dataset) LatestSeason() string {
	seasons := d.Seasons()
	if len(seasons) == 0 {
		return ""
	}
	return seasons[len(seasons)-1]
}

// HasSeason reports whether any row belongs to season
func (d *Dataset) HasSeason(season string) bool {
	for _, r := range d.Records {
		if r.Season == season {
			return true
		}
	}
	return false
}

// TeamsInSeason returns the distinct team names of season, sorted
func (d *Dataset) TeamsInSeason(season string) []string {
	seen := make(map[string]bool)
	var teams []string
	for _, r := range d.Records {
		if r.Season == season && !seen[r.TeamName] {
			seen[r.TeamName] = true
			teams = append(teams, r.TeamName)
		}
	}
	sort.Strings(teams)
	return teams
}
