package dashboard

import (
	"github.com/wonny/threes/internal/dataset"
)

// Row is one working-set row. Percentages are on the [0,100] display scale.
type Row struct {
	TeamName           string  `json:"team_name"`
	Season             string  `json:"season"`
	Wins               int     `json:"w"`
	Losses             int     `json:"l"`
	ThreesPerGame      float64 `json:"threes_per_game"`
	ThreesAttPerGame   float64 `json:"threes_att_per_game"`
	ThreePct           float64 `json:"fg3_pct"`
	PercentPointsThree float64 `json:"percent_points_3"`
	IsChampion         bool    `json:"is_champion"`
}

// WorkingSet applies the filters in order: season, teams, rescale, minimum percentage.
// Rescaling follows the unit recorded in the dataset manifest.
// Rows keep dataset order.
func WorkingSet(ds *dataset.Dataset, f Filters) []Row {
	var teams map[string]bool
	if len(f.Teams) > 0 {
		teams = make(map[string]bool, len(f.Teams))
		for _, t := range f.Teams {
			teams[t] = true
		}
	}

	rows := []Row{}
	for _, r := range ds.Records {
		if r.Season != f.Season {
			continue
		}
		if teams != nil && !teams[r.TeamName] {
			continue
		}

		pct := ds.ThreePctUnit.ToPercent(r.ThreePct)
		if pct < f.MinThreePct {
			continue
		}

		rows = append(rows, Row{
			TeamName:           r.TeamName,
			Season:             r.Season,
			Wins:               r.Wins,
			Losses:             r.Losses,
			ThreesPerGame:      r.ThreesPerGame,
			ThreesAttPerGame:   r.ThreesAttPerGame,
			ThreePct:           pct,
			PercentPointsThree: ds.PercentPointsThreeUnit.ToPercent(r.PercentPointsThree),
			IsChampion:         r.IsChampion,
		})
	}

	return rows
}
