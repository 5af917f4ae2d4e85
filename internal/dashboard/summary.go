package dashboard

import (
	"encoding/json"
	"fmt"
)

// Unavailable is what a metric without data renders as
const Unavailable = "unavailable"

// Metric is a value that may be missing
type Metric struct {
	Value     float64
	Available bool
}

func available(v float64) Metric {
	return Metric{Value: v, Available: true}
}

// Format renders the value with one decimal and suffix, or Unavailable
func (m Metric) Format(suffix string) string {
	if !m.Available {
		return Unavailable
	}
	return fmt.Sprintf("%.1f%s", m.Value, suffix)
}

// MarshalJSON encodes a missing metric as null
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Available {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// Summary holds the four headline metrics of a working set
type Summary struct {
	Season string `json:"season"`
	Teams  int    `json:"teams"`

	LeagueThreesAttPerGame Metric `json:"league_threes_att_per_game"`
	LeagueThreePct         Metric `json:"league_three_pct"`

	// Champion metrics come from the champion's working-set row; they are all
	// unavailable when that row was filtered out.
	Champion                   string `json:"champion,omitempty"`
	ChampionThreePct           Metric `json:"champion_three_pct"`
	ChampionThreesAttPerGame   Metric `json:"champion_threes_att_per_game"`
	ChampionPercentPointsThree Metric `json:"champion_percent_points_3"`
}

// Summarize computes league averages and champion metrics over rows
func Summarize(season string, rows []Row) Summary {
	s := Summary{Season: season, Teams: len(rows)}

	if len(rows) > 0 {
		var att, pct float64
		for _, r := range rows {
			att += r.ThreesAttPerGame
			pct += r.ThreePct
		}
		n := float64(len(rows))
		s.LeagueThreesAttPerGame = available(att / n)
		s.LeagueThreePct = available(pct / n)
	}

	for _, r := range rows {
		if r.IsChampion {
			s.Champion = r.TeamName
			s.ChampionThreePct = available(r.ThreePct)
			s.ChampionThreesAttPerGame = available(r.ThreesAttPerGame)
			s.ChampionPercentPointsThree = available(r.PercentPointsThree)
			break
		}
	}

	return s
}
