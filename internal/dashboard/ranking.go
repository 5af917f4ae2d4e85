package dashboard

import (
	"sort"

	"github.com/wonny/threes/internal/dataset"
)

// RankEntry is one bar of the makes-per-game chart
type RankEntry struct {
	Rank          int     `json:"rank"`
	TeamName      string  `json:"team_name"`
	ThreesPerGame float64 `json:"threes_per_game"`
	IsChampion    bool    `json:"is_champion"`
}

// byMakesPerGame returns a copy of rows sorted by makes per game, descending.
// Ties keep working-set order.
func byMakesPerGame(rows []Row) []Row {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ThreesPerGame > sorted[j].ThreesPerGame
	})
	return sorted
}

// Ranking orders the working set by makes per game
func Ranking(rows []Row) []RankEntry {
	sorted := byMakesPerGame(rows)
	ranking := make([]RankEntry, len(sorted))
	for i, r := range sorted {
		ranking[i] = RankEntry{
			Rank:          i + 1,
			TeamName:      r.TeamName,
			ThreesPerGame: r.ThreesPerGame,
			IsChampion:    r.IsChampion,
		}
	}
	return ranking
}

// Table is the detail table: the working set sorted by makes per game
func Table(rows []Row) []Row {
	return byMakesPerGame(rows)
}

// TrendPoint is one season of the league-vs-champion attempts series
type TrendPoint struct {
	Season                   string   `json:"season"`
	LeagueThreesAttPerGame   float64  `json:"league_threes_att_per_game"`
	ChampionThreesAttPerGame *float64 `json:"champion_threes_att_per_game"` // nil when the season has no champion row
}

// Trend computes one point per season over the whole dataset, ignoring filters
func Trend(ds *dataset.Dataset) []TrendPoint {
	type acc struct {
		sum      float64
		n        int
		champion *float64
	}
	bySeason := make(map[string]*acc)

	for _, r := range ds.Records {
		a := bySeason[r.Season]
		if a == nil {
			a = &acc{}
			bySeason[r.Season] = a
		}
		a.sum += r.ThreesAttPerGame
		a.n++
		if r.IsChampion && a.champion == nil {
			v := r.ThreesAttPerGame
			a.champion = &v
		}
	}

	seasons := ds.Seasons()
	points := make([]TrendPoint, 0, len(seasons))
	for _, season := range seasons {
		a := bySeason[season]
		points = append(points, TrendPoint{
			Season:                   season,
			LeagueThreesAttPerGame:   a.sum / float64(a.n),
			ChampionThreesAttPerGame: a.champion,
		})
	}
	return points
}
