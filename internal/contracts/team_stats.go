package contracts

// TeamSeasonRecord is one team's regular-season totals for one season
// ⭐ SSOT: the row shape of the team stats flat file
type TeamSeasonRecord struct {
	Season          string  `json:"season"`
	TeamID          int64   `json:"team_id"`
	TeamName        string  `json:"team_name"`
	GamesPlayed     int     `json:"gp"`
	Wins            int     `json:"w"`
	Losses          int     `json:"l"`
	ThreesMade      int     `json:"fg3m"`
	ThreesAttempted int     `json:"fg3a"`
	ThreePct        float64 `json:"fg3_pct"`
	Points          int     `json:"pts"`

	// Derived at build time and persisted
	ThreesPerGame      float64 `json:"threes_per_game"`
	ThreesAttPerGame   float64 `json:"threes_att_per_game"`
	PointsFromThree    int     `json:"points_from_3"`
	PercentPointsThree float64 `json:"percent_points_3"` // fraction of PTS
}

// Derive computes the four derived columns from the raw totals.
// Divisions are float divisions with no zero guard: GP or PTS of 0 yields Inf/NaN.
func (r *TeamSeasonRecord) Derive() {
	gp := float64(r.GamesPlayed)
	r.ThreesPerGame = float64(r.ThreesMade) / gp
	r.ThreesAttPerGame = float64(r.ThreesAttempted) / gp
	r.PointsFromThree = r.ThreesMade * 3
	r.PercentPointsThree = float64(r.PointsFromThree) / float64(r.Points)
}

// Column names of the team stats file, in file order
const (
	ColSeason             = "SEASON"
	ColTeamID             = "TEAM_ID"
	ColTeamName           = "TEAM_NAME"
	ColGamesPlayed        = "GP"
	ColWins               = "W"
	ColLosses             = "L"
	ColThreesMade         = "FG3M"
	ColThreesAttempted    = "FG3A"
	ColThreePct           = "FG3_PCT"
	ColPoints             = "PTS"
	ColThreesPerGame      = "THREES_PER_GAME"
	ColThreesAttPerGame   = "THREES_ATT_PER_GAME"
	ColPointsFromThree    = "POINTS_FROM_3"
	ColPercentPointsThree = "PERCENT_POINTS_3"
	ColChampionTeam       = "CHAMPION_TEAM"
	ColIsChampion         = "IS_CHAMPION"
)

// TeamStatsColumns is the exact header of the team stats file
var TeamStatsColumns = []string{
	ColSeason,
	ColTeamID,
	ColTeamName,
	ColGamesPlayed,
	ColWins,
	ColLosses,
	ColThreesMade,
	ColThreesAttempted,
	ColThreePct,
	ColPoints,
	ColThreesPerGame,
	ColThreesAttPerGame,
	ColPointsFromThree,
	ColPercentPointsThree,
}

// ChampionColumns is the exact header of the champions file
var ChampionColumns = []string{ColSeason, ColChampionTeam}
