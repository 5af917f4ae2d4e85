package contracts

// ChampionRecord names the title winner of one season
type ChampionRecord struct {
	Season       string `json:"season" yaml:"season"`
	ChampionTeam string `json:"champion_team" yaml:"team"`
}

// JoinedRecord is a team season left-joined with its season's champion
// ⭐ SSOT: the in-memory row shape every dashboard query works on
type JoinedRecord struct {
	TeamSeasonRecord
	ChampionTeam string `json:"champion_team"` // empty when the season has no champion row
	IsChampion   bool   `json:"is_champion"`
}

// Join attaches the champion of r's season (if any) and flags the champion row
func Join(r TeamSeasonRecord, championBySeason map[string]string) JoinedRecord {
	champ := championBySeason[r.Season]
	return JoinedRecord{
		TeamSeasonRecord: r,
		ChampionTeam:     champ,
		IsChampion:       champ != "" && r.TeamName == champ,
	}
}
