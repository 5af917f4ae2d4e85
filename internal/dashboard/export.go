package dashboard

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/wonny/threes/internal/contracts"
)

// TableColumns is the column set of the detail table and the CSV export
var TableColumns = []string{
	contracts.ColTeamName,
	contracts.ColSeason,
	contracts.ColWins,
	contracts.ColLosses,
	contracts.ColThreesPerGame,
	contracts.ColThreesAttPerGame,
	contracts.ColThreePct,
	contracts.ColPercentPointsThree,
	contracts.ColIsChampion,
}

// ExportFilename names the export of season
func ExportFilename(season string) string {
	if season == "" {
		return "nba_stats.csv"
	}
	return fmt.Sprintf("nba_stats_%s.csv", season)
}

// WriteCSV writes rows in working-set order as plain UTF-8 CSV
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TableColumns); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.TeamName,
			r.Season,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.FormatFloat(r.ThreesPerGame, 'f', -1, 64),
			strconv.FormatFloat(r.ThreesAttPerGame, 'f', -1, 64),
			strconv.FormatFloat(r.ThreePct, 'f', -1, 64),
			strconv.FormatFloat(r.PercentPointsThree, 'f', -1, 64),
			strconv.FormatBool(r.IsChampion),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
