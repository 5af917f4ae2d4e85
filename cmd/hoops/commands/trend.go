package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/threes/internal/dashboard"
)

// trendCmd represents the trend command
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Print league vs champion three-point attempts per season",
	Long: `Prints, for every season, the league average of three-point attempts
per game next to the champion's. Filters do not apply to the trend.

Example:
  go run ./cmd/hoops trend`,
	RunE: runTrend,
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ds, err := a.cache.Get(cmd.Context())
	if err != nil {
		return err
	}

	PrintHeader("Three-point attempts per game (league vs champions)")
	widths := []int{9, 20, 20}
	PrintTableHeader([]string{"SEASON", "LEAGUE_THREES_ATT_PG", "CHAMP_THREES_ATT_PG"}, widths)
	for _, p := range dashboard.Trend(ds) {
		champ := dashboard.Unavailable
		if p.ChampionThreesAttPerGame != nil {
			champ = fmt.Sprintf("%.1f", *p.ChampionThreesAttPerGame)
		}
		PrintTableRow([]string{p.Season, fmt.Sprintf("%.1f", p.LeagueThreesAttPerGame), champ}, widths)
	}
	return nil
}
