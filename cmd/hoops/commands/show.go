package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wonny/threes/internal/dashboard"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the dashboard metrics and ranking for a season",
	Long: `Prints the headline metrics and the makes-per-game ranking of the
filtered working set, the same numbers the web dashboard shows.

Example:
  go run ./cmd/hoops show
  go run ./cmd/hoops show --season 2015-16 --min-pct 35
  go run ./cmd/hoops show --season 2023-24 --team "Boston Celtics" --team "Dallas Mavericks"`,
	RunE: runShow,
}

var showFilters filterFlags

func init() {
	rootCmd.AddCommand(showCmd)

	showFilters.register(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ds, err := a.cache.Get(cmd.Context())
	if err != nil {
		return err
	}

	filters, err := showFilters.resolve(ds)
	if err != nil {
		return err
	}

	view, err := dashboard.Compute(ds, filters)
	if err != nil {
		return err
	}
	s := view.Summary

	PrintHeader(fmt.Sprintf("Key metrics - Season %s", s.Season))
	PrintKeyValue("Teams", strconv.Itoa(s.Teams), 30)
	PrintKeyValue("League 3PA per game", s.LeagueThreesAttPerGame.Format(""), 30)
	PrintKeyValue("League 3P%", s.LeagueThreePct.Format("%"), 30)
	if s.ChampionThreePct.Available {
		PrintKeyValue(fmt.Sprintf("Champion 3P%% (%s)", s.Champion), s.ChampionThreePct.Format("%"), 30)
		PrintKeyValue("Champion points from three", s.ChampionPercentPointsThree.Format("%"), 30)
	} else {
		PrintKeyValue("Champion", dashboard.Unavailable, 30)
	}

	if len(view.Table) == 0 {
		PrintWarning("No teams match the current filters")
		return nil
	}

	PrintSeparator()
	widths := []int{4, 26, 4, 4, 8, 8, 7, 7, 5}
	PrintTableHeader([]string{"#", "TEAM_NAME", "W", "L", "3PM/G", "3PA/G", "3P%", "PTS3%", "CHAMP"}, widths)
	for i, r := range view.Table {
		champ := ""
		if r.IsChampion {
			champ = "🏆"
		}
		PrintTableRow([]string{
			strconv.Itoa(i + 1),
			r.TeamName,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			fmt.Sprintf("%.1f", r.ThreesPerGame),
			fmt.Sprintf("%.1f", r.ThreesAttPerGame),
			fmt.Sprintf("%.1f", r.ThreePct),
			fmt.Sprintf("%.1f", r.PercentPointsThree),
			champ,
		}, widths)
	}

	return nil
}
