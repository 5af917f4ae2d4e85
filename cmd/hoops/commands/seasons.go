package commands

import (
	"strconv"

	"github.com/spf13/cobra"
)

// seasonsCmd represents the seasons command
var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List seasons, team counts and champions",
	Long: `Lists every season in the dataset with its team count and champion.
Builds the dataset first when a flat file is missing.

Example:
  go run ./cmd/hoops seasons`,
	RunE: runSeasons,
}

func init() {
	rootCmd.AddCommand(seasonsCmd)
}

func runSeasons(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ds, err := a.cache.Get(cmd.Context())
	if err != nil {
		return err
	}

	champions := a.ref.ChampionBySeason()

	PrintHeader("Seasons")
	widths := []int{9, 6, 28}
	PrintTableHeader([]string{"SEASON", "TEAMS", "CHAMPION_TEAM"}, widths)
	for _, season := range ds.Seasons() {
		PrintTableRow([]string{
			season,
			strconv.Itoa(len(ds.TeamsInSeason(season))),
			champions[season],
		}, widths)
	}
	return nil
}
