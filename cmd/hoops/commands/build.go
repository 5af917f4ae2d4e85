package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Download every season and write the flat files",
	Long: `Builds the dataset from stats.nba.com.

This command:
- fetches the ten reference seasons one by one (FETCH_DELAY apart)
- derives per-game and share-of-points columns
- writes the team stats CSV, the champions CSV and the manifest

Without --force the build only runs when a flat file is missing.
Any fetch failure aborts the build and leaves existing files untouched.

Example:
  go run ./cmd/hoops build
  go run ./cmd/hoops build --force`,
	RunE: runBuild,
}

var (
	buildForce bool
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&buildForce, "force", false, "rebuild even when the files exist")
}

func runBuild(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	PrintHeader("Dataset build")
	PrintKeyValue("Seasons", fmt.Sprintf("%s ~ %s (%d)", a.ref.Seasons[0], a.ref.Seasons[len(a.ref.Seasons)-1], len(a.ref.Seasons)), 10)
	PrintKeyValue("Stats", a.cfg.Data.StatsPath(), 10)
	PrintKeyValue("Champions", a.cfg.Data.ChampionsPath(), 10)
	PrintKeyValue("Delay", a.cfg.Data.FetchDelay.String(), 10)
	PrintSeparator()

	if !buildForce {
		built, err := a.loader.Ensure(ctx)
		if err != nil {
			return fmt.Errorf("build dataset: %w", err)
		}
		if !built {
			PrintInfo("Flat files already exist, nothing to do (use --force to rebuild)")
			return nil
		}
		PrintSuccess("Dataset built")
		return nil
	}

	result, err := a.builder.Build(ctx)
	if err != nil {
		return fmt.Errorf("build dataset: %w", err)
	}

	PrintSuccess(fmt.Sprintf("Dataset built: %d rows from %d seasons in %.2fs",
		result.Rows, result.Seasons, result.Duration.Seconds()))
	return nil
}
