package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hoops",
	Short: "NBA three-point dashboard",
	Long: `hoops - NBA three-point dashboard

Downloads ten regular seasons of team totals from stats.nba.com,
stores them as flat CSV files next to a champions table, and serves
a dashboard comparing league three-point trends with the champions.

Usage:
  go run ./cmd/hoops [command]

Examples:
  go run ./cmd/hoops build
  go run ./cmd/hoops serve --port 8501
  go run ./cmd/hoops show --season 2023-24 --min-pct 35
  go run ./cmd/hoops export --season 2023-24`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Ctrl+C cancels the command context, which stops a running build between seasons.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "env file to load (default is .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}
