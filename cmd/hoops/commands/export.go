package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/threes/internal/dashboard"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered working set as CSV",
	Long: `Writes the filtered working set with the detail-table columns.
The file is named nba_stats_<season>.csv unless --out is given;
--out - writes to stdout.

Example:
  go run ./cmd/hoops export --season 2023-24
  go run ./cmd/hoops export --season 2023-24 --min-pct 0 --out -`,
	RunE: runExport,
}

var (
	exportFilters filterFlags
	exportOut     string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportFilters.register(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file, - for stdout (default nba_stats_<season>.csv)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ds, err := a.cache.Get(cmd.Context())
	if err != nil {
		return err
	}

	filters, err := exportFilters.resolve(ds)
	if err != nil {
		return err
	}
	rows := dashboard.WorkingSet(ds, filters)

	if exportOut == "-" {
		return dashboard.WriteCSV(out, rows)
	}

	path := exportOut
	if path == "" {
		path = dashboard.ExportFilename(filters.Season)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := dashboard.WriteCSV(w, rows); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	PrintSuccess(fmt.Sprintf("Exported %d rows to %s", len(rows), path))
	return nil
}
