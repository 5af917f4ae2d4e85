package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/threes/internal/api"
	"github.com/wonny/threes/internal/api/handlers"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	Long: `Starts the dashboard HTTP server.

The dataset is loaded once (building it first if a flat file is
missing) and reused for every request until the process exits.

Endpoints:
  GET  /                - Dashboard page
  GET  /health          - Health check
  GET  /api/seasons     - Seasons and their teams
  GET  /api/dashboard   - Metrics, ranking and table for the filters
  GET  /api/trend       - League vs champion attempts per season
  GET  /api/export      - Filtered working set as CSV

Example:
  go run ./cmd/hoops serve
  go run ./cmd/hoops serve --port 8080`,
	RunE: runServe,
}

var (
	servePort string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "HTTP port (default PORT or 8501)")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if servePort != "" {
		a.cfg.Port = servePort
	}

	// Warm the cache so the first page view does not pay for a build.
	// A failure here is not fatal: the next request retries the load.
	if _, err := a.cache.Get(cmd.Context()); err != nil {
		a.log.WithError(err).Warn("Initial dataset load failed, will retry on first request")
	}

	dashboardHandler := handlers.NewDashboardHandler(a.cache, a.log)
	router := api.NewRouter(dashboardHandler, a.log)
	server := api.New(a.cfg, a.log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	PrintSuccess(fmt.Sprintf("Dashboard running on http://localhost:%s", a.cfg.Port))
	PrintInfo("Press Ctrl+C to stop")

	// Wait for interrupt signal
	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.log.Info("Server stopped")
	return nil
}
