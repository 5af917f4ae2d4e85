package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wonny/threes/internal/dashboard"
	"github.com/wonny/threes/internal/dataset"
	"github.com/wonny/threes/pkg/logger"
)

// DatasetSource hands out the process-wide dataset
type DatasetSource interface {
	Get(ctx context.Context) (*dataset.Dataset, error)
}

// DashboardHandler serves the dashboard page and its JSON/CSV endpoints
// ⭐ SSOT: every dashboard endpoint reads the dataset through this handler
type DashboardHandler struct {
	source DatasetSource
	logger *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(source DatasetSource, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		source: source,
		logger: log,
	}
}

// parseFilters reads season, team (repeatable) and min_pct from the query string.
// Missing values fall back to the dashboard defaults.
func parseFilters(r *http.Request, ds *dataset.Dataset) (dashboard.Filters, error) {
	q := r.URL.Query()
	f := dashboard.DefaultFilters(ds)

	if season := q.Get("season"); season != "" {
		f.Season = season
		f.Teams = ds.TeamsInSeason(season)
	}

	if teams, ok := q["team"]; ok {
		f.Teams = nil
		for _, t := range teams {
			if t != "" {
				f.Teams = append(f.Teams, t)
			}
		}
	}

	if raw := q.Get("min_pct"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, fmt.Errorf("%w: %q", dashboard.ErrInvalidMinPct, raw)
		}
		f.MinThreePct = v
	}

	return f, f.Validate(ds)
}

// load fetches the dataset, answering 500 itself on failure
func (h *DashboardHandler) load(w http.ResponseWriter, r *http.Request) (*dataset.Dataset, bool) {
	ds, err := h.source.Get(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load dataset")
		respondError(w, http.StatusInternalServerError, "Failed to load dataset")
		return nil, false
	}
	return ds, true
}

// view computes the dashboard view for the request, answering 400 on bad filters
func (h *DashboardHandler) view(w http.ResponseWriter, r *http.Request, ds *dataset.Dataset) (*dashboard.View, bool) {
	f, err := parseFilters(r, ds)
	if err == nil {
		var v *dashboard.View
		if v, err = dashboard.Compute(ds, f); err == nil {
			return v, true
		}
	}

	if errors.Is(err, dashboard.ErrUnknownSeason) || errors.Is(err, dashboard.ErrInvalidMinPct) {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	h.logger.WithError(err).Error("Failed to compute dashboard")
	respondError(w, http.StatusInternalServerError, "Failed to compute dashboard")
	return nil, false
}

// SeasonOption is one entry of the season selector
type SeasonOption struct {
	Season string   `json:"season"`
	Teams  []string `json:"teams"`
}

// GetSeasons returns the seasons with their teams, oldest first
// GET /api/seasons
func (h *DashboardHandler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.load(w, r)
	if !ok {
		return
	}

	seasons := ds.Seasons()
	options := make([]SeasonOption, 0, len(seasons))
	for _, s := range seasons {
		options = append(options, SeasonOption{Season: s, Teams: ds.TeamsInSeason(s)})
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"latest":  ds.LatestSeason(),
		"seasons": options,
	})
}

// GetDashboard returns summary, ranking and table for the filters
// GET /api/dashboard?season=2023-24&team=Boston+Celtics&min_pct=30
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.load(w, r)
	if !ok {
		return
	}

	v, ok := h.view(w, r, ds)
	if !ok {
		return
	}

	h.respondJSON(w, http.StatusOK, v)
}

// GetTrend returns the league-vs-champion attempts series over every season
// GET /api/trend
func (h *DashboardHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.load(w, r)
	if !ok {
		return
	}

	h.respondJSON(w, http.StatusOK, dashboard.Trend(ds))
}

// Export streams the working set as a CSV attachment
// GET /api/export?season=2023-24&min_pct=30
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.load(w, r)
	if !ok {
		return
	}

	f, err := parseFilters(r, ds)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows := dashboard.WorkingSet(ds, f)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dashboard.ExportFilename(f.Season)))
	w.WriteHeader(http.StatusOK)

	if err := dashboard.WriteCSV(w, rows); err != nil {
		h.logger.WithError(err).Error("Failed to write export")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"season": f.Season,
		"rows":   len(rows),
	}).Debug("Export written")
}
