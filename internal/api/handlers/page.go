package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/wonny/threes/internal/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{
			"pct":      func(v float64) string { return dashboard.Metric{Value: v, Available: true}.Format("%") },
			"num":      func(v float64) string { return dashboard.Metric{Value: v, Available: true}.Format("") },
			"selected": contains,
		}).
		ParseFS(templateFS, "templates/dashboard.html"),
)

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// pageData feeds templates/dashboard.html
type pageData struct {
	View        *dashboard.View
	Seasons     []string
	SeasonTeams []string
	ExportURL   string
	SliderMin   float64
	SliderMax   float64
	SliderStep  float64
}

// Page renders the HTML dashboard
// GET /?season=2023-24&team=...&min_pct=30
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.load(w, r)
	if !ok {
		return
	}

	v, ok := h.view(w, r, ds)
	if !ok {
		return
	}

	data := pageData{
		View:        v,
		Seasons:     ds.Seasons(),
		SeasonTeams: ds.TeamsInSeason(v.Filters.Season),
		ExportURL:   "/api/export?" + r.URL.RawQuery,
		SliderMin:   dashboard.MinThreePctFloor,
		SliderMax:   dashboard.MinThreePctCeiling,
		SliderStep:  dashboard.MinThreePctStep,
	}

	// render into a buffer so a template failure still yields a clean 500
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.WithError(err).Error("Failed to render dashboard page")
		respondError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
