package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/threes/internal/contracts"
	"github.com/wonny/threes/internal/dataset"
	"github.com/wonny/threes/pkg/logger"
)

type staticSource struct {
	ds  *dataset.Dataset
	err error
}

func (s staticSource) Get(context.Context) (*dataset.Dataset, error) {
	return s.ds, s.err
}

func record(season, team string, fg3m, fg3a int, pct float64) contracts.JoinedRecord {
	r := contracts.TeamSeasonRecord{
		Season: season, TeamName: team,
		GamesPlayed: 82, Wins: 41, Losses: 41,
		ThreesMade: fg3m, ThreesAttempted: fg3a, ThreePct: pct, Points: 9500,
	}
	r.Derive()
	return contracts.Join(r, map[string]string{
		"2022-23": "Denver Nuggets",
		"2023-24": "Boston Celtics",
	})
}

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Records: []contracts.JoinedRecord{
			record("2022-23", "Denver Nuggets", 968, 2570, 0.379),
			record("2022-23", "Boston Celtics", 1315, 3499, 0.376),
			record("2023-24", "Boston Celtics", 1351, 3482, 0.388),
			record("2023-24", "Detroit Pistons", 810, 2308, 0.291),
			record("2023-24", "Golden State Warriors", 1211, 3279, 0.369),
		},
		ThreePctUnit:           contracts.UnitFraction,
		PercentPointsThreeUnit: contracts.UnitFraction,
	}
}

func serve(t *testing.T, h *DashboardHandler, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func newHandler(source DatasetSource) *DashboardHandler {
	return NewDashboardHandler(source, logger.Nop())
}

func TestGetSeasons(t *testing.T) {
	h := newHandler(staticSource{ds: testDataset()})
	rec := serve(t, h, h.GetSeasons, "/api/seasons")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Latest  string         `json:"latest"`
		Seasons []SeasonOption `json:"seasons"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2023-24", body.Latest)
	require.Len(t, body.Seasons, 2)
	assert.Equal(t, []string{"Boston Celtics", "Denver Nuggets"}, body.Seasons[0].Teams)
}

func TestGetDashboard(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		wantStatus    int
		wantTeams     int
		wantChampion  bool
		wantErrSubstr string
	}{
		{name: "defaults", target: "/api/dashboard", wantStatus: http.StatusOK, wantTeams: 2, wantChampion: true},
		{name: "lower floor", target: "/api/dashboard?min_pct=0", wantStatus: http.StatusOK, wantTeams: 3, wantChampion: true},
		{name: "champion filtered out", target: "/api/dashboard?min_pct=39", wantStatus: http.StatusOK, wantTeams: 0},
		{name: "team filter", target: "/api/dashboard?season=2023-24&team=Golden+State+Warriors", wantStatus: http.StatusOK, wantTeams: 1},
		{name: "older season", target: "/api/dashboard?season=2022-23", wantStatus: http.StatusOK, wantTeams: 2, wantChampion: true},
		{name: "unknown season", target: "/api/dashboard?season=1999-00", wantStatus: http.StatusBadRequest, wantErrSubstr: "unknown season"},
		{name: "pct above slider", target: "/api/dashboard?min_pct=75", wantStatus: http.StatusBadRequest, wantErrSubstr: "minimum"},
		{name: "pct not a number", target: "/api/dashboard?min_pct=abc", wantStatus: http.StatusBadRequest, wantErrSubstr: "minimum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandler(staticSource{ds: testDataset()})
			rec := serve(t, h, h.GetDashboard, tt.target)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			if tt.wantErrSubstr != "" {
				assert.Contains(t, body["error"], tt.wantErrSubstr)
				return
			}

			summary := body["summary"].(map[string]interface{})
			assert.Equal(t, float64(tt.wantTeams), summary["teams"])
			assert.Len(t, body["table"], tt.wantTeams)
			if tt.wantChampion {
				assert.NotNil(t, summary["champion_three_pct"])
			} else {
				assert.Nil(t, summary["champion_three_pct"])
			}
		})
	}
}

func TestGetDashboard_LoadFailure(t *testing.T) {
	h := newHandler(staticSource{err: errors.New("stats api down")})
	rec := serve(t, h, h.GetDashboard, "/api/dashboard")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load dataset")
}

func TestGetDashboard_UnencodableValue(t *testing.T) {
	ds := testDataset()
	zero := contracts.TeamSeasonRecord{
		Season: "2023-24", TeamName: "Charlotte Hornets",
		ThreesMade: 900, ThreesAttempted: 2600, ThreePct: 0.346, Points: 9000,
	}
	zero.Derive() // GP 0 gives +Inf threes per game
	ds.Records = append(ds.Records, contracts.Join(zero, nil))

	h := newHandler(staticSource{ds: ds})
	rec := serve(t, h, h.GetDashboard, "/api/dashboard?season=2023-24&min_pct=0")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to encode response", body["error"])
}

func TestGetTrend(t *testing.T) {
	h := newHandler(staticSource{ds: testDataset()})
	rec := serve(t, h, h.GetTrend, "/api/trend?season=2022-23&min_pct=60")

	require.Equal(t, http.StatusOK, rec.Code)

	var points []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 2, "trend ignores filters")
	assert.Equal(t, "2022-23", points[0]["season"])
	assert.NotNil(t, points[1]["champion_threes_att_per_game"])
}

func TestExport(t *testing.T) {
	h := newHandler(staticSource{ds: testDataset()})
	rec := serve(t, h, h.Export, "/api/export?season=2023-24&min_pct=0")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="nba_stats_2023-24.csv"`, rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "TEAM_NAME,SEASON,W,L,"))
	assert.True(t, strings.HasPrefix(lines[1], "Boston Celtics,"), "working-set order")
}

func TestExport_BadFilter(t *testing.T) {
	h := newHandler(staticSource{ds: testDataset()})
	rec := serve(t, h, h.Export, "/api/export?min_pct=-5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPage(t *testing.T) {
	h := newHandler(staticSource{ds: testDataset()})
	rec := serve(t, h, h.Page, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, doc.Find("h1").Text(), "Three-Point Revolution")
	assert.Equal(t, "2023-24", doc.Find("#season option[selected]").AttrOr("value", ""))
	assert.Equal(t, 3, doc.Find("#team option").Length())
	assert.Equal(t, 3, doc.Find("#team option[selected]").Length(), "all teams selected by default")

	slider := doc.Find("#min_pct")
	assert.Equal(t, "0", slider.AttrOr("min", ""))
	assert.Equal(t, "60", slider.AttrOr("max", ""))
	assert.Equal(t, "1", slider.AttrOr("step", ""))
	assert.Equal(t, "30", slider.AttrOr("value", ""))

	assert.Equal(t, 4, doc.Find(".metric").Length())
	assert.Equal(t, 2, doc.Find("tbody tr").Length())
	assert.Equal(t, 1, doc.Find("tbody tr.champion").Length())
	assert.Equal(t, "nba_stats_2023-24.csv", doc.Find("#export").AttrOr("download", ""))
}

func TestPage_ChampionUnavailable(t *testing.T) {
	h := newHandler(staticSource{ds: testDataset()})
	rec := serve(t, h, h.Page, "/?season=2023-24&min_pct=39")

	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	var values []string
	doc.Find(".metric .value").Each(func(_ int, s *goquery.Selection) {
		values = append(values, strings.TrimSpace(s.Text()))
	})
	assert.Equal(t, []string{"unavailable", "unavailable", "Data unavailable", "Data unavailable"}, values)
	assert.Contains(t, doc.Find("tbody").Text(), "No teams match")
}

func TestEmptyDataset(t *testing.T) {
	h := newHandler(staticSource{ds: &dataset.Dataset{}})

	t.Run("page", func(t *testing.T) {
		rec := serve(t, h, h.Page, "/")
		require.Equal(t, http.StatusOK, rec.Code)

		doc, err := goquery.NewDocumentFromReader(rec.Body)
		require.NoError(t, err)

		var values []string
		doc.Find(".metric .value").Each(func(_ int, s *goquery.Selection) {
			values = append(values, strings.TrimSpace(s.Text()))
		})
		assert.Equal(t, []string{"unavailable", "unavailable", "Data unavailable", "Data unavailable"}, values)
		assert.Equal(t, 0, doc.Find("#season option").Length())
	})

	t.Run("dashboard", func(t *testing.T) {
		rec := serve(t, h, h.GetDashboard, "/api/dashboard")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		summary := body["summary"].(map[string]interface{})
		assert.Nil(t, summary["league_three_pct"])
		assert.Nil(t, summary["champion_three_pct"])
		assert.Empty(t, body["table"])
	})

	t.Run("explicit season", func(t *testing.T) {
		rec := serve(t, h, h.GetDashboard, "/api/dashboard?season=2023-24")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
