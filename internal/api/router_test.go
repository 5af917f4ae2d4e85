package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/threes/internal/api/handlers"
	"github.com/wonny/threes/internal/contracts"
	"github.com/wonny/threes/internal/dataset"
	"github.com/wonny/threes/pkg/logger"
)

type fixedSource struct{}

func (fixedSource) Get(context.Context) (*dataset.Dataset, error) {
	r := contracts.TeamSeasonRecord{
		Season: "2023-24", TeamName: "Boston Celtics",
		GamesPlayed: 82, ThreesMade: 1351, ThreesAttempted: 3482, ThreePct: 0.388, Points: 9887,
	}
	r.Derive()
	return &dataset.Dataset{
		Records:                []contracts.JoinedRecord{contracts.Join(r, map[string]string{"2023-24": "Boston Celtics"})},
		ThreePctUnit:           contracts.UnitFraction,
		PercentPointsThreeUnit: contracts.UnitFraction,
	}, nil
}

func newTestRouter() http.Handler {
	return NewRouter(handlers.NewDashboardHandler(fixedSource{}, logger.Nop()), logger.Nop())
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/seasons", http.StatusOK},
		{http.MethodGet, "/api/dashboard", http.StatusOK},
		{http.MethodGet, "/api/trend", http.StatusOK},
		{http.MethodGet, "/api/export", http.StatusOK},
		{http.MethodPost, "/api/export", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := recoveryMiddleware(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestLoggingMiddleware_PassesStatus(t *testing.T) {
	h := loggingMiddleware(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
