package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/wonny/threes/internal/contracts"
)

const (
	teamStatsPath      = "/stats/leaguedashteamstats"
	teamStatsResultSet = "LeagueDashTeamStats"
	seasonTypeRegular  = "Regular Season"
)

// statsResponse is the envelope every stats.nba.com endpoint returns
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// FetchTeamStats returns every team's regular-season totals for season, tagged with it.
// A failed call is returned as is: no retry, no pagination.
// ⭐ SSOT: the Season Fetcher
func (c *Client) FetchTeamStats(ctx context.Context, season string) ([]contracts.TeamSeasonRecord, error) {
	if err := contracts.ValidateSeason(season); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeason, err)
	}

	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, teamStatsPath, teamStatsParams(season).Encode())

	resp, err := c.httpClient.Get(ctx, fullURL)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: rate limited (429)", ErrUnexpectedResponse)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status code %d: %s", ErrUnexpectedResponse, resp.StatusCode, string(body))
	}

	var payload statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	records, err := parseTeamStats(payload, season)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(map[string]interface{}{
		"season": season,
		"count":  len(records),
	}).Debug("Fetched team stats")

	return records, nil
}

// teamStatsParams mirrors the query the public site sends; the endpoint
// rejects requests that omit any of these keys, even blank ones.
func teamStatsParams(season string) url.Values {
	p := url.Values{}
	p.Set("Season", season)
	p.Set("SeasonType", seasonTypeRegular)
	p.Set("MeasureType", "Base")
	p.Set("PerMode", "Totals")
	p.Set("LeagueID", "00")
	p.Set("PlusMinus", "N")
	p.Set("PaceAdjust", "N")
	p.Set("Rank", "N")
	for _, k := range []string{"Month", "OpponentTeamID", "PORound", "Period", "LastNGames", "TeamID", "TwoWay"} {
		p.Set(k, "0")
	}
	for _, k := range []string{
		"Conference", "DateFrom", "DateTo", "Division", "GameScope", "GameSegment",
		"Location", "Outcome", "PlayerExperience", "PlayerPosition", "SeasonSegment",
		"ShotClockRange", "StarterBench", "VsConference", "VsDivision", "ISTRound",
	} {
		p.Set(k, "")
	}
	return p
}

// parseTeamStats maps the LeagueDashTeamStats table to records by header name
func parseTeamStats(payload statsResponse, season string) ([]contracts.TeamSeasonRecord, error) {
	var table *resultSet
	for i := range payload.ResultSets {
		if payload.ResultSets[i].Name == teamStatsResultSet {
			table = &payload.ResultSets[i]
			break
		}
	}
	if table == nil {
		return nil, fmt.Errorf("%w: result set %s not found", ErrUnexpectedResponse, teamStatsResultSet)
	}

	idx := make(map[string]int, len(table.Headers))
	for i, h := range table.Headers {
		idx[h] = i
	}

	required := []string{
		contracts.ColTeamID, contracts.ColTeamName, contracts.ColGamesPlayed,
		contracts.ColWins, contracts.ColLosses, contracts.ColThreesMade,
		contracts.ColThreesAttempted, contracts.ColThreePct, contracts.ColPoints,
	}
	for _, h := range required {
		if _, ok := idx[h]; !ok {
			return nil, fmt.Errorf("%w: missing column %s", ErrUnexpectedResponse, h)
		}
	}

	records := make([]contracts.TeamSeasonRecord, 0, len(table.RowSet))
	for n, row := range table.RowSet {
		if len(row) < len(table.Headers) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrUnexpectedResponse, n, len(row), len(table.Headers))
		}

		c := cellReader{row: row, idx: idx}
		r := contracts.TeamSeasonRecord{
			Season:          season,
			TeamID:          c.int64(contracts.ColTeamID),
			TeamName:        c.string(contracts.ColTeamName),
			GamesPlayed:     int(c.int64(contracts.ColGamesPlayed)),
			Wins:            int(c.int64(contracts.ColWins)),
			Losses:          int(c.int64(contracts.ColLosses)),
			ThreesMade:      int(c.int64(contracts.ColThreesMade)),
			ThreesAttempted: int(c.int64(contracts.ColThreesAttempted)),
			ThreePct:        c.float64(contracts.ColThreePct),
			Points:          int(c.int64(contracts.ColPoints)),
		}
		if c.bad != "" {
			return nil, fmt.Errorf("%w: row %d column %s: got %v", ErrUnexpectedResponse, n, c.bad, row[idx[c.bad]])
		}
		records = append(records, r)
	}

	return records, nil
}

// cellReader reads typed cells by header name and remembers the first mistyped column
type cellReader struct {
	row []interface{}
	idx map[string]int
	bad string
}

func (c *cellReader) fail(col string) {
	if c.bad == "" {
		c.bad = col
	}
}

func (c *cellReader) int64(col string) int64 {
	v, ok := toInt64(c.row[c.idx[col]])
	if !ok {
		c.fail(col)
	}
	return v
}

func (c *cellReader) float64(col string) float64 {
	v, ok := toFloat64(c.row[c.idx[col]])
	if !ok {
		c.fail(col)
	}
	return v
}

func (c *cellReader) string(col string) string {
	v, ok := c.row[c.idx[col]].(string)
	if !ok || v == "" {
		c.fail(col)
	}
	return v
}

// toInt64 converts JSON numbers (decoded as float64) to int64.
// Anything else, null included, is rejected.
func toInt64(v interface{}) (int64, bool) {
	switch val := v.(type) {
	case float64:
		return int64(val), val == float64(int64(val))
	case int64:
		return val, true
	case int:
		return int64(val), true
	default:
		return 0, false
	}
}

func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}
