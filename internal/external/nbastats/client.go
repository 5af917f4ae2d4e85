package nbastats

import (
	"errors"

	"github.com/wonny/threes/pkg/httputil"
	"github.com/wonny/threes/pkg/logger"
)

// DefaultBaseURL is the public stats endpoint host
const DefaultBaseURL = "https://stats.nba.com"

var (
	// ErrInvalidSeason is returned before any I/O when a season label is malformed
	ErrInvalidSeason = errors.New("invalid season label")
	// ErrUnexpectedResponse covers non-200 statuses and payloads missing the team table
	ErrUnexpectedResponse = errors.New("unexpected stats response")
)

// Client handles communication with stats.nba.com
// ⭐ SSOT: stats API calls are made only by this client
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a stats client. The endpoint rejects requests without
// browser-like headers, so they are installed on httpClient here.
func NewClient(httpClient *httputil.Client, baseURL string, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient.
		WithHeader("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36").
		WithHeader("Accept", "application/json, text/plain, */*").
		WithHeader("Accept-Language", "en-US,en;q=0.9").
		WithHeader("Referer", "https://www.nba.com/").
		WithHeader("Origin", "https://www.nba.com").
		WithHeader("x-nba-stats-origin", "stats").
		WithHeader("x-nba-stats-token", "true")

	return &Client{
		httpClient: httpClient,
		logger:     log.Module("nbastats"),
		baseURL:    baseURL,
	}
}
