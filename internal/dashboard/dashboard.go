// Package dashboard slices the joined dataset for the dashboard widgets.
// Every function is read-only over the dataset.
package dashboard

import (
	"github.com/wonny/threes/internal/dataset"
)

// View is everything the dashboard renders for one set of filters
type View struct {
	Filters Filters      `json:"filters"`
	Summary Summary      `json:"summary"`
	Ranking []RankEntry  `json:"ranking"`
	Table   []Row        `json:"table"`
	Trend   []TrendPoint `json:"trend"`
	Export  string       `json:"export_filename"`
}

// Compute validates f and builds the full view. An empty working set is not an error.
func Compute(ds *dataset.Dataset, f Filters) (*View, error) {
	if err := f.Validate(ds); err != nil {
		return nil, err
	}

	rows := WorkingSet(ds, f)
	return &View{
		Filters: f,
		Summary: Summarize(f.Season, rows),
		Ranking: Ranking(rows),
		Table:   Table(rows),
		Trend:   Trend(ds),
		Export:  ExportFilename(f.Season),
	}, nil
}
