package contracts

import (
	"fmt"
	"regexp"
	"strconv"
)

var seasonLabelRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ValidateSeason checks a season label against the stats API format "YYYY-YY",
// where the second year follows the first (e.g. "2023-24", "1999-00").
func ValidateSeason(season string) error {
	m := seasonLabelRe.FindStringSubmatch(season)
	if m == nil {
		return fmt.Errorf("season %q does not match YYYY-YY", season)
	}

	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if (start+1)%100 != end {
		return fmt.Errorf("season %q: %02d does not follow %d", season, end, start)
	}

	return nil
}
