package reference

import (
	"fmt"

	"github.com/wonny/threes/internal/contracts"
)

// ValidationError points at the offending field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the reference data invariants:
// seasons valid, unique and ascending; exactly one named champion per season.
func Validate(d *Data) error {
	if d.Version == "" {
		return ValidationError{"version", "required"}
	}
	if len(d.Seasons) == 0 {
		return ValidationError{"seasons", "at least one season required"}
	}

	known := make(map[string]bool, len(d.Seasons))
	for i, s := range d.Seasons {
		field := fmt.Sprintf("seasons[%d]", i)
		if err := contracts.ValidateSeason(s); err != nil {
			return ValidationError{field, err.Error()}
		}
		if known[s] {
			return ValidationError{field, fmt.Sprintf("duplicate season %s", s)}
		}
		if i > 0 && s <= d.Seasons[i-1] {
			return ValidationError{field, "seasons must be listed oldest first"}
		}
		known[s] = true
	}

	seen := make(map[string]bool, len(d.Champions))
	for i, c := range d.Champions {
		field := fmt.Sprintf("champions[%d]", i)
		if !known[c.Season] {
			return ValidationError{field, fmt.Sprintf("season %q is not in the season list", c.Season)}
		}
		if seen[c.Season] {
			return ValidationError{field, fmt.Sprintf("second champion for %s", c.Season)}
		}
		if c.ChampionTeam == "" {
			return ValidationError{field, "team required"}
		}
		seen[c.Season] = true
	}

	for _, s := range d.Seasons {
		if !seen[s] {
			return ValidationError{"champions", fmt.Sprintf("missing champion for %s", s)}
		}
	}

	return nil
}
