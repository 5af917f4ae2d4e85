package contracts

import "fmt"

// PercentUnit tags the scale a percentage column is stored in
type PercentUnit string

const (
	UnitFraction PercentUnit = "fraction" // [0,1], as returned by the stats API
	UnitPercent  PercentUnit = "percent"  // [0,100]
)

// ParsePercentUnit validates a persisted unit tag
func ParsePercentUnit(s string) (PercentUnit, error) {
	switch PercentUnit(s) {
	case UnitFraction, UnitPercent:
		return PercentUnit(s), nil
	default:
		return "", fmt.Errorf("unknown percent unit %q (valid: fraction, percent)", s)
	}
}

// ToPercent rescales v from this unit to the [0,100] display convention
func (u PercentUnit) ToPercent(v float64) float64 {
	if u == UnitFraction {
		return v * 100
	}
	return v
}
