package footprint

import (
	"fmt"
	"strings"
)

// DaysPerWeek is the multiplier from a daily to a weekly footprint.
const DaysPerWeek = 7.0

// Category is the activity a footprint is estimated for.
type Category int

const (
	// Electronics is device usage, measured in hours per day.
	Electronics Category = iota

	// Vehicles is fuel consumption, measured in liters per day.
	Vehicles

	// Household is electricity use, measured in kWh per day.
	Household
)

// Categories lists every category in menu order.
func Categories() []Category {
	return []Category{Electronics, Vehicles, Household}
}

// String returns a human-readable representation of the Category.
func (c Category) String() string {
	switch c {
	case Electronics:
		return "Electronics"
	case Vehicles:
		return "Vehicles"
	case Household:
		return "Household"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// Code returns the single-letter selector for the category.
func (c Category) Code() string {
	switch c {
	case Electronics:
		return "E"
	case Vehicles:
		return "V"
	case Household:
		return "H"
	default:
		return ""
	}
}

// key is the catalog key of the category.
func (c Category) key() string {
	return strings.ToLower(c.String())
}

// ParseCategory maps a selector to a Category. Matching is case-insensitive
// and ignores surrounding whitespace. The boolean is false for anything other
// than E, V or H.
func ParseCategory(s string) (Category, bool) {
	code := strings.ToUpper(strings.TrimSpace(s))
	for _, c := range Categories() {
		if c.Code() == code {
			return c, true
		}
	}
	return 0, false
}

// Tier is the qualitative severity bucket of a weekly footprint.
type Tier int

const (
	// TierLow is at or below the first threshold.
	TierLow Tier = iota
	// TierModerate is at or below the second threshold.
	TierModerate
	// TierHigh is at or below the third threshold.
	TierHigh
	// TierVeryHigh is above every threshold.
	TierVeryHigh
)

// String returns a human-readable representation of the Tier.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "Low"
	case TierModerate:
		return "Moderate"
	case TierHigh:
		return "High"
	case TierVeryHigh:
		return "VeryHigh"
	default:
		return fmt.Sprintf("Tier(%d)", t)
	}
}

// Label is the upper-case wording printed in the session report.
func (t Tier) Label() string {
	switch t {
	case TierLow:
		return "LOW"
	case TierModerate:
		return "MODERATE"
	case TierHigh:
		return "HIGH"
	case TierVeryHigh:
		return "VERY HIGH"
	default:
		return t.String()
	}
}

// EmissionFactors holds kg CO2 per unit of activity for each category.
type EmissionFactors struct {
	// Electronics is kg CO2 per hour of device usage.
	Electronics float64
	// Vehicles is kg CO2 per liter of fuel.
	Vehicles float64
	// Household is kg CO2 per kWh of electricity.
	Household float64
}

// For returns the factor of the given category.
func (f EmissionFactors) For(c Category) (float64, error) {
	switch c {
	case Electronics:
		return f.Electronics, nil
	case Vehicles:
		return f.Vehicles, nil
	case Household:
		return f.Household, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
}

// Thresholds are the inclusive upper bounds of the Low, Moderate and High tiers.
type Thresholds struct {
	Low      float64
	Moderate float64
	High     float64
}

// Result is the footprint derived from one declared quantity.
type Result struct {
	Category Category
	Quantity float64
	DailyKg  float64
	WeeklyKg float64
	Tier     Tier
}
