package footprint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// boundTolerance is the relative slack applied to tier bounds so that a weekly
// value equal to a bound up to float64 rounding stays in the lower tier.
const boundTolerance = 1e-9

// ParseQuantity parses a daily activity quantity. Negative and zero values are
// accepted; NaN and infinities are not.
func ParseQuantity(s string) (float64, error) {
	text := strings.TrimSpace(s)
	q, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidQuantity, text)
	}
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidQuantity, text)
	}
	return q, nil
}

// Calculate returns the daily and weekly footprint for quantity units of
// activity at the given emission factor. Tier is left at its zero value; use
// Estimate for a classified result.
func Calculate(quantity, factor float64) Result {
	daily := quantity * factor
	return Result{
		Quantity: quantity,
		DailyKg:  daily,
		WeeklyKg: daily * DaysPerWeek,
	}
}

// Classify maps a weekly footprint onto a tier. Bounds are inclusive.
func Classify(weeklyKg float64, t Thresholds) Tier {
	switch {
	case atOrBelow(weeklyKg, t.Low):
		return TierLow
	case atOrBelow(weeklyKg, t.Moderate):
		return TierModerate
	case atOrBelow(weeklyKg, t.High):
		return TierHigh
	default:
		return TierVeryHigh
	}
}

func atOrBelow(v, bound float64) bool {
	return v <= bound+boundTolerance*math.Max(1, math.Abs(bound))
}

// Estimate computes and classifies the footprint of a category.
func (c *Catalog) Estimate(cat Category, quantity float64) (Result, error) {
	p, err := c.Profile(cat)
	if err != nil {
		return Result{}, err
	}
	factor, err := c.Factors().For(cat)
	if err != nil {
		return Result{}, err
	}
	r := Calculate(quantity, factor)
	r.Category = cat
	r.Tier = Classify(r.WeeklyKg, p.Thresholds)
	return r, nil
}
