// Package greenops turns a carbon footprint in kg CO2e into relatable
// real-world equivalencies such as miles driven or smartphones charged.
package greenops

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies an equivalency.
type Kind int

const (
	// MilesDriven is miles driven in an average passenger vehicle.
	MilesDriven Kind = iota
	// SmartphonesCharged is full smartphone charges.
	SmartphonesCharged
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case MilesDriven:
		return "MilesDriven"
	case SmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Equivalency is one calculated equivalency. Formatted carries no leading "~".
type Equivalency struct {
	Kind      Kind
	Value     float64
	Formatted string
}

// Output holds every equivalency for a footprint.
type Output struct {
	InputKg float64
	Results []Equivalency
}

// IsEmpty reports whether no equivalencies were calculated.
func (o Output) IsEmpty() bool {
	return len(o.Results) == 0
}

// Sentence renders the output for a reporting period, e.g. "week":
//
//	That is roughly equivalent to driving ~37 miles or charging ~852 smartphones per week.
//
// It returns "" when the output is empty.
func (o Output) Sentence(period string) string {
	if o.IsEmpty() {
		return ""
	}
	var miles, phones string
	for _, r := range o.Results {
		switch r.Kind {
		case MilesDriven:
			miles = r.Formatted
		case SmartphonesCharged:
			phones = r.Formatted
		}
	}
	return fmt.Sprintf("That is roughly equivalent to driving ~%s miles or charging ~%s smartphones per %s.",
		miles, phones, period)
}

// Calculate computes equivalencies for kg CO2e. Values below
// MinEquivalencyThresholdKg produce an empty Output and no error.
func Calculate(kg float64) (Output, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return Output{}, ErrCalculationOverflow
	}
	if kg < 0 {
		return Output{}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return Output{InputKg: kg}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	if math.IsInf(miles, 0) || math.IsInf(phones, 0) {
		return Output{}, ErrCalculationOverflow
	}

	return Output{
		InputKg: kg,
		Results: []Equivalency{
			{Kind: MilesDriven, Value: miles, Formatted: formatEquivalencyValue(miles)},
			{Kind: SmartphonesCharged, Value: phones, Formatted: formatEquivalencyValue(phones)},
		},
	}, nil
}

// formatEquivalencyValue formats v without an approximation prefix; Sentence
// adds the single "~".
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return strings.TrimPrefix(FormatLarge(v), "~")
	}
	return FormatNumber(int64(math.Round(v)))
}
