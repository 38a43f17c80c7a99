package model

import (
	"errors"
	"fmt"
)

// Knot grid for the NGFS scenario dataset: five-year spacing from 2010
// through 2100 inclusive, 19 points per series.
const (
	FirstKnotYear = 2010
	LastKnotYear  = 2100
	KnotSpacing   = 5
	KnotCount     = (LastKnotYear-FirstKnotYear)/KnotSpacing + 1
)

// Unit is the native unit of a stored series.
type Unit string

const (
	// UnitMegatonnesCO2 is million tonnes of CO2 per year.
	UnitMegatonnesCO2 Unit = "Mt CO2"
	// UnitExajoules is exajoules of primary energy per year.
	UnitExajoules Unit = "EJ"
)

// Series is one sparse time series of a scenario: values at the fixed
// five-year knot years, in the series' native unit.
type Series struct {
	Scenario string
	Variable string
	Unit     Unit

	Years  []int
	Values []float64
}

// KnotYears returns the full knot grid 2010..2100 step 5.
func KnotYears() []int {
	years := make([]int, 0, KnotCount)
	for y := FirstKnotYear; y <= LastKnotYear; y += KnotSpacing {
		years = append(years, y)
	}
	return years
}

func (s Series) Validate() error {
	if s.Scenario == "" {
		return errors.New("series scenario is required")
	}
	if s.Variable == "" {
		return errors.New("series variable is required")
	}
	if len(s.Years) != KnotCount || len(s.Values) != KnotCount {
		return fmt.Errorf("series %s/%s must have exactly %d knots, got %d years and %d values",
			s.Scenario, s.Variable, KnotCount, len(s.Years), len(s.Values))
	}
	for i, y := range s.Years {
		want := FirstKnotYear + i*KnotSpacing
		if y != want {
			return fmt.Errorf("series %s/%s knot %d: year %d, expected %d",
				s.Scenario, s.Variable, i, y, want)
		}
		if s.Values[i] < 0 {
			return fmt.Errorf("series %s/%s year %d: value %v is negative",
				s.Scenario, s.Variable, y, s.Values[i])
		}
	}
	return nil
}

// MinYear is the first knot year of the series.
func (s Series) MinYear() int { return s.Years[0] }

// MaxYear is the last knot year of the series.
func (s Series) MaxYear() int { return s.Years[len(s.Years)-1] }
