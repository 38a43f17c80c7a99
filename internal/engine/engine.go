package engine

import (
	"fmt"
	"math"
	"sort"

	"carbon-arbitrage/internal/model"
)

// Engine turns sparse scenario series into yearly estimates and aggregates
// them over a projection window. The defaults reproduce the carbon arbitrage
// model: project 2023..2100 inclusive, discount and anchor against 2022.
type Engine struct {
	// ProjectionStart..ProjectionEnd is the inclusive yearly window summed
	// by the aggregate methods.
	ProjectionStart int
	ProjectionEnd   int
	// BaseYear is both the discounting origin and the year emissions are
	// rescaled against.
	BaseYear int
}

func New() *Engine {
	return &Engine{
		ProjectionStart: 2023,
		ProjectionEnd:   2100,
		BaseYear:        2022,
	}
}

// ProjectionYears returns the inclusive yearly window.
func (e *Engine) ProjectionYears() []int {
	if e.ProjectionEnd < e.ProjectionStart {
		return nil
	}
	years := make([]int, 0, e.ProjectionEnd-e.ProjectionStart+1)
	for y := e.ProjectionStart; y <= e.ProjectionEnd; y++ {
		years = append(years, y)
	}
	return years
}

// Interpolate evaluates the series at any real year within its knot range
// using piecewise-linear interpolation between the two bracketing knots.
// Knot years reproduce the stored values exactly. Years outside the knot
// range return a DomainError rather than extrapolating.
func Interpolate(s model.Series, year float64) (float64, error) {
	n := len(s.Years)
	if n == 0 {
		return 0, fmt.Errorf("series %s/%s has no knots", s.Scenario, s.Variable)
	}
	if year < float64(s.Years[0]) || year > float64(s.Years[n-1]) {
		return 0, &model.DomainError{Year: year, MinYear: s.Years[0], MaxYear: s.Years[n-1]}
	}

	// First knot strictly above year; year <= max guarantees hi is either a
	// valid bracket end or n when year sits exactly on the last knot.
	hi := sort.Search(n, func(i int) bool { return float64(s.Years[i]) > year })
	lo := hi - 1
	if float64(s.Years[lo]) == year {
		return s.Values[lo], nil
	}

	x0, x1 := float64(s.Years[lo]), float64(s.Years[hi])
	y0, y1 := s.Values[lo], s.Values[hi]
	frac := (year - x0) / (x1 - x0)
	return y0 + (y1-y0)*frac, nil
}

// DiscountFactor is standard exponential discounting: (1+rho)^(-deltat).
// It is defined for all real deltat: zero yields 1, and negative deltat
// (a year before the base year) yields a factor above 1. The default window
// starts one year after the base year, so every term there has deltat >= 1,
// but the factor stays correct if the window is widened.
func DiscountFactor(rho, deltat float64) float64 {
	return math.Pow(1+rho, -deltat)
}

// AggregateEmissions sums yearly interpolated emissions over the projection
// window, converts million tonnes to gigatonnes, and rescales the total so
// the series' base-year value matches refValueGt (an external authoritative
// figure in Gt). The dataset is indicative rather than calibrated; anchoring
// to a trusted observation corrects the level while keeping the scenario's
// shape.
func (e *Engine) AggregateEmissions(s model.Series, refValueGt float64) (float64, error) {
	baseRaw, err := Interpolate(s, float64(e.BaseYear))
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, y := range e.ProjectionYears() {
		v, err := Interpolate(s, float64(y))
		if err != nil {
			return 0, err
		}
		sum += v
	}
	sumGt := sum / 1e3

	anchor := refValueGt / (baseRaw / 1e3)
	return sumGt * anchor, nil
}

// AggregateDiscountedProduction sums yearly interpolated production over the
// projection window, each year discounted back to the base year at rate rho.
// The result stays in the series' native unit (EJ).
func (e *Engine) AggregateDiscountedProduction(s model.Series, rho float64) (float64, error) {
	sum := 0.0
	for _, y := range e.ProjectionYears() {
		v, err := Interpolate(s, float64(y))
		if err != nil {
			return 0, err
		}
		sum += v * DiscountFactor(rho, float64(y-e.BaseYear))
	}
	return sum, nil
}
