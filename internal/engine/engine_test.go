package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-arbitrage/internal/data"
	"carbon-arbitrage/internal/model"
)

// decreasingSeries is a strictly decreasing synthetic series on the full
// knot grid.
func decreasingSeries() model.Series {
	values := make([]float64, model.KnotCount)
	for i := range values {
		values[i] = float64(1000 - 37*i)
	}
	return model.Series{
		Scenario: "Synthetic",
		Variable: "Emissions|CO2",
		Unit:     model.UnitMegatonnesCO2,
		Years:    model.KnotYears(),
		Values:   values,
	}
}

func constantSeries(v float64) model.Series {
	values := make([]float64, model.KnotCount)
	for i := range values {
		values[i] = v
	}
	return model.Series{
		Scenario: "Synthetic",
		Variable: "Primary Energy|Coal",
		Unit:     model.UnitExajoules,
		Years:    model.KnotYears(),
		Values:   values,
	}
}

func TestProjectionYears(t *testing.T) {
	e := New()
	years := e.ProjectionYears()
	require.Len(t, years, 78)
	assert.Equal(t, 2023, years[0])
	assert.Equal(t, 2100, years[len(years)-1])

	empty := &Engine{ProjectionStart: 2030, ProjectionEnd: 2029, BaseYear: 2022}
	assert.Empty(t, empty.ProjectionYears())
}

// Every knot year of every stored series must reproduce the stored value
// exactly: no smoothing.
func TestInterpolateExactAtKnots(t *testing.T) {
	store := data.Default()
	for _, scenario := range store.Scenarios() {
		for _, variable := range store.Variables() {
			series, err := store.Series(scenario, variable)
			require.NoError(t, err)
			for i, y := range series.Years {
				got, err := Interpolate(series, float64(y))
				require.NoError(t, err)
				assert.Equal(t, series.Values[i], got, "%s/%s at %d", scenario, variable, y)
			}
		}
	}
}

func TestInterpolateBetweenKnots(t *testing.T) {
	store := data.Default()
	emissions, err := store.Series(data.ScenarioCurrentPolicies, data.VarEmissionsCO2)
	require.NoError(t, err)

	tests := []struct {
		year float64
		want float64
	}{
		{2012.5, 29500},  // midway between 27000 and 32000
		{2022, 33600},    // 34000 + (33000-34000)*2/5
		{2011, 28000},    // one fifth of the 2010..2015 step
		{2099, 18200},    // 19000 + (18000-19000)*4/5
	}
	for _, tc := range tests {
		got, err := Interpolate(emissions, tc.year)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-9, "year %g", tc.year)
	}
}

func TestInterpolateOutsideDomain(t *testing.T) {
	series := decreasingSeries()
	for _, year := range []float64{2009.999, 2100.001, 1990, 2200} {
		_, err := Interpolate(series, year)
		require.Error(t, err, "year %g", year)
		var domainErr *model.DomainError
		assert.True(t, errors.As(err, &domainErr), "year %g", year)
	}
}

func TestInterpolateEmptySeries(t *testing.T) {
	_, err := Interpolate(model.Series{Scenario: "x", Variable: "y"}, 2020)
	assert.Error(t, err)
}

// A monotonically decreasing stored series stays non-increasing between
// knots under piecewise-linear interpolation.
func TestInterpolateMonotoneBetweenKnots(t *testing.T) {
	series := decreasingSeries()
	prev := math.Inf(1)
	for year := 2010.0; year <= 2100.0; year += 0.25 {
		got, err := Interpolate(series, year)
		require.NoError(t, err)
		assert.LessOrEqual(t, got, prev, "year %g", year)
		prev = got
	}
}

func TestDiscountFactor(t *testing.T) {
	for _, rho := range []float64{0, 0.001, 0.0208, 0.1, 0.5} {
		assert.Equal(t, 1.0, DiscountFactor(rho, 0), "rho %g", rho)
	}

	// Strictly decreasing in deltat for rho > 0.
	prev := math.Inf(1)
	for deltat := 0.0; deltat <= 80; deltat++ {
		f := DiscountFactor(0.03, deltat)
		assert.Less(t, f, prev)
		prev = f
	}

	// Years before the base year discount upward: factor above 1.
	assert.Greater(t, DiscountFactor(0.03, -1), 1.0)
	assert.Greater(t, DiscountFactor(0.03, -5), DiscountFactor(0.03, -1))

	assert.InDelta(t, 1.0/1.03, DiscountFactor(0.03, 1), 1e-12)
}

// Anchoring with the reference value set to the raw interpolated base-year
// value must leave the sum unscaled (scaling factor 1).
func TestAggregateEmissionsAnchorIdentity(t *testing.T) {
	e := New()
	series := decreasingSeries()

	baseRaw, err := Interpolate(series, float64(e.BaseYear))
	require.NoError(t, err)

	rawSum := 0.0
	for _, y := range e.ProjectionYears() {
		v, err := Interpolate(series, float64(y))
		require.NoError(t, err)
		rawSum += v
	}

	got, err := e.AggregateEmissions(series, baseRaw/1e3)
	require.NoError(t, err)
	assert.InEpsilon(t, rawSum/1e3, got, 1e-12)
}

func TestAggregateEmissionsScalesWithAnchor(t *testing.T) {
	e := New()
	series := decreasingSeries()

	one, err := e.AggregateEmissions(series, 1.0)
	require.NoError(t, err)
	two, err := e.AggregateEmissions(series, 2.0)
	require.NoError(t, err)
	assert.InEpsilon(t, 2*one, two, 1e-12)
}

func TestAggregateDiscountedProductionConstantSeries(t *testing.T) {
	e := New()
	const c = 42.0
	const rho = 0.0297

	want := 0.0
	for _, y := range e.ProjectionYears() {
		want += c * DiscountFactor(rho, float64(y-e.BaseYear))
	}

	got, err := e.AggregateDiscountedProduction(constantSeries(c), rho)
	require.NoError(t, err)
	assert.InEpsilon(t, want, got, 1e-12)
}

func TestAggregateDiscountedProductionZeroRate(t *testing.T) {
	e := New()
	series := constantSeries(10)

	got, err := e.AggregateDiscountedProduction(series, 0)
	require.NoError(t, err)
	// rho = 0 means no discounting: plain sum over 78 years.
	assert.InEpsilon(t, 780.0, got, 1e-12)
}

// A widened window reaching before the base year must still aggregate; the
// pre-base years carry factors above 1.
func TestAggregateWithWidenedWindow(t *testing.T) {
	e := &Engine{ProjectionStart: 2020, ProjectionEnd: 2025, BaseYear: 2022}
	series := constantSeries(1)

	got, err := e.AggregateDiscountedProduction(series, 0.05)
	require.NoError(t, err)

	want := 0.0
	for y := 2020; y <= 2025; y++ {
		want += DiscountFactor(0.05, float64(y-2022))
	}
	assert.InEpsilon(t, want, got, 1e-12)
	assert.Greater(t, got, 6*DiscountFactor(0.05, 3))
}

func TestAggregateWindowOutsideKnotsFails(t *testing.T) {
	e := &Engine{ProjectionStart: 2005, ProjectionEnd: 2010, BaseYear: 2010}
	series := constantSeries(1)

	_, err := e.AggregateDiscountedProduction(series, 0.05)
	require.Error(t, err)
	var domainErr *model.DomainError
	assert.True(t, errors.As(err, &domainErr))
}
