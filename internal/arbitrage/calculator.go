package arbitrage

import (
	"fmt"

	"carbon-arbitrage/internal/data"
	"carbon-arbitrage/internal/engine"
	"carbon-arbitrage/internal/model"
)

// Params are the three user-tunable inputs.
type Params struct {
	SCC  float64 // social cost of carbon, $/tCO2
	LCOE float64 // levelized cost of energy, $/MWh
	Beta float64 // dimensionless risk sensitivity
}

// ScenarioAggregate is the per-scenario output of the aggregation engine.
type ScenarioAggregate struct {
	Scenario string

	// EmissionsGt is the anchored total over the projection window, Gt CO2.
	EmissionsGt float64
	// BaseYearProductionMcoal is base-year coal production in million
	// tonnes of coal equivalent.
	BaseYearProductionMcoal float64
	// DiscountedProductionEJ is cumulative discounted production, EJ.
	DiscountedProductionEJ float64
}

// Result combines two scenarios into the cost/benefit figures. The headline
// arbitrage value (benefit minus cost) is a trivial combination left to the
// caller, matching what the presentation layer displays.
type Result struct {
	Reference   ScenarioAggregate
	Alternative ScenarioAggregate

	DiscountRate float64

	// AvoidedEmissionsGt is reference minus alternative emissions, Gt CO2.
	AvoidedEmissionsGt float64
	// CostTrillion is LCOE times the discounted production difference, in
	// trillion dollars. Negative if the alternative scenario produces more
	// discounted energy than the reference; reported as-is.
	CostTrillion float64
	// BenefitTrillion is SCC times avoided emissions, in trillion dollars.
	BenefitTrillion float64
	// BaseYearProductionMt is the reference scenario's base-year coal
	// production, million tonnes of coal equivalent.
	BaseYearProductionMt float64
}

// Calculator runs the full pipeline against a scenario store. It is
// stateless between calls: every Compute re-reads the store and returns a
// fresh Result.
type Calculator struct {
	store  *data.Store
	engine *engine.Engine
}

func New(store *data.Store, eng *engine.Engine) *Calculator {
	return &Calculator{store: store, engine: eng}
}

// Engine exposes the calculator's aggregation engine (the presentation layer
// uses it to build yearly ledgers for a run).
func (c *Calculator) Engine() *engine.Engine { return c.engine }

// scenarioSeries returns the (emissions, production) pair for a scenario.
func (c *Calculator) scenarioSeries(scenario string) (model.Series, model.Series, error) {
	emissions, err := c.store.Series(scenario, data.VarEmissionsCO2)
	if err != nil {
		return model.Series{}, model.Series{}, err
	}
	production, err := c.store.Series(scenario, data.VarPrimaryEnergyCoal)
	if err != nil {
		return model.Series{}, model.Series{}, err
	}
	return emissions, production, nil
}

// Aggregate runs the engine for one scenario at discount rate rho.
func (c *Calculator) Aggregate(scenario string, rho float64) (ScenarioAggregate, error) {
	emissions, production, err := c.scenarioSeries(scenario)
	if err != nil {
		return ScenarioAggregate{}, err
	}

	totalEmissions, err := c.engine.AggregateEmissions(emissions, ReferenceEmissionsGt)
	if err != nil {
		return ScenarioAggregate{}, fmt.Errorf("aggregate emissions for %s: %w", scenario, err)
	}

	baseProduction, err := engine.Interpolate(production, float64(c.engine.BaseYear))
	if err != nil {
		return ScenarioAggregate{}, fmt.Errorf("base-year production for %s: %w", scenario, err)
	}

	discounted, err := c.engine.AggregateDiscountedProduction(production, rho)
	if err != nil {
		return ScenarioAggregate{}, fmt.Errorf("discounted production for %s: %w", scenario, err)
	}

	return ScenarioAggregate{
		Scenario:                scenario,
		EmissionsGt:             totalEmissions,
		BaseYearProductionMcoal: EJ2Mcoal(baseProduction),
		DiscountedProductionEJ:  discounted,
	}, nil
}

// Compute combines the reference (higher-emissions) and alternative scenarios
// into the cost/benefit figures. Ordering matters: avoided emissions and the
// production difference are reference minus alternative.
func (c *Calculator) Compute(reference, alternative string, p Params) (*Result, error) {
	rho := DiscountRate(p.Beta)

	ref, err := c.Aggregate(reference, rho)
	if err != nil {
		return nil, err
	}
	alt, err := c.Aggregate(alternative, rho)
	if err != nil {
		return nil, err
	}

	avoided := ref.EmissionsGt - alt.EmissionsGt

	increaseEJ := ref.DiscountedProductionEJ - alt.DiscountedProductionEJ
	cost := p.LCOE * EJ2MWh(increaseEJ) / 1e12

	// SCC is $/t and avoided is Gt, so /1e3 lands in trillion dollars.
	benefit := avoided * p.SCC / 1e3

	return &Result{
		Reference:            ref,
		Alternative:          alt,
		DiscountRate:         rho,
		AvoidedEmissionsGt:   avoided,
		CostTrillion:         cost,
		BenefitTrillion:      benefit,
		BaseYearProductionMt: ref.BaseYearProductionMcoal,
	}, nil
}

// Ledgers builds the per-year ledgers for both scenarios of a run.
func (c *Calculator) Ledgers(reference, alternative string, beta float64) (refRows, altRows []engine.LedgerRow, err error) {
	rho := DiscountRate(beta)

	refEm, refProd, err := c.scenarioSeries(reference)
	if err != nil {
		return nil, nil, err
	}
	altEm, altProd, err := c.scenarioSeries(alternative)
	if err != nil {
		return nil, nil, err
	}

	refRows, err = c.engine.Ledger(refEm, refProd, rho)
	if err != nil {
		return nil, nil, err
	}
	altRows, err = c.engine.Ledger(altEm, altProd, rho)
	if err != nil {
		return nil, nil, err
	}
	return refRows, altRows, nil
}
