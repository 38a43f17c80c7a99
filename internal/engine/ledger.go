package engine

import (
	"carbon-arbitrage/internal/model"
)

// LedgerRow is one projection year of a scenario: the interpolated series
// values, the discount factor applied, and running totals. This is the
// primary "what happened" artifact behind an aggregate figure.
type LedgerRow struct {
	Year int

	EmissionsMt  float64 // interpolated, million tonnes CO2
	ProductionEJ float64 // interpolated, EJ

	DiscountFactor            float64
	DiscountedProductionEJ    float64
	CumEmissionsGt            float64 // unanchored running total
	CumDiscountedProductionEJ float64
}

// Ledger evaluates both series of a scenario across the projection window at
// discount rate rho. The cumulative emissions column is the raw (unanchored)
// Gt total; anchoring is a single multiplier applied by AggregateEmissions.
func (e *Engine) Ledger(emissions, production model.Series, rho float64) ([]LedgerRow, error) {
	years := e.ProjectionYears()
	rows := make([]LedgerRow, 0, len(years))

	cumEmissionsGt := 0.0
	cumDiscountedEJ := 0.0
	for _, y := range years {
		em, err := Interpolate(emissions, float64(y))
		if err != nil {
			return nil, err
		}
		prod, err := Interpolate(production, float64(y))
		if err != nil {
			return nil, err
		}

		factor := DiscountFactor(rho, float64(y-e.BaseYear))
		discounted := prod * factor
		cumEmissionsGt += em / 1e3
		cumDiscountedEJ += discounted

		rows = append(rows, LedgerRow{
			Year:                      y,
			EmissionsMt:               em,
			ProductionEJ:              prod,
			DiscountFactor:            factor,
			DiscountedProductionEJ:    discounted,
			CumEmissionsGt:            cumEmissionsGt,
			CumDiscountedProductionEJ: cumDiscountedEJ,
		})
	}
	return rows, nil
}
