package models

// ArbitrageRequest is the request body for running a computation. The three
// parameters are optional; omitted ones fall back to the server defaults, so
// pointers distinguish "absent" from an explicit zero.
type ArbitrageRequest struct {
	SCC  *float64 `json:"scc"`  // $/tCO2, suggested range 0..200
	LCOE *float64 `json:"lcoe"` // $/MWh, suggested range 0..200
	Beta *float64 `json:"beta"` // dimensionless, suggested range 0..2

	// ReferenceScenario / AlternativeScenario override the configured
	// scenario pair. Reference is the higher-emissions case.
	ReferenceScenario   string `json:"reference_scenario,omitempty"`
	AlternativeScenario string `json:"alternative_scenario,omitempty"`

	// IncludeLedger inlines the per-year ledgers in the response; they are
	// always retrievable later via GET /arbitrage/:id/ledger.
	IncludeLedger bool `json:"include_ledger,omitempty"`
}
