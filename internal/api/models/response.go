package models

// ArbitrageResponse is the response from a computation run.
type ArbitrageResponse struct {
	ID      string           `json:"id"`
	Status  string           `json:"status"`
	Summary ArbitrageSummary `json:"summary"`
	Ledger  *LedgerPair      `json:"ledger,omitempty"`
}

// ArbitrageSummary holds the headline figures the presentation layer shows.
type ArbitrageSummary struct {
	CoalProduction2022Mt float64 `json:"coal_production_2022_mt"`
	CostTrillionUSD      float64 `json:"cost_trillion_usd"`
	AvoidedEmissionsGt   float64 `json:"avoided_emissions_gt"`
	BenefitTrillionUSD   float64 `json:"benefit_trillion_usd"`
	ArbitrageTrillionUSD float64 `json:"carbon_arbitrage_trillion_usd"`

	DiscountRate float64 `json:"discount_rate"`

	Parameters ParametersUsed `json:"parameters"`
	Scenarios  ScenarioPair   `json:"scenarios"`
}

// ParametersUsed echoes the effective inputs after defaulting.
type ParametersUsed struct {
	SCC  float64 `json:"scc"`
	LCOE float64 `json:"lcoe"`
	Beta float64 `json:"beta"`
}

// ScenarioPair names the compared scenarios.
type ScenarioPair struct {
	Reference   string `json:"reference"`
	Alternative string `json:"alternative"`
}

// LedgerPair carries the per-year ledgers of both scenarios.
type LedgerPair struct {
	Reference   []LedgerRow `json:"reference"`
	Alternative []LedgerRow `json:"alternative"`
}

// LedgerRow is one projection year of a scenario ledger.
type LedgerRow struct {
	Year                      int     `json:"year"`
	EmissionsMt               float64 `json:"emissions_mt"`
	ProductionEJ              float64 `json:"production_ej"`
	DiscountFactor            float64 `json:"discount_factor"`
	DiscountedProductionEJ    float64 `json:"discounted_production_ej"`
	CumEmissionsGt            float64 `json:"cum_emissions_gt"`
	CumDiscountedProductionEJ float64 `json:"cum_discounted_production_ej"`
}

// ScenarioInfo describes one scenario of the data store.
type ScenarioInfo struct {
	Name      string   `json:"name"`
	Variables []string `json:"variables"`
}

// ParameterInfo describes one tunable parameter for UI clients.
type ParameterInfo struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Unit        string  `json:"unit,omitempty"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Step        float64 `json:"step"`
	Default     float64 `json:"default"`
	Description string  `json:"description"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
