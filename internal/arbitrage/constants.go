package arbitrage

// Policy and physical constants of the carbon arbitrage model. These are
// inputs to the model, not derived quantities; keep them verbatim.
const (
	// RiskFreeRate is rho_f, the risk-free rate used in the discount-rate
	// blend.
	RiskFreeRate = 0.0208

	// CarbonRiskPremium is the carbon asset risk premium (carp) before the
	// surcharge is applied.
	CarbonRiskPremium = 0.0299

	// RiskPremiumSurcharge is always subtracted from CarbonRiskPremium
	// before it enters the discount-rate formula.
	RiskPremiumSurcharge = 0.01

	// Lambda is the leverage weight between the tax-adjusted risk-free leg
	// and the beta-scaled risky leg.
	Lambda = 0.5175273490449868

	// TaxRate applies to the risk-free leg only.
	TaxRate = 0.15

	// CoalHeatContentGJPerTonne is the energy content of a tonne of coal
	// equivalent, GJ per tonne.
	CoalHeatContentGJPerTonne = 29.3076

	// ReferenceEmissionsGt is the IEA's 2022 global coal CO2 emissions
	// estimate in Gt, used to anchor scenario emissions totals.
	ReferenceEmissionsGt = 15.5
)

// DiscountRate derives the discount rate rho from the unlevered beta:
//
//	rho = lambda*rho_f*(1-tax) + (1-lambda)*(rho_f + beta*(carp - surcharge))
//
// Pure and total over all real beta; the UI is expected to keep beta in a
// sane range (0..2) but nothing here depends on that.
func DiscountRate(beta float64) float64 {
	carp := CarbonRiskPremium - RiskPremiumSurcharge
	return Lambda*RiskFreeRate*(1-TaxRate) + (1-Lambda)*(RiskFreeRate+beta*carp)
}
