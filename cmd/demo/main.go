package main

import (
	"flag"
	"fmt"

	"carbon-arbitrage/internal/arbitrage"
	"carbon-arbitrage/internal/data"
	"carbon-arbitrage/internal/engine"
)

// Demo:
// - Build the scenario store from the embedded NGFS table
// - Run the full cost/benefit pipeline with the baseline parameters
// - Show how the figures respond to a sweep of the social cost of carbon
func main() {
	scc := flag.Float64("scc", 80.0, "Social cost of carbon ($/tCO2)")
	lcoe := flag.Float64("lcoe", 59.25, "Global LCOE average ($/MWh)")
	beta := flag.Float64("beta", 0.9132710997126332, "Unlevered beta")
	flag.Parse()

	store := data.Default()
	calc := arbitrage.New(store, engine.New())

	params := arbitrage.Params{SCC: *scc, LCOE: *lcoe, Beta: *beta}
	result, err := calc.Compute(data.ScenarioCurrentPolicies, data.ScenarioNetZero2050, params)
	if err != nil {
		panic(err)
	}

	fmt.Println("Carbon Arbitrage Opportunity")
	fmt.Println("============================")
	fmt.Printf("SCC=%.2f $/tCO2  LCOE=%.2f $/MWh  beta=%.4f  rho=%.5f\n\n",
		params.SCC, params.LCOE, params.Beta, result.DiscountRate)
	fmt.Printf("Global coal production in 2022: %.2f million tonnes\n", result.BaseYearProductionMt)
	fmt.Printf("Discounted cost: %.2f trillion USD\n", result.CostTrillion)
	fmt.Printf("Total emissions prevented: %.2f GtCO2\n", result.AvoidedEmissionsGt)
	fmt.Printf("Benefit (SCC * avoided emissions): %.2f trillion USD\n", result.BenefitTrillion)
	fmt.Printf("Carbon arbitrage opportunity: %.2f trillion USD\n\n", result.BenefitTrillion-result.CostTrillion)

	fmt.Println("SCC sweep (other parameters fixed):")
	fmt.Printf("%-10s %-12s %-12s %-12s\n", "scc", "cost", "benefit", "arbitrage")
	for _, s := range []float64{0, 40, 80, 120, 160, 200} {
		r, err := calc.Compute(data.ScenarioCurrentPolicies, data.ScenarioNetZero2050,
			arbitrage.Params{SCC: s, LCOE: params.LCOE, Beta: params.Beta})
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-10.1f %-12.2f %-12.2f %-12.2f\n",
			s, r.CostTrillion, r.BenefitTrillion, r.BenefitTrillion-r.CostTrillion)
	}
}
