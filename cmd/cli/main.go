package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"carbon-arbitrage/internal/arbitrage"
	"carbon-arbitrage/internal/config"
	"carbon-arbitrage/internal/data"
	"carbon-arbitrage/internal/engine"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "compute":
		cmdCompute(os.Args[2:])
	case "scenarios":
		cmdScenarios(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli compute --scc 80 --lcoe 59.25 --beta 0.91 [--out results/ledger.csv]")
	fmt.Println("  cli scenarios [--data scenarios.csv]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - compute prints the carbon arbitrage figures for the scenario pair")
	fmt.Println("  - scenarios lists the dataset's scenarios and knot values")
}

func cmdCompute(args []string) {
	defaults := config.Default()

	fs := flag.NewFlagSet("compute", flag.ExitOnError)
	scc := fs.Float64("scc", defaults.Defaults.SCC, "Social cost of carbon ($/tCO2)")
	lcoe := fs.Float64("lcoe", defaults.Defaults.LCOE, "Global LCOE average ($/MWh)")
	beta := fs.Float64("beta", defaults.Defaults.Beta, "Unlevered beta")
	reference := fs.String("reference", defaults.Scenarios.Reference, "Reference (high-emissions) scenario")
	alternative := fs.String("alternative", defaults.Scenarios.Alternative, "Alternative (low-emissions) scenario")
	dataPath := fs.String("data", "", "Optional scenario CSV (defaults to the embedded NGFS table)")
	outPath := fs.String("out", "", "Optional path to write the reference-scenario yearly ledger CSV")
	_ = fs.Parse(args)

	store := mustStore(*dataPath)
	calc := arbitrage.New(store, engine.New())

	params := arbitrage.Params{SCC: *scc, LCOE: *lcoe, Beta: *beta}
	result, err := calc.Compute(*reference, *alternative, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compute: %v\n", err)
		os.Exit(1)
	}
	carbonArbitrage := result.BenefitTrillion - result.CostTrillion

	fmt.Printf("Scenarios: %s vs %s\n", *reference, *alternative)
	fmt.Printf("Discount rate: %.5f (beta=%.4f)\n", result.DiscountRate, *beta)
	fmt.Printf("Global coal production in 2022: %.2f million tonnes\n", result.BaseYearProductionMt)
	fmt.Printf("Discounted cost: %.2f trillion USD\n", result.CostTrillion)
	fmt.Printf("Total emissions prevented: %.2f GtCO2\n", result.AvoidedEmissionsGt)
	fmt.Printf("Benefit (SCC * avoided emissions): %.2f trillion USD\n", result.BenefitTrillion)
	fmt.Printf("Carbon arbitrage opportunity: %.2f trillion USD\n", carbonArbitrage)

	if *outPath != "" {
		refRows, _, err := calc.Ledgers(*reference, *alternative, *beta)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ledger: %v\n", err)
			os.Exit(1)
		}
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "ledger: %v\n", err)
			os.Exit(1)
		}
		if err := engine.WriteLedgerCSV(*outPath, refRows); err != nil {
			fmt.Fprintf(os.Stderr, "ledger: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d ledger rows to %s\n", len(refRows), *outPath)
	}
}

func cmdScenarios(args []string) {
	fs := flag.NewFlagSet("scenarios", flag.ExitOnError)
	dataPath := fs.String("data", "", "Optional scenario CSV (defaults to the embedded NGFS table)")
	_ = fs.Parse(args)

	store := mustStore(*dataPath)

	for _, scenario := range store.Scenarios() {
		fmt.Println(scenario)
		for _, variable := range store.Variables() {
			series, err := store.Series(scenario, variable)
			if err != nil {
				continue
			}
			vals := make([]string, len(series.Values))
			for i, v := range series.Values {
				vals[i] = fmt.Sprintf("%g", v)
			}
			fmt.Printf("  %-22s (%s): %s\n", variable, series.Unit, strings.Join(vals, " "))
		}
	}
}

func mustStore(path string) *data.Store {
	if path == "" {
		return data.Default()
	}
	store, err := data.LoadCSV(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load dataset: %v\n", err)
		os.Exit(1)
	}
	return store
}
