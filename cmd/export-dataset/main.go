package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"carbon-arbitrage/internal/arbitrage"
	"carbon-arbitrage/internal/data"
	"carbon-arbitrage/internal/engine"
	"carbon-arbitrage/internal/model"
)

// export-dataset writes the scenario store and the per-scenario yearly
// ledgers to CSV files for inspection in a spreadsheet.
func main() {
	var (
		outDir   = flag.String("out", "results", "Output directory")
		dataPath = flag.String("data", "", "Optional scenario CSV (defaults to the embedded NGFS table)")
		beta     = flag.Float64("beta", 0.9132710997126332, "Beta used for the ledger discount rate")
	)
	flag.Parse()

	store := data.Default()
	if *dataPath != "" {
		loaded, err := data.LoadCSV(*dataPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load dataset: %v\n", err)
			os.Exit(1)
		}
		store = loaded
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	datasetPath := filepath.Join(*outDir, "scenarios.csv")
	if err := writeDatasetCSV(datasetPath, store); err != nil {
		fmt.Fprintf(os.Stderr, "write dataset: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote scenario table to %s\n", datasetPath)

	eng := engine.New()
	rho := arbitrage.DiscountRate(*beta)
	for _, scenario := range store.Scenarios() {
		emissions, err := store.Series(scenario, data.VarEmissionsCO2)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ledger for %s: %v\n", scenario, err)
			os.Exit(1)
		}
		production, err := store.Series(scenario, data.VarPrimaryEnergyCoal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ledger for %s: %v\n", scenario, err)
			os.Exit(1)
		}
		rows, err := eng.Ledger(emissions, production, rho)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ledger for %s: %v\n", scenario, err)
			os.Exit(1)
		}

		path := filepath.Join(*outDir, slug(scenario)+"_ledger.csv")
		if err := engine.WriteLedgerCSV(path, rows); err != nil {
			fmt.Fprintf(os.Stderr, "write ledger: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d ledger rows to %s\n", len(rows), path)
	}
}

func writeDatasetCSV(path string, store *data.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"Scenario", "Variable"}
	for _, y := range model.KnotYears() {
		header = append(header, strconv.Itoa(y))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, scenario := range store.Scenarios() {
		for _, variable := range store.Variables() {
			series, err := store.Series(scenario, variable)
			if err != nil {
				return err
			}
			row := []string{scenario, variable}
			for _, v := range series.Values {
				row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

func slug(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
