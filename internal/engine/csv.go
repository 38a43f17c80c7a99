package engine

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteLedgerCSV writes a scenario ledger to a CSV file, one row per
// projection year.
func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"emissions_mt",
		"production_ej",
		"discount_factor",
		"discounted_production_ej",
		"cum_emissions_gt",
		"cum_discounted_production_ej",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.EmissionsMt),
			fmtFloat(r.ProductionEJ),
			fmtFloat(r.DiscountFactor),
			fmtFloat(r.DiscountedProductionEJ),
			fmtFloat(r.CumEmissionsGt),
			fmtFloat(r.CumDiscountedProductionEJ),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
