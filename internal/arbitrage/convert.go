package arbitrage

// EJ2MWh converts exajoules to megawatt-hours.
func EJ2MWh(x float64) float64 {
	joule := x * 1e18
	wh := joule / 3600.0
	return wh / 1e6
}

// EJ2Mcoal converts exajoules to million tonnes of coal equivalent.
func EJ2Mcoal(x float64) float64 {
	coal := x * 1e9 / CoalHeatContentGJPerTonne
	return coal / 1e6
}
