package data

// Scenario and variable names as they appear in the NGFS dataset.
const (
	ScenarioCurrentPolicies = "NGFS2_Current Policies"
	ScenarioNetZero2050     = "NGFS2_Net-Zero 2050"

	VarEmissionsCO2      = "Emissions|CO2"
	VarPrimaryEnergyCoal = "Primary Energy|Coal"
)

// rawDataset is the built-in NGFS scenario table: two scenarios, two
// variables each, at five-year knots 2010..2100. Emissions are in million
// tonnes CO2, primary energy in EJ. A deployment can swap in its own table
// via LoadCSV, which expects the same wide layout.
const rawDataset = `Scenario,Variable,2010,2015,2020,2025,2030,2035,2040,2045,2050,2055,2060,2065,2070,2075,2080,2085,2090,2095,2100
NGFS2_Current Policies,Emissions|CO2,27000,32000,34000,33000,32000,31000,30000,29000,28000,27000,26000,25000,24000,23000,22000,21000,20000,19000,18000
NGFS2_Current Policies,Primary Energy|Coal,100,110,105,100,95,90,85,80,75,70,65,60,55,50,45,40,35,30,25
NGFS2_Net-Zero 2050,Emissions|CO2,27000,32000,34000,30000,26000,22000,18000,14000,10000,8000,6000,4000,3000,2000,1500,1000,500,400,300
NGFS2_Net-Zero 2050,Primary Energy|Coal,100,110,105,95,85,70,60,45,30,25,20,15,10,5,4,3,2,1,0.5
`
