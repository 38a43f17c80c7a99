package data

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-arbitrage/internal/model"
)

func TestDefaultStoreContents(t *testing.T) {
	store := Default()

	assert.Equal(t, []string{ScenarioCurrentPolicies, ScenarioNetZero2050}, store.Scenarios())
	assert.Equal(t, []string{VarEmissionsCO2, VarPrimaryEnergyCoal}, store.Variables())

	for _, scenario := range store.Scenarios() {
		for _, variable := range store.Variables() {
			series, err := store.Series(scenario, variable)
			require.NoError(t, err)
			require.Len(t, series.Values, model.KnotCount)
			assert.Equal(t, model.KnotYears(), series.Years)
		}
	}
}

func TestDefaultStoreKnownValues(t *testing.T) {
	store := Default()

	emissions, err := store.Series(ScenarioCurrentPolicies, VarEmissionsCO2)
	require.NoError(t, err)
	assert.Equal(t, 27000.0, emissions.Values[0]) // 2010
	assert.Equal(t, 18000.0, emissions.Values[len(emissions.Values)-1])
	assert.Equal(t, model.UnitMegatonnesCO2, emissions.Unit)

	coal, err := store.Series(ScenarioNetZero2050, VarPrimaryEnergyCoal)
	require.NoError(t, err)
	assert.Equal(t, 100.0, coal.Values[0])
	assert.Equal(t, 0.5, coal.Values[len(coal.Values)-1]) // 2100
	assert.Equal(t, model.UnitExajoules, coal.Unit)
}

func TestStoreLookupErrors(t *testing.T) {
	store := Default()

	_, err := store.Series("No Such Scenario", VarEmissionsCO2)
	require.Error(t, err)
	var notFound *model.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "No Such Scenario", notFound.Scenario)
	assert.Empty(t, notFound.Variable)

	_, err = store.Series(ScenarioCurrentPolicies, "No Such Variable")
	require.Error(t, err)
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "No Such Variable", notFound.Variable)
}

func TestNewStoreRejectsDuplicates(t *testing.T) {
	series, err := ParseCSV(strings.NewReader(rawDataset))
	require.NoError(t, err)

	_, err = NewStore(append(series, series[0]))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"empty", ""},
		{"header only", "Scenario,Variable,2010\n"},
		{"bad header", "Foo,Bar,2010\nA,B,1\n"},
		{"bad year column", "Scenario,Variable,twenty-ten\nA,B,1\n"},
		{"bad value", "Scenario,Variable,2010\nA,B,abc\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tc.csv))
			assert.Error(t, err)
		})
	}
}

func TestLoadCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.csv")
	require.NoError(t, os.WriteFile(path, []byte(rawDataset), 0o644))

	store, err := LoadCSV(path)
	require.NoError(t, err)

	series, err := store.Series(ScenarioNetZero2050, VarEmissionsCO2)
	require.NoError(t, err)
	assert.Equal(t, 300.0, series.Values[len(series.Values)-1])
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
