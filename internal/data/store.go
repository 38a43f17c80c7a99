package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"carbon-arbitrage/internal/model"
)

// Store holds scenario series keyed by (scenario, variable). It is immutable
// after construction, so it is safe to share across concurrent requests.
type Store struct {
	series    map[seriesKey]model.Series
	scenarios []string
	variables []string
}

type seriesKey struct {
	scenario string
	variable string
}

// NewStore builds a store from validated series. Duplicate
// (scenario, variable) keys are rejected.
func NewStore(series []model.Series) (*Store, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("no series provided")
	}
	s := &Store{series: make(map[seriesKey]model.Series, len(series))}
	seenScenario := map[string]bool{}
	seenVariable := map[string]bool{}
	for _, sr := range series {
		if err := sr.Validate(); err != nil {
			return nil, err
		}
		k := seriesKey{scenario: sr.Scenario, variable: sr.Variable}
		if _, dup := s.series[k]; dup {
			return nil, fmt.Errorf("duplicate series %s/%s", sr.Scenario, sr.Variable)
		}
		s.series[k] = sr
		if !seenScenario[sr.Scenario] {
			seenScenario[sr.Scenario] = true
			s.scenarios = append(s.scenarios, sr.Scenario)
		}
		if !seenVariable[sr.Variable] {
			seenVariable[sr.Variable] = true
			s.variables = append(s.variables, sr.Variable)
		}
	}
	return s, nil
}

// Default returns the store built from the embedded NGFS table.
func Default() *Store {
	series, err := ParseCSV(strings.NewReader(rawDataset))
	if err != nil {
		// The embedded table is fixed at compile time; failing to parse it
		// is a programming error.
		panic(fmt.Errorf("embedded dataset: %w", err))
	}
	s, err := NewStore(series)
	if err != nil {
		panic(fmt.Errorf("embedded dataset: %w", err))
	}
	return s
}

// LoadCSV reads a scenario table from a CSV file with the same wide layout
// as the embedded dataset.
func LoadCSV(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	series, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return NewStore(series)
}

// ParseCSV parses the wide scenario table: a header of
// Scenario,Variable,<year>... followed by one row per series.
func ParseCSV(r io.Reader) ([]model.Series, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset needs a header and at least one series row")
	}

	header := records[0]
	if len(header) < 3 || header[0] != "Scenario" || header[1] != "Variable" {
		return nil, fmt.Errorf("dataset header must start with Scenario,Variable")
	}
	years := make([]int, 0, len(header)-2)
	for _, col := range header[2:] {
		y, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return nil, fmt.Errorf("invalid year column %q", col)
		}
		years = append(years, y)
	}

	series := make([]model.Series, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("series row for %q has %d columns, expected %d", rec[0], len(rec), len(header))
		}
		values := make([]float64, 0, len(years))
		for i, cell := range rec[2:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("series %s/%s year %d: invalid value %q", rec[0], rec[1], years[i], cell)
			}
			values = append(values, v)
		}
		series = append(series, model.Series{
			Scenario: rec[0],
			Variable: rec[1],
			Unit:     unitForVariable(rec[1]),
			Years:    append([]int(nil), years...),
			Values:   values,
		})
	}
	return series, nil
}

func unitForVariable(variable string) model.Unit {
	if variable == VarEmissionsCO2 {
		return model.UnitMegatonnesCO2
	}
	return model.UnitExajoules
}

// Series returns the stored series for (scenario, variable), or a
// NotFoundError naming the missing key.
func (s *Store) Series(scenario, variable string) (model.Series, error) {
	sr, ok := s.series[seriesKey{scenario: scenario, variable: variable}]
	if !ok {
		if !s.HasScenario(scenario) {
			return model.Series{}, &model.NotFoundError{Scenario: scenario}
		}
		return model.Series{}, &model.NotFoundError{Scenario: scenario, Variable: variable}
	}
	return sr, nil
}

// HasScenario reports whether any series exists for the scenario.
func (s *Store) HasScenario(scenario string) bool {
	for _, name := range s.scenarios {
		if name == scenario {
			return true
		}
	}
	return false
}

// Scenarios returns scenario names in dataset order.
func (s *Store) Scenarios() []string {
	return append([]string(nil), s.scenarios...)
}

// Variables returns variable names in dataset order.
func (s *Store) Variables() []string {
	return append([]string(nil), s.variables...)
}
