package model

import "fmt"

// NotFoundError reports a lookup for a scenario or variable that is not in
// the data store.
type NotFoundError struct {
	Scenario string
	Variable string
}

func (e *NotFoundError) Error() string {
	if e.Variable == "" {
		return fmt.Sprintf("unknown scenario %q", e.Scenario)
	}
	return fmt.Sprintf("unknown scenario/variable %q/%q", e.Scenario, e.Variable)
}

// DomainError reports an interpolation request outside the knot range of a
// series. The knot grid is fixed, so hitting this means the projection window
// is misconfigured in the caller.
type DomainError struct {
	Year    float64
	MinYear int
	MaxYear int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("year %g outside interpolation range [%d, %d]", e.Year, e.MinYear, e.MaxYear)
}
