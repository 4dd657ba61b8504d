package domain

import "fmt"

// Vehicle is the efficiency input to a trip estimate.
//
// Electric vehicles are a distinct tagged variant with zero marginal fuel
// cost; CombinedMPG is ignored for them. Combustion vehicles must carry a
// positive CombinedMPG before an estimate runs. Huge-MPG sentinel values
// are never used to fake an EV.
type Vehicle struct {
	Make        string
	Model       string
	Year        int
	Electric    bool
	CombinedMPG float64
}

// Validate checks the invariants an estimate depends on.
func (v Vehicle) Validate() error {
	if v.Electric {
		return nil
	}
	if v.CombinedMPG <= 0 {
		return fmt.Errorf("vehicle efficiency must be positive, got %.2f mpg", v.CombinedMPG)
	}
	return nil
}
