package domain

import "fmt"

// FuelGrade identifies the pump grade a price lookup is keyed on.
type FuelGrade string

const (
	GradeRegular  FuelGrade = "regular"
	GradeMidGrade FuelGrade = "midgrade"
	GradePremium  FuelGrade = "premium"
	GradeDiesel   FuelGrade = "diesel"
)

// FallbackPricePerGallon is applied when no regional price resolves.
// Estimates built on it carry a user-visible warning flag.
const FallbackPricePerGallon = 3.60

// ParseFuelGrade validates a request-supplied grade string.
// Empty input defaults to regular.
func ParseFuelGrade(s string) (FuelGrade, error) {
	switch FuelGrade(s) {
	case "":
		return GradeRegular, nil
	case GradeRegular, GradeMidGrade, GradePremium, GradeDiesel:
		return FuelGrade(s), nil
	}
	return "", fmt.Errorf("unknown fuel grade %q", s)
}
