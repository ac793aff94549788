// Package penalty implements the built-in PenaltyKit energy terms:
// Adhesion, Volume, Perimeter, Migration (Act model), and Chemotaxis. Each
// type implements cellpotts.Penalty and validates its own parameters
// eagerly at construction, before ever touching a lattice.
package penalty

import "github.com/vellum-sim/cellpotts"

// errConfig wraps cellpotts.NewConfigurationError with the calling
// penalty's name, matching the component tag every other ConfigurationError
// in this module carries.
func errConfig(component, reason string) error {
	return cellpotts.NewConfigurationError(component, reason)
}
