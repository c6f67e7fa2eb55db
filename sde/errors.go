package sde

import "errors"

// Sentinel errors for sde construction. Callers MUST use errors.Is to branch on
// these; the package never wraps them with formatted strings at the definition
// site (context, if any, is added by the caller with fmt.Errorf("...: %w", err)).
var (
	// ErrInvalidCorrelation indicates |rho| > 1 was supplied to NewSde2.
	ErrInvalidCorrelation = errors.New("sde: correlation must satisfy |rho| <= 1")
)
