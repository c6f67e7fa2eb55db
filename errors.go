package pathsim

import (
	"errors"
	"fmt"

	"github.com/quantedge/pathsim/kernel"
)

// Sentinel errors returned by Simulate. Each wraps the lower-level package
// error that actually detected the condition (timegrid.ErrInvalidTimeGrid,
// sde.ErrInvalidCorrelation, kernel.ErrNonFinite), so callers can match
// either the pathsim-level sentinel or the underlying one with errors.Is.
var (
	// ErrInvalidTimeGrid is returned when ts describes an invalid time grid:
	// non-positive T, N<1, or an Explicit point sequence that is not
	// strictly increasing from 0.
	ErrInvalidTimeGrid = errors.New("pathsim: invalid time grid")

	// ErrInvalidCorrelation is returned when a two-factor model's |rho| > 1.
	ErrInvalidCorrelation = errors.New("pathsim: invalid correlation")

	// ErrInvalidIterationCount is returned when m < 1.
	ErrInvalidIterationCount = errors.New("pathsim: invalid iteration count")

	// ErrNotImplemented is returned for the combinations Simulate does not
	// dispatch: a two-factor model with the Milstein scheme, on the CPU target
	// and on the Accelerator target alike.
	ErrNotImplemented = errors.New("pathsim: scheme not implemented for this target")

	// ErrNumericFailure is returned when a path's state becomes non-finite
	// mid-simulation. Use errors.As to recover the *NumericFailureError for
	// the offending path and step.
	ErrNumericFailure = errors.New("pathsim: non-finite state encountered")

	// ErrBackendFailure is returned when a path or lane goroutine panics, on
	// either target. Use errors.As to recover the *BackendFailureError for the
	// offending path or lane and recovered panic value.
	ErrBackendFailure = errors.New("pathsim: accelerator backend failure")
)

// NumericFailureError reports which path (CPU) or lane (accelerator) first
// produced a non-finite state, and at which step.
type NumericFailureError struct {
	Path int
	Step int
}

func (e *NumericFailureError) Error() string {
	return fmt.Sprintf("pathsim: non-finite state at path %d, step %d", e.Path, e.Step)
}

// Is reports whether target is ErrNumericFailure.
func (e *NumericFailureError) Is(target error) bool { return target == ErrNumericFailure }

// Unwrap returns kernel.ErrNonFinite, the sentinel of the kernel-level
// condition this error reports.
func (e *NumericFailureError) Unwrap() error { return kernel.ErrNonFinite }

// BackendFailureError reports which path (CPU) or lane (accelerator) panicked
// and the recovered panic value; Lane holds that index.
type BackendFailureError struct {
	Lane  int
	Panic any
}

func (e *BackendFailureError) Error() string {
	return fmt.Sprintf("pathsim: lane %d panicked: %v", e.Lane, e.Panic)
}

// Is reports whether target is ErrBackendFailure.
func (e *BackendFailureError) Is(target error) bool { return target == ErrBackendFailure }
