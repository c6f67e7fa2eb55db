package kernel

import (
	"errors"
	"fmt"
)

// ErrNonFinite is the sentinel matched by errors.Is against any NonFiniteError.
// A kernel never retries on this condition: a non-finite state indicates a model
// or parameter problem, not a transient failure.
var ErrNonFinite = errors.New("kernel: non-finite state encountered")

// NonFiniteError reports the first step at which a path's state became NaN or
// +/-Inf. Callers that only need to branch on the failure class should use
// errors.Is(err, ErrNonFinite); callers that need the step index should use
// errors.As.
type NonFiniteError struct {
	Step int
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("kernel: non-finite state at step %d", e.Step)
}

// Is reports whether target is the ErrNonFinite sentinel, so errors.Is works
// without callers needing to know about the concrete NonFiniteError type.
func (e *NonFiniteError) Is(target error) bool {
	return target == ErrNonFinite
}
