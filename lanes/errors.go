package lanes

import "github.com/quantedge/pathsim/kernel"

// ErrNonFinite re-exports kernel.ErrNonFinite: lane kernels report the same
// failure condition as CPU kernels, and callers should errors.Is against one
// sentinel regardless of which target produced the path.
var ErrNonFinite = kernel.ErrNonFinite
