package numderiv

// DefaultStep is the conservative default central-difference step h used by the
// Milstein kernels when no override is supplied.
const DefaultStep = 1e-5

// Central approximates f'(x) by central finite difference with step h:
//
//	f'(x) ~= (f(x + h/2) - f(x - h/2)) / h
//
// f is expected to be the diffusion coefficient closed over the current time and
// companion state, so the derivative is taken with respect to the single state
// argument the kernel is stepping.
func Central(f func(x float64) float64, x, h float64) float64 {
	half := h / 2
	return (f(x+half) - f(x-half)) / h
}
