package pathsim

// TimeSpec describes the time grid a simulation runs on, without committing
// to uniform or explicit spacing until Simulate builds the timegrid.Grid —
// callers never construct a timegrid.Grid directly.
type TimeSpec struct {
	t       float64
	n       int
	points  []float64
	uniform bool
}

// UniformTime describes a uniform grid t_i = Delta*i, Delta = T/N.
func UniformTime(t float64, n int) TimeSpec {
	return TimeSpec{t: t, n: n, uniform: true}
}

// ExplicitTime describes an explicit, caller-supplied sequence of time
// points; points[0] must be 0 and the sequence strictly increasing.
func ExplicitTime(points []float64) TimeSpec {
	cp := make([]float64, len(points))
	copy(cp, points)
	return TimeSpec{points: cp, uniform: false}
}
