package timegrid

// Grid is an ordered sequence of time points t0=0 < t1 < ... < tN. It is built
// once per simulation and is read-only thereafter; it is safe to share across
// goroutines.
type Grid struct {
	n       int
	delta   float64 // valid only when uniform
	uniform bool
	points  []float64 // valid only when !uniform; defensively copied at construction
}

// Uniform returns the grid t_i = Delta*i for i=0..N, Delta=T/N. It requires T>0
// and N>=1; otherwise it returns ErrInvalidTimeGrid.
func Uniform(t float64, n int) (Grid, error) {
	if t <= 0 || n < 1 {
		return Grid{}, ErrInvalidTimeGrid
	}
	return Grid{n: n, delta: t / float64(n), uniform: true}, nil
}

// Explicit validates and wraps a caller-supplied ordered sequence of time points.
// points[0] must be exactly 0 and the sequence must be strictly increasing;
// otherwise ErrInvalidTimeGrid is returned. The slice is copied once so later
// mutation by the caller cannot affect the grid.
func Explicit(points []float64) (Grid, error) {
	if len(points) < 2 {
		return Grid{}, ErrInvalidTimeGrid
	}
	if points[0] != 0 {
		return Grid{}, ErrInvalidTimeGrid
	}
	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			return Grid{}, ErrInvalidTimeGrid
		}
	}
	cp := make([]float64, len(points))
	copy(cp, points)
	return Grid{n: len(cp) - 1, points: cp, uniform: false}, nil
}

// N returns the number of steps (the grid has N+1 points, indices 0..N).
func (g Grid) N() int { return g.n }

// Uniform reports whether the grid is uniform and, if so, its constant step
// Delta=T/N. At and Step already compute uniform times and steps from Delta,
// without a materialized slice.
func (g Grid) Uniform() (delta float64, ok bool) {
	return g.delta, g.uniform
}

// At returns t_i, the time at grid index i.
func (g Grid) At(i int) float64 {
	if g.uniform {
		return g.delta * float64(i)
	}
	return g.points[i]
}

// Step returns Delta_i = t_{i+1} - t_i, the step between grid index i and i+1.
func (g Grid) Step(i int) float64 {
	if g.uniform {
		return g.delta
	}
	return g.points[i+1] - g.points[i]
}
