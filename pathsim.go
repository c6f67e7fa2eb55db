package pathsim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/quantedge/pathsim/ensemble"
	"github.com/quantedge/pathsim/kernel"
	"github.com/quantedge/pathsim/lanes"
	"github.com/quantedge/pathsim/pathrng"
	"github.com/quantedge/pathsim/sde"
	"github.com/quantedge/pathsim/timegrid"
	"golang.org/x/sync/errgroup"
)

// Simulate runs m independent paths of model under scheme on the time grid
// described by ts, returning an Ensemble of the results.
//
// model must be sde.Sde1 or sde.Sde2; any other type is a programmer error
// and panics, since it cannot arise from this package's own constructors.
//
// Dispatch collapses the source's "one entry point per factor count" into a
// single function with an internal type switch, keeping every kernel body
// monomorphic in its own factor count (no interface boxing inside the hot
// loop). The driver itself is a single call, not a long-lived object: config
// validation happens before any goroutine is launched, and Simulate returns
// only once every path (or lane) has completed — the "configured / running /
// complete" lifecycle is expressed entirely in control flow.
//
// Errors: ErrInvalidTimeGrid, ErrInvalidCorrelation, ErrInvalidIterationCount
// are returned before any work starts. ErrNotImplemented is returned for a
// two-factor model with the Milstein scheme, on either target. ErrNumericFailure
// (wrapping *NumericFailureError) and ErrBackendFailure (wrapping
// *BackendFailureError) are returned if a path or lane fails during the run;
// the first such failure observed cancels the errgroup's context, paths that
// have not started yet are skipped, and that failure is returned alone.
func Simulate(model any, scheme Scheme, ts TimeSpec, m int, opts ...Option) (*ensemble.Ensemble, error) {
	if m < 1 {
		return nil, ErrInvalidIterationCount
	}
	grid, err := buildGrid(ts)
	if err != nil {
		return nil, err
	}
	if err := validateCorrelation(model); err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)

	switch s := model.(type) {
	case sde.Sde1:
		return simulate1(s, scheme, grid, m, cfg)
	case sde.Sde2:
		return simulate2(s, scheme, grid, m, cfg)
	default:
		panic(fmt.Sprintf("pathsim: unsupported model type %T", model))
	}
}

func buildGrid(ts TimeSpec) (timegrid.Grid, error) {
	var (
		grid timegrid.Grid
		err  error
	)
	if ts.uniform {
		grid, err = timegrid.Uniform(ts.t, ts.n)
	} else {
		grid, err = timegrid.Explicit(ts.points)
	}
	if err != nil {
		return timegrid.Grid{}, fmt.Errorf("%w: %w", ErrInvalidTimeGrid, err)
	}
	return grid, nil
}

func validateCorrelation(model any) error {
	if s, ok := model.(sde.Sde2); ok {
		if math.Abs(s.Correlation()) > 1 {
			return fmt.Errorf("%w: %w", ErrInvalidCorrelation, sde.ErrInvalidCorrelation)
		}
	}
	return nil
}

// pathFunc produces one row of the ensemble, given its index (path index for
// CPU, lane index for Accelerator).
type pathFunc func(index int) ([]float64, error)

func simulate1(s sde.Sde1, scheme Scheme, grid timegrid.Grid, m int, cfg *config) (*ensemble.Ensemble, error) {
	switch cfg.target {
	case CPU:
		seed := cfg.resolveSeed()
		switch scheme {
		case Euler:
			return run(grid, m, func(i int) ([]float64, error) {
				return kernel.Euler1(s, grid, pathrng.New(seed, uint64(i)))
			})
		case MilsteinScheme:
			mil := kernel.NewMilstein(kernel.WithStep(cfg.milsteinStep))
			return run(grid, m, func(i int) ([]float64, error) {
				return mil.Milstein1(s, grid, pathrng.New(seed, uint64(i)))
			})
		}
	case Accelerator:
		switch scheme {
		case Euler:
			return run(grid, m, func(i int) ([]float64, error) {
				return lanes.Euler1(s, grid, uint64(i))
			})
		case MilsteinScheme:
			return run(grid, m, func(i int) ([]float64, error) {
				return lanes.Milstein1(s, grid, cfg.milsteinStep, uint64(i))
			})
		}
	}
	panic("pathsim: unreachable scheme/target combination")
}

func simulate2(s sde.Sde2, scheme Scheme, grid timegrid.Grid, m int, cfg *config) (*ensemble.Ensemble, error) {
	switch cfg.target {
	case CPU:
		switch scheme {
		case Euler:
			seed := cfg.resolveSeed()
			return run(grid, m, func(i int) ([]float64, error) {
				return kernel.Euler2(s, grid, pathrng.New(seed, uint64(i)))
			})
		case MilsteinScheme:
			// Simulate does not dispatch two-factor Milstein on the CPU
			// target; kernel.Milstein2 exists but is only reachable by
			// calling it directly.
			return nil, ErrNotImplemented
		}
	case Accelerator:
		switch scheme {
		case Euler:
			return run(grid, m, func(i int) ([]float64, error) {
				return lanes.Euler2(s, grid, s.Correlation(), uint64(i))
			})
		case MilsteinScheme:
			// The lanes package has no two-factor Milstein kernel.
			return nil, ErrNotImplemented
		}
	}
	panic("pathsim: unreachable scheme/target combination")
}

// run fans f out over m independent tasks via an errgroup, recovering any
// panic as a *BackendFailureError rather than letting it cross the group
// boundary. The first error (numeric or backend) any task reports cancels the
// group's context; tasks that have not started by then return without running
// their path, and tasks already running finish their path. Results are written
// directly into row i of the returned Ensemble, so there is no intermediate
// slice-of-slices to reassemble in order.
func run(grid timegrid.Grid, m int, f pathFunc) (*ensemble.Ensemble, error) {
	ens := ensemble.New(m, grid.N())

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < m; i++ {
		i := i
		g.Go(func() (err error) {
			if ctx.Err() != nil {
				return nil
			}
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w", &BackendFailureError{Lane: i, Panic: r})
				}
			}()
			path, kerr := f(i)
			if kerr != nil {
				var nfe *kernel.NonFiniteError
				if errors.As(kerr, &nfe) {
					return fmt.Errorf("%w", &NumericFailureError{Path: i, Step: nfe.Step})
				}
				return kerr
			}
			ens.SetRow(i, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ens, nil
}
