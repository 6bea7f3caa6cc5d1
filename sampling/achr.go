package sampling

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Braden-Griebel/hippotools/fba"
	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/solver"
)

// stepEps guards against zero-length directions and vanishing intervals.
const stepEps = 1e-12

// Sample draws n flux distributions from the feasible region of m using
// the requested method. Samples violating bounds or mass balance beyond
// the validation tolerance are dropped, so fewer than n rows may return.
//
// Complexity: O(warmup + n·thinning·r) per chain, where r is the number
// of reactions.
//
// Errors: ErrBadSampleCount, ErrDegenerate, model and solver errors from
// the warmup phase.
func Sample(ctx context.Context, m *model.Model, n int, method Method, opts ...Option) (*Samples, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSampleCount, n)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	w, err := newWarmup(ctx, m, cfg)
	if err != nil {
		return nil, err
	}

	var raw *mat.Dense
	switch method {
	case ACHR:
		raw, err = w.chain(ctx, n, cfg.Thinning, rand.New(rand.NewSource(cfg.Seed)))
	case OptGP:
		raw, err = w.parallel(ctx, n, cfg)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadMethod, int(method))
	}
	if err != nil {
		return nil, err
	}

	kept, dropped := validate(w, raw, cfg.ValidationTol)

	return &Samples{RxnIDs: w.rxnIDs, Data: kept, Dropped: dropped}, nil
}

// warmup holds the polytope description and the warmup point set shared
// by every chain.
type warmup struct {
	rxnIDs []string
	lower  []float64
	upper  []float64
	stoich *mat.Dense // metabolites × reactions, nil when degenerate
	points *mat.Dense // warmup points, one per row
	center []float64  // mean of warmup points, updated per accepted step
	nseen  float64    // points folded into center so far
}

// newWarmup solves one minimization and one maximization LP per reaction
// and collects the optimal vertices as warmup points.
func newWarmup(ctx context.Context, m *model.Model, cfg Options) (*warmup, error) {
	p, rxnIDs, err := fba.BuildProblem(m)
	if err != nil {
		return nil, err
	}
	lower, upper := m.Bounds()

	pts := mat.NewDense(2*len(rxnIDs), len(rxnIDs), nil)
	row := 0
	for i, id := range rxnIDs {
		for _, sense := range []solver.Sense{solver.Minimize, solver.Maximize} {
			p.ClearObjective()
			p.SetObjectiveCoeff(i, 1)
			p.SetSense(sense)
			sol, err := solver.Solve(ctx, p, solver.WithTolerance(cfg.Tolerance))
			if err != nil {
				return nil, fmt.Errorf("sampling: warmup solve for %q: %w", id, err)
			}
			pts.SetRow(row, sol.X)
			row++
		}
	}

	center := make([]float64, len(rxnIDs))
	for i := 0; i < row; i++ {
		floats.Add(center, pts.RawRowView(i))
	}
	floats.Scale(1/float64(row), center)

	if flat(pts, center) {
		return nil, ErrDegenerate
	}

	stoich, _, _ := m.Stoichiometry()

	return &warmup{
		rxnIDs: rxnIDs,
		lower:  lower,
		upper:  upper,
		stoich: stoich,
		points: pts,
		center: center,
		nseen:  float64(row),
	}, nil
}

// flat reports whether every warmup point coincides with the center,
// leaving no direction to walk in.
func flat(pts *mat.Dense, center []float64) bool {
	n, _ := pts.Dims()
	for i := 0; i < n; i++ {
		if floats.Distance(pts.RawRowView(i), center, math.Inf(1)) > stepEps {
			return false
		}
	}

	return true
}

// chain runs a single ACHR chain producing n thinned samples.
func (w *warmup) chain(ctx context.Context, n, thinning int, rng *rand.Rand) (*mat.Dense, error) {
	dim := len(w.rxnIDs)
	nPts, _ := w.points.Dims()

	center := append([]float64(nil), w.center...)
	nseen := w.nseen
	x := append([]float64(nil), center...)

	dir := make([]float64, dim)
	out := mat.NewDense(n, dim, nil)
	kept := 0
	for kept < n {
		for step := 0; step < thinning; step++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			// 1. Direction: random warmup point minus the running center.
			copy(dir, w.points.RawRowView(rng.Intn(nPts)))
			floats.Sub(dir, center)
			if floats.Norm(dir, 2) < stepEps {
				continue
			}
			// 2. Feasible step interval from the box bounds. Directions are
			//    differences of feasible points, so S·dir = 0 and mass
			//    balance is preserved for any alpha.
			lo, hi, ok := stepInterval(x, dir, w.lower, w.upper)
			if !ok {
				continue
			}
			// 3. Step and fold the new point into the center.
			alpha := lo + rng.Float64()*(hi-lo)
			floats.AddScaled(x, alpha, dir)
			nseen++
			for j := range center {
				center[j] += (x[j] - center[j]) / nseen
			}
		}
		out.SetRow(kept, x)
		kept++
	}

	return out, nil
}

// stepInterval computes the alpha range keeping x + alpha·dir inside the
// box [lower, upper]. ok is false when the interval collapses.
func stepInterval(x, dir, lower, upper []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(-1), math.Inf(1)
	for i := range x {
		d := dir[i]
		if math.Abs(d) < stepEps {
			continue
		}
		a := (lower[i] - x[i]) / d
		b := (upper[i] - x[i]) / d
		if d < 0 {
			a, b = b, a
		}
		if a > lo {
			lo = a
		}
		if b < hi {
			hi = b
		}
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi-lo < stepEps {
		return 0, 0, false
	}

	return lo, hi, true
}
