package diversity

import (
	"context"
	"errors"
	"fmt"

	"github.com/Braden-Griebel/hippotools/imat"
	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/solver"
)

// DefaultMaxIterations caps an Enumerator when no explicit limit is set.
const DefaultMaxIterations = 10

// ErrExhausted signals that no further distinct solution exists within the
// optimality tolerance.
var ErrExhausted = errors.New("diversity: solution space exhausted")

// Enumerator walks through alternative optimal iMAT solutions. Create one
// with NewEnumerator and pull solutions with Next until ErrExhausted.
// An Enumerator is not safe for concurrent use.
type Enumerator struct {
	f       *imat.Formulation
	method  Method
	maxIter int
	binIdx  []int    // all indicator binary indices, stable order
	prev    [][]bool // indicator patterns of returned solutions
	first   *imat.Result
	count   int
}

// EnumOption configures an Enumerator.
type EnumOption func(*Enumerator)

// WithMaxIterations caps the number of solutions returned. Must be positive.
func WithMaxIterations(n int) EnumOption {
	return func(e *Enumerator) {
		if n > 0 {
			e.maxIter = n
		}
	}
}

// NewEnumerator builds the iMAT MILP for a model and weight set, solves it
// once, and prepares enumeration with the chosen method. The optimality
// cut (Σ indicators ≥ optimum·(1 − ObjTol)) confines every later solution
// to the near-optimal score band.
//
// Errors: imat build and solve errors; the initial optimum itself is
// returned by the first Next call.
func NewEnumerator(ctx context.Context, m *model.Model, weights map[string]float64, method Method, imatOpts []imat.Option, opts ...EnumOption) (*Enumerator, error) {
	if method != Diversity && method != MaxDist && method != Icut {
		return nil, fmt.Errorf("%w: %d", ErrBadEnumMethod, int(method))
	}
	cfg := imat.DefaultOptions()
	for _, opt := range imatOpts {
		opt(&cfg)
	}

	f, err := imat.Build(m, weights, imatOpts...)
	if err != nil {
		return nil, err
	}
	first, err := f.Solve(ctx)
	if err != nil {
		return nil, err
	}

	e := &Enumerator{
		f:       f,
		method:  method,
		maxIter: DefaultMaxIterations,
		first:   first,
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, ind := range f.Indicators {
		for _, idx := range []int{ind.Forward, ind.Reverse, ind.Zero} {
			if idx >= 0 {
				e.binIdx = append(e.binIdx, idx)
			}
		}
	}

	cut := make(map[int]float64, len(e.binIdx))
	for _, idx := range e.binIdx {
		cut[idx] = 1
	}
	f.Problem.AddGreaterEqual(cut, first.Objective*(1-cfg.ObjTol))

	return e, nil
}

// Next returns the next enumerated solution. The first call yields the
// plain iMAT optimum; later calls exclude every pattern seen so far and
// re-optimize according to the enumeration method.
//
// Returns ErrExhausted when the iteration cap is reached or no distinct
// pattern remains within the optimality band.
func (e *Enumerator) Next(ctx context.Context) (*imat.Result, error) {
	if e.count >= e.maxIter {
		return nil, ErrExhausted
	}
	if e.count == 0 {
		e.count++
		e.prev = append(e.prev, e.pattern(e.first.X))

		return e.first, nil
	}

	e.addIntegerCut(e.prev[len(e.prev)-1])
	e.setObjective()

	sol, err := solver.Solve(ctx, e.f.Problem, e.f.SolveOptions()...)
	if err != nil {
		if errors.Is(err, solver.ErrInfeasible) {
			return nil, ErrExhausted
		}
		return nil, err
	}

	e.count++
	e.prev = append(e.prev, e.pattern(sol.X))

	return e.f.Interpret(sol), nil
}

// Count reports how many solutions have been returned so far.
func (e *Enumerator) Count() int { return e.count }

// pattern reads the indicator binaries out of a raw solution vector.
func (e *Enumerator) pattern(x []float64) []bool {
	bits := make([]bool, len(e.binIdx))
	for i, idx := range e.binIdx {
		bits[i] = x[idx] > 0.5
	}

	return bits
}

// addIntegerCut excludes one indicator pattern:
//
//	Σ_{bit=0} y + Σ_{bit=1} (1 − y) ≥ 1
func (e *Enumerator) addIntegerCut(bits []bool) {
	coeffs := make(map[int]float64, len(e.binIdx))
	ones := 0
	for i, idx := range e.binIdx {
		if bits[i] {
			coeffs[idx] = -1
			ones++
		} else {
			coeffs[idx] = 1
		}
	}
	e.f.Problem.AddGreaterEqual(coeffs, float64(1-ones))
}

// setObjective installs the method's search direction. Icut re-maximizes
// the iMAT score; MaxDist rewards disagreement with the latest pattern;
// Diversity rewards summed disagreement with every pattern so far.
func (e *Enumerator) setObjective() {
	p := e.f.Problem
	p.ClearObjective()
	p.SetSense(solver.Maximize)

	switch e.method {
	case Icut:
		for _, idx := range e.binIdx {
			p.SetObjectiveCoeff(idx, 1)
		}
	case MaxDist:
		last := e.prev[len(e.prev)-1]
		for i, idx := range e.binIdx {
			if last[i] {
				p.SetObjectiveCoeff(idx, -1)
			} else {
				p.SetObjectiveCoeff(idx, 1)
			}
		}
	case Diversity:
		for i, idx := range e.binIdx {
			coeff := 0.0
			for _, bits := range e.prev {
				if bits[i] {
					coeff--
				} else {
					coeff++
				}
			}
			p.SetObjectiveCoeff(idx, coeff)
		}
	}
}
