// iMAT formulation assembly and solving.
package imat

import (
	"context"
	"fmt"

	"github.com/Braden-Griebel/hippotools/fba"
	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/solver"
)

// Formulation is an assembled iMAT MILP: the flux-balance problem extended
// with activation and suppression binaries, objective set to the iMAT score.
type Formulation struct {
	// Problem is the underlying MILP. Callers may clone it to layer
	// enumeration cuts without disturbing the original.
	Problem *solver.Problem

	// RxnIDs is the reaction/variable ordering of the flux block.
	RxnIDs []string

	// Indicators lists the binaries per weighted reaction, sorted by
	// reaction ID.
	Indicators []Indicator

	opts Options
}

// Build assembles the iMAT MILP for a model and a qualitative weight set.
//
// Construction:
//  1. Start from the flux balance problem (fba.BuildProblem).
//  2. For every weight +1 reaction, add binaries yf, yr with
//     v + yf·(lb − ε) ≥ lb   (yf = 1 ⇒ v ≥ ε)
//     v + yr·(ub + ε) ≤ ub   (yr = 1 ⇒ v ≤ −ε)
//     yf + yr ≤ 1
//  3. For every weight −1 reaction, add binary yz with
//     v + yz·(thr − ub) ≤ ub (yz = 1 ⇒ v ≤ thr)
//     v + yz·(−thr − lb) ≥ lb (yz = 1 ⇒ v ≥ −thr)
//  4. Objective: maximize Σ yf + yr + yz.
//
// Returns ErrNoWeights when no weight is nonzero, ErrUnknownReaction for a
// weight naming an absent reaction, and solver.ErrThresholdTooTight when
// ε or the activity threshold is below solver resolution.
// Complexity: O(M·R) construction; the solve is the expensive part.
func Build(m *model.Model, weights map[string]float64, opts ...Option) (*Formulation, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := solver.ValidateThresholds(cfg.Tolerance, cfg.Epsilon, cfg.Threshold); err != nil {
		return nil, err
	}

	p, rxnIDs, err := fba.BuildProblem(m)
	if err != nil {
		return nil, err
	}

	f := &Formulation{Problem: p, RxnIDs: rxnIDs, opts: cfg}

	// Weighted reactions in reaction-ID order keeps variable layout stable.
	for _, rxnID := range rxnIDs {
		w := weights[rxnID]
		if w == 0 {
			continue
		}
		v, err := p.Index(rxnID)
		if err != nil {
			return nil, err
		}
		lb, ub := p.Bounds(v)
		ind := Indicator{Reaction: rxnID, Weight: w, Forward: -1, Reverse: -1, Zero: -1}

		if w > 0 {
			yf := p.AddBinary("imat_fwd_" + rxnID)
			yr := p.AddBinary("imat_rev_" + rxnID)
			p.AddGreaterEqual(map[int]float64{v: 1, yf: lb - cfg.Epsilon}, lb)
			p.AddLessEqual(map[int]float64{v: 1, yr: ub + cfg.Epsilon}, ub)
			p.AddLessEqual(map[int]float64{yf: 1, yr: 1}, 1)
			p.SetObjectiveCoeff(yf, 1)
			p.SetObjectiveCoeff(yr, 1)
			ind.Forward, ind.Reverse = yf, yr
		} else {
			yz := p.AddBinary("imat_off_" + rxnID)
			p.AddLessEqual(map[int]float64{v: 1, yz: cfg.Threshold - ub}, ub)
			p.AddGreaterEqual(map[int]float64{v: 1, yz: -cfg.Threshold - lb}, lb)
			p.SetObjectiveCoeff(yz, 1)
			ind.Zero = yz
		}
		f.Indicators = append(f.Indicators, ind)
	}
	if len(f.Indicators) == 0 {
		return nil, ErrNoWeights
	}

	// Reject weights for reactions the model lacks: silent drops would
	// quietly change the meaning of the objective.
	for rxnID, w := range weights {
		if w != 0 && !m.HasReaction(rxnID) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownReaction, rxnID)
		}
	}
	p.SetSense(solver.Maximize)

	return f, nil
}

// Solve optimizes the formulation's iMAT objective.
func (f *Formulation) Solve(ctx context.Context) (*Result, error) {
	sol, err := solver.Solve(ctx, f.Problem, f.SolveOptions()...)
	if err != nil {
		return nil, err
	}

	return f.resultFrom(sol), nil
}

// Interpret converts a raw solver solution over the formulation's variable
// space into a Result. Enumeration methods swap the problem's objective and
// still need the iMAT reading of each solution they produce.
func (f *Formulation) Interpret(sol *solver.Solution) *Result {
	return f.resultFrom(sol)
}

// SolveOptions returns the solver options implied by the formulation's
// configuration, so callers layering extra cuts solve consistently.
func (f *Formulation) SolveOptions() []solver.Option {
	solveOpts := []solver.Option{solver.WithTolerance(f.opts.Tolerance)}
	if f.opts.NodeLimit > 0 {
		solveOpts = append(solveOpts, solver.WithNodeLimit(f.opts.NodeLimit))
	}

	return solveOpts
}

// resultFrom interprets a raw solver solution as an iMAT Result.
func (f *Formulation) resultFrom(sol *solver.Solution) *Result {
	res := &Result{
		Objective: 0,
		Fluxes:    make(map[string]float64, len(f.RxnIDs)),
		Active:    make(map[string]bool),
		Inactive:  make(map[string]bool),
		X:         sol.X,
	}
	for i, id := range f.RxnIDs {
		res.Fluxes[id] = sol.X[i]
	}
	for _, ind := range f.Indicators {
		switch {
		case ind.Weight > 0:
			on := sol.X[ind.Forward] > 0.5 || sol.X[ind.Reverse] > 0.5
			res.Active[ind.Reaction] = on
			if on {
				res.Objective++
			}
		default:
			off := sol.X[ind.Zero] > 0.5
			res.Inactive[ind.Reaction] = off
			if off {
				res.Objective++
			}
		}
	}

	return res
}

// Optimize runs iMAT end to end: Build followed by Solve.
func Optimize(ctx context.Context, m *model.Model, weights map[string]float64, opts ...Option) (*Result, error) {
	f, err := Build(m, weights, opts...)
	if err != nil {
		return nil, err
	}

	return f.Solve(ctx)
}
