// Optimality-constrained systems: the substrate for enumeration, sampling
// and secondary objectives.
package imat

import (
	"context"

	"github.com/Braden-Griebel/hippotools/fba"
	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/solver"
)

// Constrained is an iMAT formulation whose feasible set has been restricted
// to solutions scoring within ObjTol of the iMAT optimum. Any objective can
// then be optimized over the expression-consistent flux space.
type Constrained struct {
	// Formulation is the underlying MILP including the optimality cut.
	Formulation *Formulation

	// ImatObjective is the iMAT optimum the cut was anchored to.
	ImatObjective float64
}

// ConstrainModel builds a Constrained system for a model and weight set.
// When prev is non-nil its objective anchors the optimality cut and no
// initial solve is performed; otherwise iMAT is solved first.
//
// The cut is Σ indicators ≥ imatObj·(1 − ObjTol).
// Complexity: one MILP solve when prev is nil, construction only otherwise.
func ConstrainModel(ctx context.Context, m *model.Model, weights map[string]float64, prev *Result, opts ...Option) (*Constrained, error) {
	f, err := Build(m, weights, opts...)
	if err != nil {
		return nil, err
	}

	imatObj := 0.0
	if prev != nil {
		imatObj = prev.Objective
	} else {
		res, err := f.Solve(ctx)
		if err != nil {
			return nil, err
		}
		imatObj = res.Objective
	}

	f.Problem.AddGreaterEqual(indicatorSum(f), imatObj*(1-f.opts.ObjTol))

	return &Constrained{Formulation: f, ImatObjective: imatObj}, nil
}

// Optimize maximizes or minimizes the flux of one reaction over the
// expression-consistent space. The indicator binaries stay integral, so
// each call is a MILP solve.
//
// Returns solver.ErrInfeasible when the optimality cut admits no flux for
// the requested objective.
func (c *Constrained) Optimize(ctx context.Context, reactionID string, sense model.ObjectiveSense) (*fba.Solution, error) {
	p := c.Formulation.Problem
	idx, err := p.Index(reactionID)
	if err != nil {
		return nil, err
	}
	p.ClearObjective()
	p.SetObjectiveCoeff(idx, 1)
	if sense == model.Minimize {
		p.SetSense(solver.Minimize)
	} else {
		p.SetSense(solver.Maximize)
	}

	sol, err := solver.Solve(ctx, p, c.Formulation.SolveOptions()...)
	if err != nil {
		return nil, err
	}

	fluxes := make(map[string]float64, len(c.Formulation.RxnIDs))
	for i, id := range c.Formulation.RxnIDs {
		fluxes[id] = sol.X[i]
	}

	return &fba.Solution{Objective: sol.X[idx], Fluxes: fluxes}, nil
}

// indicatorSum collects all indicator binaries with unit coefficients.
func indicatorSum(f *Formulation) map[int]float64 {
	coeffs := make(map[int]float64, 2*len(f.Indicators))
	for _, ind := range f.Indicators {
		if ind.Forward >= 0 {
			coeffs[ind.Forward] = 1
		}
		if ind.Reverse >= 0 {
			coeffs[ind.Reverse] = 1
		}
		if ind.Zero >= 0 {
			coeffs[ind.Zero] = 1
		}
	}

	return coeffs
}
