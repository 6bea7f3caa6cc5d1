// Parsimonious FBA: minimal total flux at the optimum.
package fba

import (
	"context"

	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/solver"
)

// Parsimonious runs parsimonious FBA: first locate the objective optimum,
// then, holding the objective at cfg.Fraction of it, minimize the sum of
// absolute fluxes. The reported distribution avoids futile cycles that
// plain FBA may return among its alternate optima.
//
// Absolute values are linearized by splitting every flux v = p − n with
// p, n ≥ 0 and minimizing Σ(p + n).
//
// Complexity: two LP solves over 3·R variables.
func Parsimonious(ctx context.Context, m *model.Model, opts ...Option) (*Solution, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Plain FBA for the objective optimum.
	fbaSol, err := Optimize(ctx, m, opts...)
	if err != nil {
		return nil, err
	}
	objID, sense, err := m.Objective()
	if err != nil {
		return nil, err
	}

	// 2) Rebuild with the objective pinned and |v| split variables.
	p, rxnIDs, err := BuildProblem(m)
	if err != nil {
		return nil, err
	}
	objIdx, err := p.Index(objID)
	if err != nil {
		return nil, err
	}
	if sense == model.Maximize {
		p.AddGreaterEqual(map[int]float64{objIdx: 1}, cfg.Fraction*fbaSol.Objective)
	} else {
		p.AddLessEqual(map[int]float64{objIdx: 1}, cfg.Fraction*fbaSol.Objective)
	}

	lower, upper := m.Bounds()
	for j, id := range rxnIDs {
		bound := absBound(lower[j], upper[j])
		pos := p.AddVariable("pfba_pos_"+id, 0, bound)
		neg := p.AddVariable("pfba_neg_"+id, 0, bound)
		// v = p − n ties the split to the flux.
		p.AddEqual(map[int]float64{j: 1, pos: -1, neg: 1}, 0)
		p.SetObjectiveCoeff(pos, 1)
		p.SetObjectiveCoeff(neg, 1)
	}
	p.SetSense(solver.Minimize)

	sol, err := solver.Solve(ctx, p, solver.WithTolerance(cfg.Tolerance))
	if err != nil {
		return nil, err
	}

	return &Solution{
		Objective: sol.X[objIdx],
		Fluxes:    fluxMap(rxnIDs, sol.X),
	}, nil
}

// absBound returns an upper bound on |v| for a flux bounded by [lo, hi].
func absBound(lo, hi float64) float64 {
	a, b := lo, hi
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}

	return b
}
