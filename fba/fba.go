// Core FBA: problem construction and single-objective optimization.
package fba

import (
	"context"

	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/solver"
)

// BuildProblem translates a model into a solver.Problem: one continuous
// variable per reaction (named by reaction ID, bounded by the reaction's
// flux bounds) and one mass-balance equality per metabolite. The objective
// is left unset; callers install their own.
//
// The returned reaction ID slice is the variable ordering, identical to
// model.Stoichiometry's column ordering.
// Complexity: O(M·R) through the dense stoichiometric export.
func BuildProblem(m *model.Model) (*solver.Problem, []string, error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}
	s, metIDs, rxnIDs := m.Stoichiometry()
	if len(rxnIDs) == 0 {
		return nil, nil, ErrNoReactions
	}
	lower, upper := m.Bounds()

	p := solver.NewProblem()
	for i, id := range rxnIDs {
		p.AddVariable(id, lower[i], upper[i])
	}

	// One steady-state row per metabolite: Σ S[i][j]·v[j] = 0.
	for i := range metIDs {
		coeffs := make(map[int]float64)
		for j := range rxnIDs {
			if c := s.At(i, j); c != 0 {
				coeffs[j] = c
			}
		}
		if len(coeffs) > 0 {
			p.AddEqual(coeffs, 0)
		}
	}

	return p, rxnIDs, nil
}

// Optimize runs flux balance analysis on the model's objective reaction.
//
// Returns model.ErrNoObjective when the model has no objective, and the
// solver's sentinel errors for infeasible or unbounded constraint sets.
// Complexity: one LP solve.
func Optimize(ctx context.Context, m *model.Model, opts ...Option) (*Solution, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	p, rxnIDs, err := BuildProblem(m)
	if err != nil {
		return nil, err
	}
	objID, sense, err := m.Objective()
	if err != nil {
		return nil, err
	}
	objIdx, err := p.Index(objID)
	if err != nil {
		return nil, err
	}
	p.SetObjectiveCoeff(objIdx, 1)
	p.SetSense(solverSense(sense))

	sol, err := solver.Solve(ctx, p, solver.WithTolerance(cfg.Tolerance))
	if err != nil {
		return nil, err
	}

	return &Solution{
		Objective: sol.X[objIdx],
		Fluxes:    fluxMap(rxnIDs, sol.X),
	}, nil
}

// solverSense maps the model's objective sense onto the solver's.
func solverSense(sense model.ObjectiveSense) solver.Sense {
	if sense == model.Minimize {
		return solver.Minimize
	}

	return solver.Maximize
}

// fluxMap zips the reaction ordering with a solution vector.
func fluxMap(rxnIDs []string, x []float64) map[string]float64 {
	fluxes := make(map[string]float64, len(rxnIDs))
	for i, id := range rxnIDs {
		fluxes[id] = x[i]
	}

	return fluxes
}
