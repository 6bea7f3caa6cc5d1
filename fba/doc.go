// Package fba implements flux balance analysis over metabolic models.
//
// Flux balance analysis (FBA) finds a steady-state flux distribution
// v ∈ R^n that maximizes (or minimizes) the flux through an objective
// reaction subject to mass balance and capacity:
//
//	S·v = 0,  lb ≤ v ≤ ub
//
// where S is the model's stoichiometric matrix. The package offers:
//
//   - Optimize: plain FBA returning the objective value and flux vector.
//   - FluxVariability: per-reaction flux minima and maxima at a given
//     fraction of the optimum, computed in parallel across a bounded
//     worker pool.
//   - Parsimonious: pFBA — fix the objective at (a fraction of) its
//     optimum, then minimize total absolute flux, removing thermodynamically
//     wasteful cycles from the reported distribution.
//   - KnockoutGene / KnockoutReaction: the perturbed optimum after removing
//     a gene (through its GPR rules) or a single reaction.
//
// All entry points accept a context.Context and stop early when it is
// canceled.
//
// Complexity: each FBA solve is one LP; FluxVariability performs 2·R solves
// for R reactions; Parsimonious performs two.
//
// Errors (sentinel):
//
//	ErrNilModel    - a nil model was supplied.
//	ErrNoReactions - the model has no reactions to optimize over.
//	model.ErrNoObjective    - the model has no objective reaction.
//	solver.ErrInfeasible    - the constraint set admits no flux.
//	solver.ErrUnbounded     - the objective is unbounded (missing bounds).
package fba
