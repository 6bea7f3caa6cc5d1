// Package imat implements iMAT: integrative metabolic analysis of
// transcriptomes. Given qualitative reaction weights (+1 for highly
// expressed reactions, −1 for lowly expressed, 0 otherwise), iMAT finds a
// steady-state flux distribution that maximizes the number of
//
//   - high-weight reactions carrying flux of at least ε (in either
//     direction), plus
//   - low-weight reactions carrying essentially no flux.
//
// The search is a mixed-integer program: every high-weight reaction gets a
// forward and a reverse activation binary tied to the flux through big-M
// constraints built from the reaction bounds, every low-weight reaction a
// suppression binary pinning its flux within the activity threshold.
//
// Entry points:
//
//   - Build: assemble the MILP Formulation for a model and weight set.
//   - Optimize: Build followed by Formulation.Solve.
//   - ConstrainModel: produce a Constrained system whose feasible set is
//     restricted to fluxes within ObjTol of the iMAT optimum — the
//     substrate for enumeration (package diversity), sampling (package
//     sampling), and secondary-objective optimization.
//   - Objective / ValidateFlux: recompute or check the iMAT score of an
//     arbitrary flux vector outside the solver.
//
// Thresholds default to Epsilon 1e-2, activity Threshold 1e-5 and
// optimality tolerance ObjTol 1e-2, and are validated against the solver
// tolerance before any solve (solver.ErrThresholdTooTight).
//
// Errors (sentinel):
//
//	ErrNoWeights        - the weight set marks no reaction high or low.
//	ErrUnknownReaction  - a weight references a reaction absent from the model.
//	solver.ErrInfeasible / solver.ErrNodeLimit - propagated from the MILP.
package imat
