// Package solver provides linear and mixed-integer linear optimization for
// the rest of the toolkit, built on gonum's dense simplex
// (gonum.org/v1/gonum/optimize/convex/lp).
//
// A Problem is built incrementally: bounded continuous variables, binary
// variables, linear equality and inequality constraints, and a linear
// objective with a Minimize or Maximize sense. Solve dispatches on the
// variable mix:
//
//   - Pure LP: the problem is converted to standard form (lp.Convert) and
//     handed to lp.Simplex.
//   - MILP: binary variables are solved by depth-first branch-and-bound over
//     LP relaxations, branching on the most fractional binary, pruning on
//     incumbent bound and infeasibility. The search honors context
//     cancellation and an optional node limit.
//
// Complexity:
//
//   - LP: simplex is exponential in the worst case but near-linear in
//     practice for the sparse, bounded problems metabolic models produce.
//   - MILP: O(2^B) nodes in the worst case for B binary variables; the
//     optimality-gap pruning keeps typical iMAT instances far below that.
//
// Errors (sentinel):
//
//	ErrInfeasible       - no feasible point exists.
//	ErrUnbounded        - the objective is unbounded over the feasible set.
//	ErrNoVariables      - Solve called on an empty problem.
//	ErrNodeLimit        - branch-and-bound exhausted its node budget.
//	ErrNumeric          - the simplex failed for numerical reasons.
//	ErrUnknownVariable  - a name lookup referenced no variable.
//	ErrThresholdTooTight- an activation threshold is below solver resolution.
//	context.Canceled / context.DeadlineExceeded - when ctx is canceled.
package solver
