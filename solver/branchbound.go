// MILP solving: depth-first branch-and-bound over LP relaxations.
package solver

import (
	"context"
	"errors"
	"math"
)

// bbNode is one node of the branch-and-bound tree: a set of binary
// variables pinned to fixed values.
type bbNode struct {
	fixedIdx []int
	fixedVal []float64
}

// branchAndBound solves a problem containing binary variables.
//
// Strategy:
//   - Depth-first search; each node fixes one more binary to 0 or 1.
//   - Bounding: a node whose relaxation is no better than the incumbent
//     (within the solver tolerance) is pruned.
//   - Branching variable: the binary whose relaxed value is closest to 0.5.
//   - The branch matching the fractional value's rounding is explored first,
//     which tends to find a good incumbent early.
//
// Complexity: O(2^B) nodes worst case for B binaries; pruning dominates in
// practice.
func branchAndBound(ctx context.Context, p *Problem, cfg Options) (*Solution, error) {
	// Canonical direction: we compare node objectives as minimization.
	minimize := p.sense == Minimize
	better := func(a, b float64) bool {
		if minimize {
			return a < b
		}
		return a > b
	}

	var (
		incumbent    *Solution
		explored     int
		hitNodeLimit bool
	)

	// Work on a clone so bound pinning never leaks into the caller's problem.
	work := p.Clone()

	stack := []bbNode{{}}
	for len(stack) > 0 {
		// 1) Honor cancellation and the node budget.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cfg.NodeLimit > 0 && explored >= cfg.NodeLimit {
			hitNodeLimit = true
			break
		}
		explored++

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 2) Pin this node's binaries, remembering prior bounds for restore.
		savedLo := make([]float64, len(node.fixedIdx))
		savedHi := make([]float64, len(node.fixedIdx))
		for k, idx := range node.fixedIdx {
			savedLo[k], savedHi[k] = work.Bounds(idx)
			work.SetBounds(idx, node.fixedVal[k], node.fixedVal[k])
		}

		sol, err := solveRelaxation(ctx, work, cfg)

		for k, idx := range node.fixedIdx {
			work.SetBounds(idx, savedLo[k], savedHi[k])
		}

		// 3) Infeasible subtree: prune. Other failures abort the search.
		if err != nil {
			if errors.Is(err, ErrInfeasible) {
				continue
			}
			return nil, err
		}

		// 4) Bound: relaxation can only be as good as its best descendant.
		if incumbent != nil && !better(sol.Objective, incumbent.Objective) {
			continue
		}

		// 5) Integral? Then it is a candidate incumbent.
		branchVar := -1
		branchFrac := 0.0
		for i := range work.binary {
			if !work.binary[i] {
				continue
			}
			frac := math.Abs(sol.X[i] - math.Round(sol.X[i]))
			if frac > cfg.IntTol && math.Abs(frac-0.5) <= math.Abs(branchFrac-0.5) {
				branchVar, branchFrac = i, frac
			}
		}
		if branchVar < 0 {
			snapBinaries(work, sol, cfg.IntTol)
			incumbent = sol
			continue
		}

		// 6) Branch: push the less promising side first so the rounded
		//    side is explored next (LIFO).
		near := math.Round(sol.X[branchVar])
		far := 1 - near
		stack = append(stack,
			childNode(node, branchVar, far),
			childNode(node, branchVar, near),
		)
	}

	if incumbent == nil {
		if hitNodeLimit {
			return nil, ErrNodeLimit
		}
		return nil, ErrInfeasible
	}
	if hitNodeLimit {
		incumbent.Status = StatusNodeLimit
	}

	return incumbent, nil
}

// childNode extends a node with one more pinned binary.
func childNode(parent bbNode, idx int, val float64) bbNode {
	return bbNode{
		fixedIdx: append(append([]int(nil), parent.fixedIdx...), idx),
		fixedVal: append(append([]float64(nil), parent.fixedVal...), val),
	}
}

// snapBinaries rounds near-integral binary values exactly to {0,1} so
// downstream indicator reads are clean.
func snapBinaries(p *Problem, sol *Solution, intTol float64) {
	for i := range p.binary {
		if p.binary[i] && math.Abs(sol.X[i]-math.Round(sol.X[i])) <= intTol {
			sol.X[i] = math.Round(sol.X[i])
		}
	}
}
