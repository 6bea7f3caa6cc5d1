// Package solver_test provides benchmarks for LP and MILP solves.
package solver_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Braden-Griebel/hippotools/solver"
)

// chainProblem builds a pathway-shaped LP: n flux variables linked by
// v[i] = v[i+1] equalities, maximizing the last one under a capped first.
func chainProblem(n int) *solver.Problem {
	p := solver.NewProblem()
	prev := p.AddVariable("v0", 0, 10)
	for i := 1; i < n; i++ {
		cur := p.AddVariable(fmt.Sprintf("v%d", i), 0, 1000)
		p.AddEqual(map[int]float64{prev: 1, cur: -1}, 0)
		prev = cur
	}
	p.SetObjectiveCoeff(prev, 1)
	p.SetSense(solver.Maximize)

	return p
}

// BenchmarkSolveLP_Chain50 measures a pure simplex solve over a 50-variable
// equality chain, the shape of a mass-balanced linear pathway.
func BenchmarkSolveLP_Chain50(b *testing.B) {
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := chainProblem(50)
		if _, err := solver.Solve(ctx, p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolveMILP_Indicators measures branch-and-bound over a knapsack
// of 10 binaries, the indicator shape used by expression integration.
func BenchmarkSolveMILP_Indicators(b *testing.B) {
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := solver.NewProblem()
		budget := map[int]float64{}
		for j := 0; j < 10; j++ {
			y := p.AddBinary(fmt.Sprintf("y%d", j))
			p.SetObjectiveCoeff(y, float64(j+1))
			budget[y] = float64(10 - j)
		}
		p.AddLessEqual(budget, 25)
		p.SetSense(solver.Maximize)
		if _, err := solver.Solve(ctx, p); err != nil {
			b.Fatal(err)
		}
	}
}
