// LP solving: general form → standard form → gonum simplex.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Solve optimizes the problem. Pure LPs go straight to the simplex; problems
// with binary variables are handed to branch-and-bound.
//
// The returned Solution carries the objective in the problem's declared
// sense and one value per variable. Infeasibility and unboundedness are
// reported via ErrInfeasible / ErrUnbounded.
//
// Complexity: see the package documentation.
func Solve(ctx context.Context, p *Problem, opts ...Option) (*Solution, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the problem shape.
	if p == nil || p.NumVariables() == 0 {
		return nil, ErrNoVariables
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3) Dispatch on the variable mix.
	for i := range p.binary {
		if p.binary[i] {
			return branchAndBound(ctx, p, cfg)
		}
	}

	return solveRelaxation(ctx, p, cfg)
}

// solveRelaxation solves the problem as a pure LP, treating binary
// variables as continuous within their current bounds.
func solveRelaxation(ctx context.Context, p *Problem, cfg Options) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := p.NumVariables()

	// 1) Canonical minimization objective.
	c := make([]float64, n)
	copy(c, p.obj)
	if p.sense == Maximize {
		floats.Scale(-1, c)
	}

	// 2) Inequality block G·x ≤ h: explicit constraints first, then the
	//    variable bounds (standard-form conversion frees all variables, so
	//    bounds must travel as rows).
	var gRows [][]float64
	var h []float64
	for _, con := range p.ineqs {
		gRows = append(gRows, denseRow(con.coeffs, n))
		h = append(h, con.rhs)
	}
	for i := 0; i < n; i++ {
		if !math.IsInf(p.upper[i], 1) {
			row := make([]float64, n)
			row[i] = 1
			gRows = append(gRows, row)
			h = append(h, p.upper[i])
		}
		if !math.IsInf(p.lower[i], -1) {
			row := make([]float64, n)
			row[i] = -1
			gRows = append(gRows, row)
			h = append(h, -p.lower[i])
		}
	}

	// 3) Equality block A·x = b.
	var aRows [][]float64
	var b []float64
	for _, con := range p.eqs {
		aRows = append(aRows, denseRow(con.coeffs, n))
		b = append(b, con.rhs)
	}

	// 4) Convert to standard form and run the simplex.
	gMat := stack(gRows, n)
	aMat := stack(aRows, n)
	cNew, aNew, bNew := lp.Convert(c, gMat, h, aMat, b)
	_, xNew, err := lp.Simplex(cNew, aNew, bNew, cfg.Tolerance, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return nil, ErrInfeasible
		case errors.Is(err, lp.ErrUnbounded):
			return nil, ErrUnbounded
		default:
			return nil, fmt.Errorf("%w: %v", ErrNumeric, err)
		}
	}

	// 5) Recover original variables: the standard form splits x = x⁺ − x⁻,
	//    with slacks appended after the 2n split columns.
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = xNew[i] - xNew[n+i]
	}

	return &Solution{
		Objective: floats.Dot(p.obj, x),
		X:         x,
		Status:    StatusOptimal,
	}, nil
}

// denseRow expands a sparse coefficient map into a dense row of width n.
func denseRow(coeffs map[int]float64, n int) []float64 {
	row := make([]float64, n)
	for i, v := range coeffs {
		row[i] = v
	}

	return row
}

// stack concatenates rows into a dense matrix, or nil when empty (gonum's
// Convert accepts nil blocks).
func stack(rows [][]float64, n int) mat.Matrix {
	if len(rows) == 0 {
		return nil
	}
	data := make([]float64, 0, len(rows)*n)
	for _, r := range rows {
		data = append(data, r...)
	}

	return mat.NewDense(len(rows), n, data)
}
