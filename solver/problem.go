// Problem construction: variables, constraints, objective.
package solver

import (
	"fmt"
)

// linConstraint is a sparse linear constraint: sum(coeffs[i]·x[i]) (op) rhs,
// where op is "=" for equalities and "≤" for inequalities.
type linConstraint struct {
	coeffs map[int]float64
	rhs    float64
}

// Problem is a mutable LP/MILP description.
//
// Variables are addressed by dense index in insertion order; names are
// unique and can be resolved back to indices with Index. The zero value is
// not usable; construct with NewProblem.
type Problem struct {
	names   []string
	indexOf map[string]int

	lower  []float64
	upper  []float64
	binary []bool

	obj   []float64
	sense Sense

	eqs   []linConstraint // a·x = b
	ineqs []linConstraint // a·x ≤ b
}

// NewProblem creates an empty minimization problem.
func NewProblem() *Problem {
	return &Problem{indexOf: make(map[string]int)}
}

// AddVariable appends a bounded continuous variable and returns its index.
// Duplicate names panic: variable registration is programmer-controlled.
func (p *Problem) AddVariable(name string, lower, upper float64) int {
	if _, ok := p.indexOf[name]; ok {
		panic(fmt.Sprintf("solver: duplicate variable %q", name))
	}
	idx := len(p.names)
	p.names = append(p.names, name)
	p.indexOf[name] = idx
	p.lower = append(p.lower, lower)
	p.upper = append(p.upper, upper)
	p.binary = append(p.binary, false)
	p.obj = append(p.obj, 0)

	return idx
}

// AddBinary appends a {0,1} variable and returns its index.
func (p *Problem) AddBinary(name string) int {
	idx := p.AddVariable(name, 0, 1)
	p.binary[idx] = true

	return idx
}

// NumVariables returns the number of variables.
func (p *Problem) NumVariables() int { return len(p.names) }

// Name returns the name of variable idx.
func (p *Problem) Name(idx int) string { return p.names[idx] }

// Index resolves a variable name to its index.
// Returns ErrUnknownVariable when absent.
func (p *Problem) Index(name string) (int, error) {
	idx, ok := p.indexOf[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return idx, nil
}

// IsBinary reports whether variable idx is binary.
func (p *Problem) IsBinary(idx int) bool { return p.binary[idx] }

// Bounds returns the bounds of variable idx.
func (p *Problem) Bounds(idx int) (lower, upper float64) {
	return p.lower[idx], p.upper[idx]
}

// SetBounds overwrites the bounds of variable idx. Used by branch-and-bound
// to fix binaries and by enumeration to pin reaction states.
func (p *Problem) SetBounds(idx int, lower, upper float64) {
	p.lower[idx] = lower
	p.upper[idx] = upper
}

// SetObjectiveCoeff sets the objective coefficient for variable idx.
func (p *Problem) SetObjectiveCoeff(idx int, c float64) { p.obj[idx] = c }

// ClearObjective zeroes every objective coefficient. Enumeration methods
// swap objectives between iterations.
func (p *Problem) ClearObjective() {
	for i := range p.obj {
		p.obj[i] = 0
	}
}

// SetSense sets the optimization direction.
func (p *Problem) SetSense(sense Sense) { p.sense = sense }

// AddEqual adds the constraint sum(coeffs[i]·x[i]) = rhs.
func (p *Problem) AddEqual(coeffs map[int]float64, rhs float64) {
	p.eqs = append(p.eqs, linConstraint{coeffs: copyCoeffs(coeffs), rhs: rhs})
}

// AddLessEqual adds the constraint sum(coeffs[i]·x[i]) ≤ rhs.
func (p *Problem) AddLessEqual(coeffs map[int]float64, rhs float64) {
	p.ineqs = append(p.ineqs, linConstraint{coeffs: copyCoeffs(coeffs), rhs: rhs})
}

// AddGreaterEqual adds the constraint sum(coeffs[i]·x[i]) ≥ rhs by negating
// it into ≤ form.
func (p *Problem) AddGreaterEqual(coeffs map[int]float64, rhs float64) {
	neg := make(map[int]float64, len(coeffs))
	for i, c := range coeffs {
		neg[i] = -c
	}
	p.ineqs = append(p.ineqs, linConstraint{coeffs: neg, rhs: -rhs})
}

// Clone returns an independent deep copy of the problem. Enumeration
// iterators clone once and accumulate cuts on the copy.
func (p *Problem) Clone() *Problem {
	out := &Problem{
		names:   append([]string(nil), p.names...),
		indexOf: make(map[string]int, len(p.indexOf)),
		lower:   append([]float64(nil), p.lower...),
		upper:   append([]float64(nil), p.upper...),
		binary:  append([]bool(nil), p.binary...),
		obj:     append([]float64(nil), p.obj...),
		sense:   p.sense,
		eqs:     make([]linConstraint, len(p.eqs)),
		ineqs:   make([]linConstraint, len(p.ineqs)),
	}
	for name, idx := range p.indexOf {
		out.indexOf[name] = idx
	}
	for i, c := range p.eqs {
		out.eqs[i] = linConstraint{coeffs: copyCoeffs(c.coeffs), rhs: c.rhs}
	}
	for i, c := range p.ineqs {
		out.ineqs[i] = linConstraint{coeffs: copyCoeffs(c.coeffs), rhs: c.rhs}
	}

	return out
}

func copyCoeffs(in map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(in))
	for i, c := range in {
		out[i] = c
	}

	return out
}
