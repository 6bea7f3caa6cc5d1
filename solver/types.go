// Package solver: Problem type, sentinel errors, and solve options.
package solver

import (
	"errors"
	"math"
)

// Sentinel errors returned by the solver.
var (
	// ErrInfeasible indicates that no point satisfies all constraints.
	ErrInfeasible = errors.New("solver: problem is infeasible")

	// ErrUnbounded indicates the objective can be improved without limit.
	ErrUnbounded = errors.New("solver: problem is unbounded")

	// ErrNoVariables indicates Solve was called on a problem with no variables.
	ErrNoVariables = errors.New("solver: problem has no variables")

	// ErrNodeLimit indicates branch-and-bound hit its node budget before
	// proving optimality.
	ErrNodeLimit = errors.New("solver: branch-and-bound node limit reached")

	// ErrNumeric indicates the underlying simplex failed for numerical
	// reasons (singular basis, ill-conditioning).
	ErrNumeric = errors.New("solver: numerical failure in simplex")

	// ErrUnknownVariable indicates a lookup by name matched no variable.
	ErrUnknownVariable = errors.New("solver: unknown variable")

	// ErrThresholdTooTight indicates an activation threshold below what the
	// solver tolerance can resolve.
	ErrThresholdTooTight = errors.New("solver: threshold below solver resolution")
)

// Sense selects the optimization direction.
type Sense int

const (
	// Minimize the objective (the internal canonical direction).
	Minimize Sense = iota

	// Maximize the objective.
	Maximize
)

// Status describes how a solution terminated.
type Status int

const (
	// StatusOptimal means an optimal solution was found.
	StatusOptimal Status = iota

	// StatusNodeLimit means the incumbent is feasible but optimality was
	// not proven before the node budget ran out.
	StatusNodeLimit
)

// Default numerical parameters.
const (
	// DefaultTolerance is the simplex feasibility/optimality tolerance.
	DefaultTolerance = 1e-9

	// DefaultIntTol is the integrality tolerance for binary variables.
	DefaultIntTol = 1e-6

	// DefaultNodeLimit caps the branch-and-bound search tree.
	DefaultNodeLimit = 100000

	// thresholdSafety is the factor by which activation thresholds must
	// exceed the solver tolerance to be trustworthy.
	thresholdSafety = 10.0
)

// Options configures Solve.
type Options struct {
	// Tolerance is the simplex feasibility tolerance.
	Tolerance float64

	// IntTol is the integrality tolerance for branch-and-bound.
	IntTol float64

	// NodeLimit caps the number of branch-and-bound nodes explored.
	NodeLimit int
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithTolerance sets the simplex feasibility tolerance. Must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// WithIntTol sets the integrality tolerance for binary variables.
func WithIntTol(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.IntTol = tol
		}
	}
}

// WithNodeLimit caps the branch-and-bound node count. Zero or negative
// means unlimited.
func WithNodeLimit(n int) Option {
	return func(o *Options) { o.NodeLimit = n }
}

// DefaultOptions returns production-safe solve defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		IntTol:    DefaultIntTol,
		NodeLimit: DefaultNodeLimit,
	}
}

// Solution holds a solve result.
type Solution struct {
	// Objective is the objective value in the problem's own sense.
	Objective float64

	// X holds one value per variable, indexed as in the Problem.
	X []float64

	// Status reports how the solve terminated.
	Status Status
}

// Value returns the solution value of the named variable.
func (s *Solution) Value(p *Problem, name string) (float64, error) {
	idx, err := p.Index(name)
	if err != nil {
		return math.NaN(), err
	}

	return s.X[idx], nil
}

// ValidateThresholds checks that the activation thresholds used to encode
// indicator semantics sit comfortably above the solver tolerance. Both
// epsilon (high-expression activation) and threshold (general activity)
// must be at least thresholdSafety times tol, or the big-M encodings
// degenerate into numerical noise.
func ValidateThresholds(tol, epsilon, threshold float64) error {
	if epsilon < tol*thresholdSafety {
		return ErrThresholdTooTight
	}
	if threshold < tol*thresholdSafety {
		return ErrThresholdTooTight
	}

	return nil
}
