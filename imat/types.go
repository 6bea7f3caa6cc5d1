// Package imat: defaults, options, result types, sentinel errors.
package imat

import "errors"

// Default parameter values for iMAT and its consumers.
const (
	// DefaultEpsilon is the activation threshold: a high-weight reaction
	// counts as active when |v| ≥ DefaultEpsilon.
	DefaultEpsilon = 1e-2

	// DefaultThreshold is the activity threshold: a low-weight reaction
	// counts as inactive when |v| ≤ DefaultThreshold.
	DefaultThreshold = 1e-5

	// DefaultObjTol is the relative tolerance around the iMAT optimum used
	// by ConstrainModel and the enumeration methods.
	DefaultObjTol = 1e-2
)

// Sentinel errors for iMAT.
var (
	// ErrNoWeights indicates a weight set with no nonzero entries.
	ErrNoWeights = errors.New("imat: no nonzero reaction weights")

	// ErrUnknownReaction indicates a weight for a reaction the model lacks.
	ErrUnknownReaction = errors.New("imat: weight references unknown reaction")
)

// Options configures the iMAT formulation and solve.
type Options struct {
	// Epsilon is the activation threshold for high-weight reactions.
	Epsilon float64

	// Threshold is the activity threshold for low-weight reactions.
	Threshold float64

	// ObjTol is the relative optimality tolerance for ConstrainModel.
	ObjTol float64

	// Tolerance is the solver feasibility tolerance.
	Tolerance float64

	// NodeLimit caps the branch-and-bound tree (0 = solver default).
	NodeLimit int
}

// Option is a functional option for iMAT entry points.
type Option func(*Options)

// WithEpsilon sets the activation threshold. Must be positive.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithThreshold sets the activity threshold. Must be positive.
func WithThreshold(thr float64) Option {
	return func(o *Options) {
		if thr > 0 {
			o.Threshold = thr
		}
	}
}

// WithObjTol sets the relative optimality tolerance. Must be in [0, 1).
func WithObjTol(tol float64) Option {
	return func(o *Options) {
		if tol >= 0 && tol < 1 {
			o.ObjTol = tol
		}
	}
}

// WithTolerance sets the solver feasibility tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// WithNodeLimit caps the branch-and-bound node count.
func WithNodeLimit(n int) Option {
	return func(o *Options) { o.NodeLimit = n }
}

// DefaultOptions returns the standard iMAT parameter defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:   DefaultEpsilon,
		Threshold: DefaultThreshold,
		ObjTol:    DefaultObjTol,
		Tolerance: 1e-9,
	}
}

// Indicator records the binary variables attached to one weighted reaction
// inside a Formulation. Indices are variable positions in the Problem;
// -1 marks an absent binary.
type Indicator struct {
	// Reaction is the reaction ID.
	Reaction string

	// Weight is the reaction's qualitative weight (+1 or −1).
	Weight float64

	// Forward and Reverse are the activation binaries of a high-weight
	// reaction (flux ≥ ε forward, ≤ −ε reverse).
	Forward int
	Reverse int

	// Zero is the suppression binary of a low-weight reaction
	// (|flux| ≤ threshold).
	Zero int
}

// Result is an iMAT solve outcome.
type Result struct {
	// Objective is the iMAT score: satisfied high + low reactions.
	Objective float64

	// Fluxes maps reaction ID → flux at the optimum.
	Fluxes map[string]float64

	// Active marks high-weight reactions called active.
	Active map[string]bool

	// Inactive marks low-weight reactions called inactive.
	Inactive map[string]bool

	// X is the raw solution vector in the Formulation's variable space,
	// including the indicator binaries. Enumeration methods branch from it.
	X []float64
}
