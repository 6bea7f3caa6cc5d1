// Package fba: result types, sentinel errors, and options.
package fba

import "errors"

// Sentinel errors for flux balance analysis.
var (
	// ErrNilModel indicates a nil model was supplied.
	ErrNilModel = errors.New("fba: model is nil")

	// ErrNoReactions indicates the model has no reactions.
	ErrNoReactions = errors.New("fba: model has no reactions")
)

// Solution is the result of a flux balance optimization.
type Solution struct {
	// Objective is the optimal objective reaction flux.
	Objective float64

	// Fluxes maps reaction ID → flux value at the optimum.
	Fluxes map[string]float64
}

// Range is a per-reaction flux interval from flux variability analysis.
type Range struct {
	Min float64
	Max float64
}

// Options configures FBA entry points.
type Options struct {
	// Tolerance is the solver feasibility tolerance.
	Tolerance float64

	// Fraction is the fraction of the optimum enforced by FluxVariability
	// and Parsimonious. Must be in (0, 1].
	Fraction float64

	// Workers bounds the FluxVariability worker pool. Zero means
	// runtime.NumCPU.
	Workers int
}

// Option is a functional option for FBA entry points.
type Option func(*Options)

// WithTolerance sets the solver feasibility tolerance. Must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// WithFraction sets the fraction of the optimum that FluxVariability and
// Parsimonious hold the objective at. Values outside (0, 1] are ignored.
func WithFraction(f float64) Option {
	return func(o *Options) {
		if f > 0 && f <= 1 {
			o.Fraction = f
		}
	}
}

// WithWorkers bounds the FluxVariability worker pool.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// DefaultOptions returns production-safe defaults: solver default
// tolerance, the full optimum, one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Tolerance: 1e-9,
		Fraction:  1.0,
	}
}
