// Package sampling: method parsing, options, sample container.
package sampling

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for flux sampling.
var (
	// ErrBadMethod indicates a sampler name that did not parse.
	ErrBadMethod = errors.New("sampling: could not parse method")

	// ErrBadSampleCount indicates a non-positive sample count.
	ErrBadSampleCount = errors.New("sampling: sample count must be positive")

	// ErrDegenerate indicates a polytope with no interior to walk in.
	ErrDegenerate = errors.New("sampling: flux polytope is degenerate")

	// ErrUnknownReaction indicates a column lookup for an unknown reaction.
	ErrUnknownReaction = errors.New("sampling: unknown reaction")
)

// Method selects the sampling algorithm.
type Method int

const (
	// ACHR is the artificial centering hit-and-run sampler.
	ACHR Method = iota

	// OptGP runs parallel ACHR chains with interleaved output.
	OptGP
)

// ParseMethod resolves a method name. Accepted spellings mirror the
// command-line surface: "a", "achr", "artificial centering hit-and-run"
// (with or without a trailing "sampler") and "o", "opt", "optg", "optgp".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a", "achr", "artificial centering hit-and-run", "artificial centering hit-and-run sampler":
		return ACHR, nil
	case "o", "opt", "optg", "optgp":
		return OptGP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadMethod, name)
	}
}

// Options configures the samplers.
type Options struct {
	// Thinning keeps every Thinning-th chain step (default 100).
	Thinning int

	// Processes is the chain count for OptGP (default 4).
	Processes int

	// Seed seeds the random source; 0 derives a seed from the clock.
	Seed int64

	// Tolerance is the solver tolerance for warmup solves.
	Tolerance float64

	// ValidationTol is the slack allowed when validating samples against
	// bounds and mass balance.
	ValidationTol float64
}

// Option is a functional option for the samplers.
type Option func(*Options)

// WithThinning sets the thinning factor. Must be positive.
func WithThinning(k int) Option {
	return func(o *Options) {
		if k > 0 {
			o.Thinning = k
		}
	}
}

// WithProcesses sets the OptGP chain count. Must be positive.
func WithProcesses(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Processes = n
		}
	}
}

// WithSeed fixes the random seed for reproducible chains.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithValidationTol sets the validation slack.
func WithValidationTol(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.ValidationTol = tol
		}
	}
}

// DefaultOptions returns production-safe sampler defaults.
func DefaultOptions() Options {
	return Options{
		Thinning:      100,
		Processes:     4,
		Tolerance:     1e-9,
		ValidationTol: 1e-6,
	}
}

// Samples is a set of flux distributions: one row per sample, one column
// per reaction in RxnIDs order.
type Samples struct {
	// RxnIDs is the column ordering, sorted by reaction ID.
	RxnIDs []string

	// Data is the n × len(RxnIDs) sample matrix.
	Data *mat.Dense

	// Dropped counts raw samples discarded by validation.
	Dropped int
}

// Len returns the number of samples.
func (s *Samples) Len() int {
	if s.Data == nil {
		return 0
	}
	n, _ := s.Data.Dims()

	return n
}

// Flux returns sample i as a reaction → flux map.
func (s *Samples) Flux(i int) map[string]float64 {
	out := make(map[string]float64, len(s.RxnIDs))
	for j, id := range s.RxnIDs {
		out[id] = s.Data.At(i, j)
	}

	return out
}

// Column returns all sampled fluxes of one reaction.
// Returns ErrUnknownReaction when the reaction is not a column.
func (s *Samples) Column(rxnID string) ([]float64, error) {
	for j, id := range s.RxnIDs {
		if id == rxnID {
			n, _ := s.Data.Dims()
			out := make([]float64, n)
			for i := 0; i < n; i++ {
				out[i] = s.Data.At(i, j)
			}
			return out, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownReaction, rxnID)
}
