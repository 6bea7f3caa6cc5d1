// Package sampling draws flux distributions uniformly-ish from the
// steady-state polytope {v : S·v = 0, lb ≤ v ≤ ub} of a metabolic model.
//
// Two samplers are provided:
//
//   - ACHR: artificial centering hit-and-run. Warmup points come from
//     minimizing and maximizing every reaction flux; each step picks a
//     random warmup point, walks along its direction from the running
//     center, and draws a uniform step within the exact feasible interval
//     given by the flux bounds. Directions are differences of feasible
//     points, so mass balance is preserved by construction.
//   - OptGP-style: several independent ACHR chains across goroutines with
//     interleaved output, trading warmup cost for wall-clock speed.
//
// Thinning keeps every k-th step (default 100) to reduce autocorrelation.
//
// Every sampler validates its output: samples violating bounds or mass
// balance beyond the validation tolerance are dropped and counted. iMAT
// models carry integer activation variables and cannot be sampled
// directly; SampleIMAT first fixes the indicators at their optimal values
// (imat.ApplyResult with EnforceBoth), leaving a purely continuous
// polytope.
//
// Errors (sentinel):
//
//	ErrBadMethod      - sampler name did not parse.
//	ErrBadSampleCount - requested a non-positive number of samples.
//	ErrDegenerate     - the polytope has no interior to walk in.
package sampling
