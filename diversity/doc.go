// Package diversity enumerates alternative expression-consistent flux
// states and aggregates them into consensus calls.
//
// A single iMAT optimum is rarely unique: many indicator patterns reach
// the same score. The Enumerator walks through them:
//
//   - Icut      - re-optimize the iMAT score, excluding every pattern seen
//     so far with an integer cut.
//   - MaxDist   - maximize the Hamming distance to the previous pattern,
//     staying within tolerance of the iMAT optimum.
//   - Diversity - maximize the summed distance to all previous patterns.
//
// Patterns are compared on the indicator binaries, so two solutions count
// as distinct only when they disagree on which weighted reactions are
// active or suppressed.
//
// Downstream, each enumerated state yields a context-specific model whose
// gene essentiality can be probed by knockout. The Consensus type collects
// those per-iteration calls as three-valued columns (essential, not
// essential, undetermined) and folds them with an aggregation strategy:
// All, Any, or Majority, each with Kleene semantics for undetermined
// entries.
//
// Errors: ErrExhausted when no further distinct pattern exists,
// ErrBadEnumMethod and ErrBadModelMethod for unparseable method names,
// ErrMethodConflict and ErrUnsupportedMethod for contradictory or
// unimplemented bound-enforcement combinations.
package diversity
