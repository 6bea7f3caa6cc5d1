// iMAT score recomputation and validation from raw flux vectors.
package imat

import "math"

// Objective computes the iMAT score of a flux vector against a weight set:
// the number of high-weight reactions carrying |v| ≥ epsilon plus the
// number of low-weight reactions carrying |v| < epsilon. Weighted reactions
// missing from fluxes contribute nothing.
// Complexity: O(|weights|)
func Objective(fluxes, weights map[string]float64, epsilon float64) float64 {
	highActive := 0
	lowInactive := 0
	for rxnID, w := range weights {
		v, ok := fluxes[rxnID]
		if !ok {
			continue
		}
		switch {
		case w > 0:
			if v > epsilon || v < -epsilon {
				highActive++
			}
		case w < 0:
			if math.Abs(v) < epsilon {
				lowInactive++
			}
		}
	}

	return float64(highActive + lowInactive)
}

// ValidateFlux reports whether a flux vector is consistent with an iMAT
// objective value: its recomputed score must reach at least
// imatObj·(1 − objTol).
func ValidateFlux(fluxes, weights map[string]float64, imatObj, epsilon, objTol float64) bool {
	return Objective(fluxes, weights, epsilon) >= imatObj*(1-objTol)
}
