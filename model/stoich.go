// Stoichiometric matrix export.
package model

import "gonum.org/v1/gonum/mat"

// Stoichiometry returns the stoichiometric matrix S of the model as an
// M×R dense matrix, where M is the number of metabolites (rows, sorted by
// ID) and R the number of reactions (columns, sorted by ID).
// S[i][j] is the coefficient of metabolite i in reaction j.
//
// The returned orderings are the contract for every downstream consumer:
// fba builds Sv = 0 over them, sampling validates against them.
// Complexity: O(M·R) space, O(M log M + R log R + Σ|stoich|) time.
func (m *Model) Stoichiometry() (s *mat.Dense, metIDs, rxnIDs []string) {
	mets := m.Metabolites()
	rxns := m.Reactions()
	metIDs = make([]string, len(mets))
	rowOf := make(map[string]int, len(mets))
	for i, met := range mets {
		metIDs[i] = met.ID
		rowOf[met.ID] = i
	}
	rxnIDs = make([]string, len(rxns))

	// mat.NewDense panics on zero dimensions; keep the degenerate case safe.
	if len(mets) == 0 || len(rxns) == 0 {
		for j, r := range rxns {
			rxnIDs[j] = r.ID
		}
		return nil, metIDs, rxnIDs
	}

	s = mat.NewDense(len(mets), len(rxns), nil)
	for j, r := range rxns {
		rxnIDs[j] = r.ID
		for metID, coef := range r.Stoichiometry {
			s.Set(rowOf[metID], j, coef)
		}
	}

	return s, metIDs, rxnIDs
}

// Bounds returns the lower and upper flux bound vectors aligned with the
// reaction ordering of Stoichiometry.
// Complexity: O(R log R)
func (m *Model) Bounds() (lower, upper []float64) {
	rxns := m.Reactions()
	lower = make([]float64, len(rxns))
	upper = make([]float64, len(rxns))
	for i, r := range rxns {
		lower[i], upper[i] = r.LowerBound, r.UpperBound
	}

	return lower, upper
}
