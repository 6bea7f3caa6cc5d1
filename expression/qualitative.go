// Trinarization of expression into qualitative weights.
package expression

import (
	"fmt"
	"sort"

	"github.com/Braden-Griebel/hippotools/model"
)

// Proportion holds the low and high percentile thresholds used for
// trinarization, both in (0, 1) with Low < High.
type Proportion struct {
	Low  float64
	High float64
}

// SingleProportion builds the symmetric thresholds {p, 1−p}: the bottom p
// of genes are called lowly expressed and the top p highly expressed.
func SingleProportion(p float64) Proportion {
	return Proportion{Low: p, High: 1 - p}
}

func (p Proportion) validate() error {
	if p.Low <= 0 || p.High >= 1 || p.Low >= p.High {
		return fmt.Errorf("%w: low=%g high=%g", ErrBadProportion, p.Low, p.High)
	}

	return nil
}

// ToQualitative aggregates the table to one value per gene (agg, Median
// when nil) and trinarizes: genes at or below the Low percentile map to −1,
// at or above the High percentile to +1, the rest to 0.
//
// The result is a gene-weight series suitable for GeneToReactionWeights.
// Complexity: O(S·G + G log G)
func (t *Table) ToQualitative(prop Proportion, agg AggFunc) (map[string]float64, error) {
	if err := prop.validate(); err != nil {
		return nil, err
	}
	series := t.Aggregate(agg)

	// Percentile cutoffs over the aggregated distribution.
	values := make([]float64, 0, len(series))
	for _, v := range series {
		values = append(values, v)
	}
	sort.Float64s(values)
	lowCut := quantile(prop.Low, values)
	highCut := quantile(prop.High, values)

	out := make(map[string]float64, len(series))
	for g, v := range series {
		switch {
		case v <= lowCut:
			out[g] = -1
		case v >= highCut:
			out[g] = 1
		default:
			out[g] = 0
		}
	}

	return out, nil
}

// GeneToReactionWeights folds qualitative gene weights through every
// reaction's GPR rule: AND branches take the minimum (a complex is only as
// expressed as its scarcest subunit), OR branches the maximum (any isozyme
// suffices). Reactions without a GPR rule get weight 0.
//
// The result maps reaction ID → weight, the input format for imat.
// Complexity: O(R·|rule|)
func GeneToReactionWeights(m *model.Model, geneWeights map[string]float64) map[string]float64 {
	rxns := m.Reactions()
	out := make(map[string]float64, len(rxns))
	for _, r := range rxns {
		out[r.ID] = r.GPR.EvalWeights(geneWeights, 0)
	}

	return out
}
