// Consensus gene essentiality across enumerated context-specific models.
package diversity

import (
	"context"
	"errors"

	"github.com/Braden-Griebel/hippotools/fba"
	"github.com/Braden-Griebel/hippotools/imat"
	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/solver"
)

// DefaultEssentialCutoff calls a gene essential when its knockout drops
// the objective below this fraction of the wild-type optimum.
const DefaultEssentialCutoff = 0.01

// Consensus collects per-iteration three-valued gene calls, one column per
// enumerated solution, and folds them into a single call per gene.
type Consensus struct {
	genes   []string
	geneIdx map[string]int
	cols    [][]Tri
}

// NewConsensus creates an empty frame over a fixed gene set. Gene order is
// preserved as given.
func NewConsensus(genes []string) *Consensus {
	c := &Consensus{
		genes:   append([]string(nil), genes...),
		geneIdx: make(map[string]int, len(genes)),
	}
	for i, g := range c.genes {
		c.geneIdx[g] = i
	}

	return c
}

// AddIteration appends one column of calls. Genes missing from vals are
// recorded as TriNA; genes outside the frame are ignored.
func (c *Consensus) AddIteration(vals map[string]Tri) {
	col := make([]Tri, len(c.genes))
	for i, g := range c.genes {
		v, ok := vals[g]
		if !ok {
			v = TriNA
		}
		col[i] = v
	}
	c.cols = append(c.cols, col)
}

// Genes returns the frame's gene ordering.
func (c *Consensus) Genes() []string { return append([]string(nil), c.genes...) }

// Iterations returns the number of columns added so far.
func (c *Consensus) Iterations() int { return len(c.cols) }

// Row returns all calls for one gene across iterations, or nil for a gene
// outside the frame.
func (c *Consensus) Row(gene string) []Tri {
	i, ok := c.geneIdx[gene]
	if !ok {
		return nil
	}
	row := make([]Tri, len(c.cols))
	for k, col := range c.cols {
		row[k] = col[i]
	}

	return row
}

// Aggregate folds every gene's row with the given strategy.
func (c *Consensus) Aggregate(agg AggFunc, ignoreNA bool) map[string]Tri {
	out := make(map[string]Tri, len(c.genes))
	for _, g := range c.genes {
		out[g] = agg(c.Row(g), ignoreNA)
	}

	return out
}

// EssentialGenes probes every gene of m by single knockout. A gene is
// essential when the knockout optimum falls below cutoff times the
// wild-type optimum; an infeasible knockout is essential too. Solver
// failures other than infeasibility yield TriNA for that gene.
//
// Complexity: one LP per gene plus one wild-type solve.
func EssentialGenes(ctx context.Context, m *model.Model, cutoff float64) (map[string]Tri, error) {
	if cutoff <= 0 {
		cutoff = DefaultEssentialCutoff
	}
	wild, err := fba.Optimize(ctx, m)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Tri, len(m.Genes()))
	for _, g := range m.Genes() {
		ko, err := fba.KnockoutGene(ctx, m, g.ID)
		switch {
		case errors.Is(err, solver.ErrInfeasible):
			out[g.ID] = TriTrue
		case err != nil:
			if ctx.Err() != nil {
				return nil, err
			}
			out[g.ID] = TriNA
		case ko.Objective < cutoff*wild.Objective:
			out[g.ID] = TriTrue
		default:
			out[g.ID] = TriFalse
		}
	}

	return out, nil
}

// ConsensusEssentiality enumerates alternative iMAT solutions, derives a
// context-specific model from each with the given enforcement mode, and
// records per-gene knockout essentiality as one Consensus column per
// solution. Enumeration ending early with ErrExhausted is not an error;
// the frame simply has fewer columns.
func ConsensusEssentiality(ctx context.Context, m *model.Model, weights map[string]float64, method Method, enforce imat.Enforce, cutoff float64, imatOpts []imat.Option, opts ...EnumOption) (*Consensus, error) {
	enum, err := NewEnumerator(ctx, m, weights, method, imatOpts, opts...)
	if err != nil {
		return nil, err
	}

	genes := make([]string, 0, len(m.Genes()))
	for _, g := range m.Genes() {
		genes = append(genes, g.ID)
	}
	frame := NewConsensus(genes)

	for {
		res, err := enum.Next(ctx)
		if errors.Is(err, ErrExhausted) {
			break
		}
		if err != nil {
			return nil, err
		}

		ctxModel, err := imat.ApplyResult(m, res, enforce, imatOpts...)
		if err != nil {
			return nil, err
		}
		calls, err := EssentialGenes(ctx, ctxModel, cutoff)
		if err != nil {
			return nil, err
		}
		frame.AddIteration(calls)
	}

	return frame, nil
}
