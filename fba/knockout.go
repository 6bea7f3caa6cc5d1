// Gene and reaction knockouts.
package fba

import (
	"context"

	"github.com/Braden-Griebel/hippotools/model"
)

// KnockoutGene removes a gene from the model (all reactions whose GPR rule
// no longer evaluates true get zero bounds) and returns the perturbed FBA
// optimum. The input model is never mutated.
//
// Returns model.ErrGeneNotFound for an unknown gene and solver.ErrInfeasible
// when the knockout leaves no feasible flux.
// Complexity: one model clone plus one LP solve.
func KnockoutGene(ctx context.Context, m *model.Model, geneID string, opts ...Option) (*Solution, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if _, err := m.Gene(geneID); err != nil {
		return nil, err
	}

	ko := m.Clone()
	for _, rxnID := range ko.DisabledByKnockout(geneID) {
		if err := ko.SetBounds(rxnID, 0, 0); err != nil {
			return nil, err
		}
	}

	return Optimize(ctx, ko, opts...)
}

// KnockoutGenes removes a set of genes jointly; reactions disabled by the
// combination (including multi-gene complexes) get zero bounds.
func KnockoutGenes(ctx context.Context, m *model.Model, geneIDs []string, opts ...Option) (*Solution, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	for _, id := range geneIDs {
		if _, err := m.Gene(id); err != nil {
			return nil, err
		}
	}

	ko := m.Clone()
	for _, rxnID := range ko.DisabledByKnockout(geneIDs...) {
		if err := ko.SetBounds(rxnID, 0, 0); err != nil {
			return nil, err
		}
	}

	return Optimize(ctx, ko, opts...)
}

// KnockoutReaction zeroes the bounds of one reaction and returns the
// perturbed FBA optimum. The input model is never mutated.
func KnockoutReaction(ctx context.Context, m *model.Model, reactionID string, opts ...Option) (*Solution, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	ko := m.Clone()
	if err := ko.SetBounds(reactionID, 0, 0); err != nil {
		return nil, err
	}

	return Optimize(ctx, ko, opts...)
}
