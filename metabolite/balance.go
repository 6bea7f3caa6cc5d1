package metabolite

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Braden-Griebel/hippotools/model"
)

// ErrNilModel indicates a nil model argument.
var ErrNilModel = errors.New("metabolite: model is nil")

// balanceTol is the slack below which a residual counts as zero.
const balanceTol = 1e-9

// Imbalance is the residual of one reaction's balance check: what the
// reaction creates out of nothing (positive) or destroys (negative).
type Imbalance struct {
	// Reaction is the reaction ID.
	Reaction string

	// Elements holds the per-element residual; empty when mass balances.
	Elements Composition

	// Charge is the charge residual.
	Charge float64
}

// Balanced reports whether both mass and charge balance.
func (im *Imbalance) Balanced() bool {
	return im.Elements.IsZero(balanceTol) && math.Abs(im.Charge) < balanceTol
}

// CheckReaction computes the mass and charge residual of one reaction.
// Metabolite formulas are parsed on the fly; a malformed formula surfaces
// as ErrBadFormula wrapped with the metabolite ID.
func CheckReaction(m *model.Model, reactionID string) (*Imbalance, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	rxn, err := m.Reaction(reactionID)
	if err != nil {
		return nil, err
	}

	im := &Imbalance{Reaction: reactionID, Elements: make(Composition)}
	for metID, coeff := range rxn.Stoichiometry {
		met, err := m.Metabolite(metID)
		if err != nil {
			return nil, err
		}
		comp, err := ParseFormula(met.Formula)
		if err != nil {
			return nil, fmt.Errorf("metabolite %q: %w", metID, err)
		}
		im.Elements.AddScaled(comp, coeff)
		im.Charge += coeff * float64(met.Charge)
	}
	for el, n := range im.Elements {
		if math.Abs(n) < balanceTol {
			delete(im.Elements, el)
		}
	}

	return im, nil
}

// IsBoundary reports whether a reaction crosses the system boundary: it
// touches exactly one metabolite, so it can never balance.
func IsBoundary(rxn *model.Reaction) bool {
	return len(rxn.Stoichiometry) == 1
}

// CheckModel checks every non-boundary reaction and returns the unbalanced
// ones sorted by reaction ID.
func CheckModel(m *model.Model) ([]*Imbalance, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	var out []*Imbalance
	for _, rxn := range m.Reactions() {
		if IsBoundary(rxn) {
			continue
		}
		im, err := CheckReaction(m, rxn.ID)
		if err != nil {
			return nil, err
		}
		if !im.Balanced() {
			out = append(out, im)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reaction < out[j].Reaction })

	return out, nil
}
