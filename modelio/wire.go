// Wire representation shared by the JSON, YAML and gob codecs.
package modelio

import (
	"fmt"

	"github.com/Braden-Griebel/hippotools/model"
)

type wireMetabolite struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Formula     string `json:"formula,omitempty" yaml:"formula,omitempty"`
	Charge      int    `json:"charge,omitempty" yaml:"charge,omitempty"`
	Compartment string `json:"compartment,omitempty" yaml:"compartment,omitempty"`
}

type wireReaction struct {
	ID            string             `json:"id" yaml:"id"`
	Name          string             `json:"name,omitempty" yaml:"name,omitempty"`
	Subsystem     string             `json:"subsystem,omitempty" yaml:"subsystem,omitempty"`
	Metabolites   map[string]float64 `json:"metabolites" yaml:"metabolites"`
	LowerBound    float64            `json:"lower_bound" yaml:"lower_bound"`
	UpperBound    float64            `json:"upper_bound" yaml:"upper_bound"`
	GeneRule      string             `json:"gene_reaction_rule,omitempty" yaml:"gene_reaction_rule,omitempty"`
	ObjectiveCoef float64            `json:"objective_coefficient,omitempty" yaml:"objective_coefficient,omitempty"`
}

type wireGene struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

type wireModel struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name,omitempty" yaml:"name,omitempty"`
	Metabolites []wireMetabolite `json:"metabolites" yaml:"metabolites"`
	Reactions   []wireReaction   `json:"reactions" yaml:"reactions"`
	Genes       []wireGene       `json:"genes" yaml:"genes"`

	// ObjectiveSense is "max" or "min"; empty means max, matching the
	// cobra JSON convention of carrying only objective coefficients.
	ObjectiveSense string `json:"objective_sense,omitempty" yaml:"objective_sense,omitempty"`
}

// toWire flattens a model into its serializable form. Snapshot methods
// return sorted slices, so output is deterministic.
func toWire(m *model.Model) *wireModel {
	w := &wireModel{ID: m.ID(), Name: m.Name()}

	for _, met := range m.Metabolites() {
		w.Metabolites = append(w.Metabolites, wireMetabolite{
			ID: met.ID, Name: met.Name, Formula: met.Formula,
			Charge: met.Charge, Compartment: met.Compartment,
		})
	}

	objRxn, sense, err := m.Objective()
	if err != nil {
		objRxn = ""
	} else if sense == model.Minimize {
		w.ObjectiveSense = "min"
	}

	for _, rxn := range m.Reactions() {
		wr := wireReaction{
			ID: rxn.ID, Name: rxn.Name, Subsystem: rxn.Subsystem,
			Metabolites: rxn.Stoichiometry,
			LowerBound:  rxn.LowerBound, UpperBound: rxn.UpperBound,
			GeneRule: rxn.GPR.String(),
		}
		if rxn.ID == objRxn {
			wr.ObjectiveCoef = 1
		}
		w.Reactions = append(w.Reactions, wr)
	}

	for _, g := range m.Genes() {
		w.Genes = append(w.Genes, wireGene{ID: g.ID, Name: g.Name})
	}

	return w
}

// fromWire rebuilds a model. Reactions registering unknown metabolites is
// tolerated (AddReaction creates them), but declared metabolites come
// first so their annotations win.
func fromWire(w *wireModel) (*model.Model, error) {
	m := model.New(w.ID, model.WithName(w.Name))

	for _, wm := range w.Metabolites {
		met := &model.Metabolite{
			ID: wm.ID, Name: wm.Name, Formula: wm.Formula,
			Charge: wm.Charge, Compartment: wm.Compartment,
		}
		if err := m.AddMetabolite(met); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadModel, err)
		}
	}

	for _, wg := range w.Genes {
		if err := m.AddGene(&model.Gene{ID: wg.ID, Name: wg.Name}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadModel, err)
		}
	}

	objRxn := ""
	for _, wr := range w.Reactions {
		gpr, err := model.ParseGPR(wr.GeneRule)
		if err != nil {
			return nil, fmt.Errorf("%w: reaction %q: %v", ErrBadModel, wr.ID, err)
		}
		rxn := &model.Reaction{
			ID: wr.ID, Name: wr.Name, Subsystem: wr.Subsystem,
			Stoichiometry: wr.Metabolites,
			LowerBound:    wr.LowerBound, UpperBound: wr.UpperBound,
			GPR: gpr,
		}
		if err := m.AddReaction(rxn); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadModel, err)
		}
		// AddReaction widens all-zero bounds to the default box; a wire
		// reaction carrying explicit zeros is blocked on purpose.
		if wr.LowerBound == 0 && wr.UpperBound == 0 {
			if err := m.SetBounds(wr.ID, 0, 0); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadModel, err)
			}
		}
		if wr.ObjectiveCoef != 0 {
			objRxn = wr.ID
		}
	}

	if objRxn != "" {
		sense := model.Maximize
		if w.ObjectiveSense == "min" {
			sense = model.Minimize
		}
		if err := m.SetObjective(objRxn, sense); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadModel, err)
		}
	}

	return m, nil
}
