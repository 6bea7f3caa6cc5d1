// SBML subset codec. Covers what the rest of the toolkit consumes:
// species with formula and charge, reactions with flux bounds and gene
// associations, and one flux objective. Kinetic laws, units, annotations
// and the full fbc namespace machinery are out of scope.
package modelio

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/Braden-Griebel/hippotools/model"
)

type sbmlDoc struct {
	XMLName xml.Name  `xml:"sbml"`
	Level   int       `xml:"level,attr"`
	Version int       `xml:"version,attr"`
	Model   sbmlModel `xml:"model"`
}

type sbmlModel struct {
	ID         string          `xml:"id,attr"`
	Name       string          `xml:"name,attr,omitempty"`
	Species    []sbmlSpecies   `xml:"listOfSpecies>species"`
	Reactions  []sbmlReaction  `xml:"listOfReactions>reaction"`
	Objectives []sbmlObjective `xml:"listOfObjectives>objective"`
}

type sbmlSpecies struct {
	ID          string `xml:"id,attr"`
	Name        string `xml:"name,attr,omitempty"`
	Compartment string `xml:"compartment,attr,omitempty"`
	Formula     string `xml:"chemicalFormula,attr,omitempty"`
	Charge      int    `xml:"charge,attr,omitempty"`
}

type sbmlReaction struct {
	ID         string     `xml:"id,attr"`
	Name       string     `xml:"name,attr,omitempty"`
	Subsystem  string     `xml:"subsystem,attr,omitempty"`
	LowerBound float64    `xml:"lowerFluxBound,attr"`
	UpperBound float64    `xml:"upperFluxBound,attr"`
	GeneRule   string     `xml:"geneAssociation,attr,omitempty"`
	Reactants  []sbmlSpec `xml:"listOfReactants>speciesReference"`
	Products   []sbmlSpec `xml:"listOfProducts>speciesReference"`
}

type sbmlSpec struct {
	Species       string  `xml:"species,attr"`
	Stoichiometry float64 `xml:"stoichiometry,attr"`
}

type sbmlObjective struct {
	Type     string         `xml:"type,attr"`
	FluxObjs []sbmlFluxObj  `xml:"fluxObjective"`
}

type sbmlFluxObj struct {
	Reaction    string  `xml:"reaction,attr"`
	Coefficient float64 `xml:"coefficient,attr"`
}

func readSBML(r io.Reader) (*model.Model, error) {
	var doc sbmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadModel, err)
	}

	// Reuse the wire conversion: translate the SBML shape into it.
	w := &wireModel{ID: doc.Model.ID, Name: doc.Model.Name}
	for _, sp := range doc.Model.Species {
		w.Metabolites = append(w.Metabolites, wireMetabolite{
			ID: sp.ID, Name: sp.Name, Formula: sp.Formula,
			Charge: sp.Charge, Compartment: sp.Compartment,
		})
	}
	for _, rxn := range doc.Model.Reactions {
		stoich := make(map[string]float64, len(rxn.Reactants)+len(rxn.Products))
		for _, sr := range rxn.Reactants {
			stoich[sr.Species] -= sr.Stoichiometry
		}
		for _, sr := range rxn.Products {
			stoich[sr.Species] += sr.Stoichiometry
		}
		w.Reactions = append(w.Reactions, wireReaction{
			ID: rxn.ID, Name: rxn.Name, Subsystem: rxn.Subsystem,
			Metabolites: stoich,
			LowerBound:  rxn.LowerBound, UpperBound: rxn.UpperBound,
			GeneRule: rxn.GeneRule,
		})
	}
	for _, obj := range doc.Model.Objectives {
		if obj.Type == "minimize" {
			w.ObjectiveSense = "min"
		}
		for _, fo := range obj.FluxObjs {
			for i := range w.Reactions {
				if w.Reactions[i].ID == fo.Reaction {
					w.Reactions[i].ObjectiveCoef = fo.Coefficient
				}
			}
		}
	}

	return fromWire(w)
}

func writeSBML(w io.Writer, m *model.Model) error {
	wire := toWire(m)

	doc := sbmlDoc{Level: 3, Version: 1, Model: sbmlModel{ID: wire.ID, Name: wire.Name}}
	for _, met := range wire.Metabolites {
		doc.Model.Species = append(doc.Model.Species, sbmlSpecies{
			ID: met.ID, Name: met.Name, Compartment: met.Compartment,
			Formula: met.Formula, Charge: met.Charge,
		})
	}
	for _, rxn := range wire.Reactions {
		sr := sbmlReaction{
			ID: rxn.ID, Name: rxn.Name, Subsystem: rxn.Subsystem,
			LowerBound: rxn.LowerBound, UpperBound: rxn.UpperBound,
			GeneRule: rxn.GeneRule,
		}
		// Deterministic order: wire metabolite maps are written via the
		// sorted species list.
		for _, met := range wire.Metabolites {
			coeff, ok := rxn.Metabolites[met.ID]
			if !ok || coeff == 0 {
				continue
			}
			if coeff < 0 {
				sr.Reactants = append(sr.Reactants, sbmlSpec{Species: met.ID, Stoichiometry: -coeff})
			} else {
				sr.Products = append(sr.Products, sbmlSpec{Species: met.ID, Stoichiometry: coeff})
			}
		}
		doc.Model.Reactions = append(doc.Model.Reactions, sr)

		if rxn.ObjectiveCoef != 0 {
			objType := "maximize"
			if wire.ObjectiveSense == "min" {
				objType = "minimize"
			}
			doc.Model.Objectives = append(doc.Model.Objectives, sbmlObjective{
				Type:     objType,
				FluxObjs: []sbmlFluxObj{{Reaction: rxn.ID, Coefficient: rxn.ObjectiveCoef}},
			})
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
