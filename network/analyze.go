package network

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/Braden-Griebel/hippotools/model"
)

// Components returns the connected components of a view as sorted name
// slices, largest component first.
func (g *Graph) Components() [][]string {
	comps := topo.ConnectedComponents(g.g)
	out := make([][]string, 0, len(comps))
	for _, comp := range comps {
		names := make([]string, 0, len(comp))
		for _, n := range comp {
			names = append(names, g.nameOf[n.ID()])
		}
		sort.Strings(names)
		out = append(out, names)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i][0] < out[j][0]
	})

	return out
}

// DegreeStats summarizes a view's degree distribution.
type DegreeStats struct {
	Min  int
	Max  int
	Mean float64
}

// Degrees returns every node's degree keyed by name.
func (g *Graph) Degrees() map[string]int {
	out := make(map[string]int, len(g.idOf))
	for name, id := range g.idOf {
		out[name] = g.g.From(id).Len()
	}

	return out
}

// Stats computes min, max and mean degree. The zero value returns for an
// empty view.
func (g *Graph) Stats() DegreeStats {
	if len(g.idOf) == 0 {
		return DegreeStats{}
	}
	var s DegreeStats
	first := true
	total := 0
	for _, id := range g.idOf {
		d := g.g.From(id).Len()
		if first || d < s.Min {
			s.Min = d
		}
		if first || d > s.Max {
			s.Max = d
		}
		first = false
		total += d
	}
	s.Mean = float64(total) / float64(len(g.idOf))

	return s
}

// DeadEndMetabolites finds metabolites that are only produced or only
// consumed, so no steady-state flux can pass through them. A reversible
// reaction counts as both producer and consumer of its participants.
// The result is sorted.
func DeadEndMetabolites(m *model.Model, opts ...Option) ([]string, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	cfg := buildOptions(opts)

	produced := make(map[string]bool)
	consumed := make(map[string]bool)
	for _, rxn := range m.Reactions() {
		rev := rxn.Reversible()
		for metID, coeff := range rxn.Stoichiometry {
			if coeff == 0 || cfg.Excluded[metID] {
				continue
			}
			if coeff > 0 || rev {
				produced[metID] = true
			}
			if coeff < 0 || rev {
				consumed[metID] = true
			}
		}
	}

	var out []string
	for _, met := range m.Metabolites() {
		if cfg.Excluded[met.ID] {
			continue
		}
		if produced[met.ID] != consumed[met.ID] {
			out = append(out, met.ID)
		}
	}
	sort.Strings(out)

	return out, nil
}

// ChokePointReactions finds reactions that are the sole producer or sole
// consumer of some metabolite; knocking one out necessarily silences that
// metabolite's turnover. A reversible reaction counts on both sides.
// The result is sorted.
func ChokePointReactions(m *model.Model, opts ...Option) ([]string, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	cfg := buildOptions(opts)

	producers := make(map[string][]string)
	consumers := make(map[string][]string)
	for _, rxn := range m.Reactions() {
		rev := rxn.Reversible()
		for metID, coeff := range rxn.Stoichiometry {
			if coeff == 0 || cfg.Excluded[metID] {
				continue
			}
			if coeff > 0 || rev {
				producers[metID] = append(producers[metID], rxn.ID)
			}
			if coeff < 0 || rev {
				consumers[metID] = append(consumers[metID], rxn.ID)
			}
		}
	}

	choke := make(map[string]bool)
	for _, rxns := range producers {
		if len(rxns) == 1 {
			choke[rxns[0]] = true
		}
	}
	for _, rxns := range consumers {
		if len(rxns) == 1 {
			choke[rxns[0]] = true
		}
	}

	out := make([]string, 0, len(choke))
	for id := range choke {
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}
