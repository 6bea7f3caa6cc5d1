package network

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/Braden-Griebel/hippotools/model"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNilModel indicates a nil model argument.
	ErrNilModel = errors.New("network: model is nil")

	// ErrUnknownNode indicates a lookup for a name absent from the graph.
	ErrUnknownNode = errors.New("network: unknown node")
)

// Options configures graph construction.
type Options struct {
	// Excluded lists metabolite IDs left out of every view.
	Excluded map[string]bool
}

// Option is a functional option for graph constructors.
type Option func(*Options)

// WithExcludedMetabolites drops the named metabolites from the view.
func WithExcludedMetabolites(ids ...string) Option {
	return func(o *Options) {
		for _, id := range ids {
			o.Excluded[id] = true
		}
	}
}

func buildOptions(opts []Option) Options {
	cfg := Options{Excluded: make(map[string]bool)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Graph is an undirected view with stable name ↔ node mappings.
type Graph struct {
	g      *simple.UndirectedGraph
	idOf   map[string]int64
	nameOf map[int64]string
}

func newGraph() *Graph {
	return &Graph{
		g:      simple.NewUndirectedGraph(),
		idOf:   make(map[string]int64),
		nameOf: make(map[int64]string),
	}
}

// node returns the graph node for a name, creating it on first use.
func (g *Graph) node(name string) simple.Node {
	if id, ok := g.idOf[name]; ok {
		return simple.Node(id)
	}
	id := int64(len(g.idOf))
	g.idOf[name] = id
	g.nameOf[id] = name
	n := simple.Node(id)
	g.g.AddNode(n)

	return n
}

// connect adds an undirected edge between two names, skipping self loops.
func (g *Graph) connect(a, b string) {
	if a == b {
		return
	}
	g.g.SetEdge(g.g.NewEdge(g.node(a), g.node(b)))
}

// Has reports whether a name is a node of the view.
func (g *Graph) Has(name string) bool {
	_, ok := g.idOf[name]

	return ok
}

// Order returns the node count.
func (g *Graph) Order() int { return len(g.idOf) }

// Degree returns a node's degree. Returns ErrUnknownNode for an absent name.
func (g *Graph) Degree(name string) (int, error) {
	id, ok := g.idOf[name]
	if !ok {
		return 0, ErrUnknownNode
	}

	return g.g.From(id).Len(), nil
}

// Neighbors returns a node's adjacent names, sorted.
// Returns ErrUnknownNode for an absent name.
func (g *Graph) Neighbors(name string) ([]string, error) {
	id, ok := g.idOf[name]
	if !ok {
		return nil, ErrUnknownNode
	}
	it := g.g.From(id)
	out := make([]string, 0, it.Len())
	for it.Next() {
		out = append(out, g.nameOf[it.Node().ID()])
	}
	sort.Strings(out)

	return out, nil
}

// Bipartite is the full metabolite–reaction incidence view.
type Bipartite struct {
	*Graph

	// isReaction marks the reaction node class.
	isReaction map[string]bool
}

// NewBipartite builds the bipartite view: one node per metabolite and per
// reaction, an edge for every nonzero stoichiometric coefficient.
func NewBipartite(m *model.Model, opts ...Option) (*Bipartite, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	cfg := buildOptions(opts)

	b := &Bipartite{Graph: newGraph(), isReaction: make(map[string]bool)}
	for _, rxn := range m.Reactions() {
		b.node(rxn.ID)
		b.isReaction[rxn.ID] = true
		for metID := range rxn.Stoichiometry {
			if cfg.Excluded[metID] {
				continue
			}
			b.connect(rxn.ID, metID)
		}
	}

	return b, nil
}

// IsReaction reports whether a node belongs to the reaction class.
func (b *Bipartite) IsReaction(name string) bool { return b.isReaction[name] }

// NewMetaboliteGraph builds the metabolite projection: metabolites are
// adjacent when some reaction consumes one and produces the other.
func NewMetaboliteGraph(m *model.Model, opts ...Option) (*Graph, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	cfg := buildOptions(opts)

	g := newGraph()
	for _, met := range m.Metabolites() {
		if !cfg.Excluded[met.ID] {
			g.node(met.ID)
		}
	}
	for _, rxn := range m.Reactions() {
		var consumed, produced []string
		for metID, coeff := range rxn.Stoichiometry {
			if cfg.Excluded[metID] {
				continue
			}
			if coeff < 0 {
				consumed = append(consumed, metID)
			} else if coeff > 0 {
				produced = append(produced, metID)
			}
		}
		for _, c := range consumed {
			for _, p := range produced {
				g.connect(c, p)
			}
		}
	}

	return g, nil
}

// NewReactionGraph builds the reaction projection: reactions are adjacent
// when they share a metabolite.
func NewReactionGraph(m *model.Model, opts ...Option) (*Graph, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	cfg := buildOptions(opts)

	g := newGraph()
	byMet := make(map[string][]string)
	for _, rxn := range m.Reactions() {
		g.node(rxn.ID)
		for metID := range rxn.Stoichiometry {
			if cfg.Excluded[metID] {
				continue
			}
			byMet[metID] = append(byMet[metID], rxn.ID)
		}
	}
	for _, rxns := range byMet {
		for i := 0; i < len(rxns); i++ {
			for j := i + 1; j < len(rxns); j++ {
				g.connect(rxns[i], rxns[j])
			}
		}
	}

	return g, nil
}
