// Model lifecycle and query methods.
//
// Determinism: all snapshot methods return IDs sorted lexicographically
// ascending so that matrix exports and solver columns are stable.
package model

import (
	"fmt"
	"sort"
)

// ID returns the model identifier.
func (m *Model) ID() string { return m.id }

// Name returns the human-readable model name.
func (m *Model) Name() string { return m.name }

// AddMetabolite inserts a metabolite. Returns ErrEmptyID for an empty ID and
// ErrDuplicateID when a metabolite with the same ID already exists.
// Complexity: O(1)
func (m *Model) AddMetabolite(met *Metabolite) error {
	if met == nil || met.ID == "" {
		return ErrEmptyID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.metabolites[met.ID]; ok {
		return fmt.Errorf("%w: metabolite %q", ErrDuplicateID, met.ID)
	}
	m.metabolites[met.ID] = met

	return nil
}

// AddGene inserts a gene. Idempotent: re-adding an existing gene ID is a
// no-op so that GPR registration can add genes lazily.
// Complexity: O(1)
func (m *Model) AddGene(g *Gene) error {
	if g == nil || g.ID == "" {
		return ErrEmptyID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.genes[g.ID]; !ok {
		m.genes[g.ID] = g
	}

	return nil
}

// AddReaction inserts a reaction, registering any metabolites referenced by
// its stoichiometry that are not yet present and any genes referenced by its
// GPR rule. Bounds default to [-DefaultBound, DefaultBound] when both are
// zero. Returns ErrInvalidBounds when LowerBound > UpperBound.
// Complexity: O(S + G) for S stoichiometric entries and G GPR genes.
func (m *Model) AddReaction(r *Reaction) error {
	if r == nil || r.ID == "" {
		return ErrEmptyID
	}
	if r.LowerBound == 0 && r.UpperBound == 0 {
		r.LowerBound, r.UpperBound = -DefaultBound, DefaultBound
	}
	if r.LowerBound > r.UpperBound {
		return fmt.Errorf("%w: reaction %q [%g, %g]", ErrInvalidBounds, r.ID, r.LowerBound, r.UpperBound)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reactions[r.ID]; ok {
		return fmt.Errorf("%w: reaction %q", ErrDuplicateID, r.ID)
	}
	if r.Stoichiometry == nil {
		r.Stoichiometry = make(map[string]float64)
	}
	for metID := range r.Stoichiometry {
		if _, ok := m.metabolites[metID]; !ok {
			m.metabolites[metID] = &Metabolite{ID: metID}
		}
	}
	if r.GPR != nil {
		for _, geneID := range r.GPR.Genes() {
			if _, ok := m.genes[geneID]; !ok {
				m.genes[geneID] = &Gene{ID: geneID}
			}
		}
	}
	m.reactions[r.ID] = r

	return nil
}

// RemoveReaction deletes a reaction by ID.
// Returns ErrReactionNotFound when absent.
func (m *Model) RemoveReaction(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reactions[id]; !ok {
		return fmt.Errorf("%w: %q", ErrReactionNotFound, id)
	}
	delete(m.reactions, id)

	return nil
}

// RemoveMetabolite deletes a metabolite by ID and strips its coefficient
// from every reaction's stoichiometry.
// Returns ErrMetaboliteNotFound when absent.
// Complexity: O(R)
func (m *Model) RemoveMetabolite(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.metabolites[id]; !ok {
		return fmt.Errorf("%w: %q", ErrMetaboliteNotFound, id)
	}
	delete(m.metabolites, id)
	for _, r := range m.reactions {
		delete(r.Stoichiometry, id)
	}

	return nil
}

// RemoveGene deletes a gene by ID. GPR rules are not rewritten: a rule
// still naming the removed gene evaluates it as present, since rule
// evaluation consults knockout sets rather than model membership.
// Returns ErrGeneNotFound when absent.
func (m *Model) RemoveGene(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.genes[id]; !ok {
		return fmt.Errorf("%w: %q", ErrGeneNotFound, id)
	}
	delete(m.genes, id)

	return nil
}

// Reaction returns the reaction with the given ID.
func (m *Model) Reaction(id string) (*Reaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reactions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrReactionNotFound, id)
	}

	return r, nil
}

// Metabolite returns the metabolite with the given ID.
func (m *Model) Metabolite(id string) (*Metabolite, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	met, ok := m.metabolites[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMetaboliteNotFound, id)
	}

	return met, nil
}

// Gene returns the gene with the given ID.
func (m *Model) Gene(id string) (*Gene, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.genes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGeneNotFound, id)
	}

	return g, nil
}

// HasReaction reports whether a reaction with the given ID exists.
func (m *Model) HasReaction(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.reactions[id]

	return ok
}

// Reactions returns all reactions sorted by ID.
// Complexity: O(R log R)
func (m *Model) Reactions() []*Reaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Reaction, 0, len(m.reactions))
	for _, r := range m.reactions {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Metabolites returns all metabolites sorted by ID.
// Complexity: O(M log M)
func (m *Model) Metabolites() []*Metabolite {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Metabolite, 0, len(m.metabolites))
	for _, met := range m.metabolites {
		out = append(out, met)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Genes returns all genes sorted by ID.
// Complexity: O(G log G)
func (m *Model) Genes() []*Gene {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Gene, 0, len(m.genes))
	for _, g := range m.genes {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// SetBounds updates the flux bounds of a reaction under the model lock.
// Returns ErrReactionNotFound or ErrInvalidBounds.
func (m *Model) SetBounds(reactionID string, lower, upper float64) error {
	if lower > upper {
		return fmt.Errorf("%w: reaction %q [%g, %g]", ErrInvalidBounds, reactionID, lower, upper)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reactions[reactionID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrReactionNotFound, reactionID)
	}
	r.LowerBound, r.UpperBound = lower, upper

	return nil
}

// SetObjective selects the objective reaction and optimization sense.
// Returns ErrReactionNotFound when the reaction does not exist.
func (m *Model) SetObjective(reactionID string, sense ObjectiveSense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reactions[reactionID]; !ok {
		return fmt.Errorf("%w: %q", ErrReactionNotFound, reactionID)
	}
	m.objective = reactionID
	m.sense = sense

	return nil
}

// Objective returns the objective reaction ID and sense.
// Returns ErrNoObjective when unset, ErrReactionNotFound when the configured
// reaction no longer exists.
func (m *Model) Objective() (string, ObjectiveSense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.objective == "" {
		return "", Maximize, ErrNoObjective
	}
	if _, ok := m.reactions[m.objective]; !ok {
		return "", Maximize, fmt.Errorf("%w: objective %q", ErrReactionNotFound, m.objective)
	}

	return m.objective, m.sense, nil
}

// Clone returns a deep copy of the model. Reaction stoichiometry maps are
// copied; parsed GPR trees are shared (they are immutable after parse).
// Complexity: O(M + R·S + G)
func (m *Model) Clone() *Model {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := &Model{
		id:          m.id,
		name:        m.name,
		metabolites: make(map[string]*Metabolite, len(m.metabolites)),
		reactions:   make(map[string]*Reaction, len(m.reactions)),
		genes:       make(map[string]*Gene, len(m.genes)),
		objective:   m.objective,
		sense:       m.sense,
	}
	for id, met := range m.metabolites {
		cp := *met
		out.metabolites[id] = &cp
	}
	for id, g := range m.genes {
		cp := *g
		out.genes[id] = &cp
	}
	for id, r := range m.reactions {
		cp := *r
		cp.Stoichiometry = make(map[string]float64, len(r.Stoichiometry))
		for metID, coef := range r.Stoichiometry {
			cp.Stoichiometry[metID] = coef
		}
		out.reactions[id] = &cp
	}

	return out
}

// DisabledByKnockout returns the IDs (sorted) of reactions whose GPR rule
// evaluates to false when every gene in knockouts is removed. Reactions
// without a GPR rule are never disabled.
// Complexity: O(R·|rule|)
func (m *Model) DisabledByKnockout(knockouts ...string) []string {
	ko := make(map[string]bool, len(knockouts))
	for _, g := range knockouts {
		ko[g] = true
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for id, r := range m.reactions {
		if r.GPR != nil && !r.GPR.Evaluate(ko) {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}
