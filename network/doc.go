// Package network builds graph views of a metabolic model and answers
// structural questions about them.
//
// Three views are offered, all on gonum graphs:
//
//   - Bipartite  - metabolites and reactions as two node classes, an edge
//     for every stoichiometric participation.
//   - Metabolite - metabolites only, adjacent when some reaction converts
//     one into the other.
//   - Reaction   - reactions only, adjacent when they share a metabolite.
//
// Hub currency metabolites (ATP, water, protons) connect almost
// everything and drown structural signal; exclude them per view with
// WithExcludedMetabolites.
//
// On top of the views: connected components, degree statistics, dead-end
// metabolite detection and choke-point reactions.
package network
