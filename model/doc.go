// Package model defines the central Model, Reaction, Metabolite, and Gene
// types, and provides thread-safe primitives for building, querying, and
// cloning genome-scale metabolic models.
//
// A Model is a collection of metabolites, reactions carrying stoichiometry
// and flux bounds, and genes linked to reactions through boolean
// gene–protein–reaction (GPR) rules. All Model APIs use a single
// sync.RWMutex internally, so a model can be queried and mutated across
// goroutines.
//
// The package also provides:
//
//   - GPR rule parsing and evaluation: rules such as "(g1 and g2) or g3"
//     are parsed once into an expression tree; Evaluate answers whether the
//     reaction remains catalyzed under a gene knockout set, and EvalWeights
//     folds per-gene numeric scores through the rule (AND → min, OR → max).
//   - Stoichiometric matrix export: Stoichiometry returns the S matrix as a
//     gonum *mat.Dense together with the metabolite (row) and reaction
//     (column) orderings, which are sorted by ID for reproducibility.
//
// Errors (sentinel):
//
//	ErrEmptyID             - an entity ID is the empty string.
//	ErrDuplicateID         - an entity with the same ID already exists.
//	ErrMetaboliteNotFound  - requested metabolite does not exist.
//	ErrReactionNotFound    - requested reaction does not exist.
//	ErrGeneNotFound        - requested gene does not exist.
//	ErrNoObjective         - the model has no objective reaction set.
//	ErrInvalidBounds       - lower bound exceeds upper bound.
//	ErrBadGPR              - a GPR rule failed to parse.
package model
