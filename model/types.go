// Package model: entity types, sentinel errors, and construction options.
package model

import (
	"errors"
	"sync"
)

// Sentinel errors for core model operations.
var (
	// ErrEmptyID indicates that the provided entity has an empty ID.
	ErrEmptyID = errors.New("model: entity ID is empty")

	// ErrDuplicateID indicates that an entity with the same ID already exists.
	ErrDuplicateID = errors.New("model: duplicate entity ID")

	// ErrMetaboliteNotFound indicates an operation referenced a non-existent metabolite.
	ErrMetaboliteNotFound = errors.New("model: metabolite not found")

	// ErrReactionNotFound indicates an operation referenced a non-existent reaction.
	ErrReactionNotFound = errors.New("model: reaction not found")

	// ErrGeneNotFound indicates an operation referenced a non-existent gene.
	ErrGeneNotFound = errors.New("model: gene not found")

	// ErrNoObjective indicates the model has no objective reaction set.
	ErrNoObjective = errors.New("model: no objective reaction set")

	// ErrInvalidBounds indicates a lower bound greater than the upper bound.
	ErrInvalidBounds = errors.New("model: lower bound exceeds upper bound")

	// ErrBadGPR indicates a gene-protein-reaction rule that failed to parse.
	ErrBadGPR = errors.New("model: malformed GPR rule")
)

// DefaultBound is the magnitude used for unconstrained flux bounds.
// Reactions added without explicit bounds span [-DefaultBound, DefaultBound]
// when reversible and [0, DefaultBound] otherwise.
const DefaultBound = 1000.0

// Metabolite represents a chemical species in the model.
//
// ID uniquely identifies the metabolite within its Model. Formula and Charge
// feed mass/charge balance checks; Compartment is a free-form label such as
// "c" (cytosol) or "e" (extracellular).
type Metabolite struct {
	// ID is the unique identifier for this metabolite.
	ID string

	// Name is a human-readable description.
	Name string

	// Formula is the chemical formula, e.g. "C6H12O6". May be empty.
	Formula string

	// Charge is the net charge of the species.
	Charge int

	// Compartment labels the cellular compartment the species resides in.
	Compartment string
}

// Gene represents a gene that participates in GPR rules.
type Gene struct {
	// ID is the unique identifier for this gene.
	ID string

	// Name is a human-readable gene name.
	Name string
}

// Reaction represents a biochemical conversion with flux bounds.
//
// Stoichiometry maps metabolite IDs to signed coefficients: negative for
// substrates, positive for products. Flux through the reaction is bounded
// by [LowerBound, UpperBound]; a negative lower bound marks reversibility.
type Reaction struct {
	// ID uniquely identifies this reaction in the Model.
	ID string

	// Name is a human-readable description.
	Name string

	// Subsystem groups the reaction into a pathway, e.g. "Glycolysis".
	Subsystem string

	// Stoichiometry maps metabolite ID → signed coefficient.
	Stoichiometry map[string]float64

	// LowerBound and UpperBound bound the reaction flux.
	LowerBound float64
	UpperBound float64

	// GPR is the parsed gene-protein-reaction rule, or nil when the
	// reaction has no gene association.
	GPR *GPR
}

// Reversible reports whether the reaction can carry negative flux.
func (r *Reaction) Reversible() bool { return r.LowerBound < 0 }

// ObjectiveSense selects the optimization direction for the model objective.
type ObjectiveSense int

const (
	// Maximize the objective reaction flux (the FBA default).
	Maximize ObjectiveSense = iota

	// Minimize the objective reaction flux.
	Minimize
)

// Model is the core in-memory metabolic model.
//
// mu guards all maps and the objective. Snapshots (Reactions, Metabolites,
// Genes) return ID-sorted slices so downstream matrix exports and solver
// columns are reproducible run to run.
type Model struct {
	mu sync.RWMutex // guards everything below

	id   string
	name string

	metabolites map[string]*Metabolite // metabolite ID → Metabolite
	reactions   map[string]*Reaction   // reaction ID → Reaction
	genes       map[string]*Gene       // gene ID → Gene

	objective string         // objective reaction ID ("" = unset)
	sense     ObjectiveSense // optimization direction
}

// ModelOption configures a Model at construction time.
type ModelOption func(*Model)

// WithName sets a human-readable model name.
func WithName(name string) ModelOption {
	return func(m *Model) { m.name = name }
}

// WithObjective sets the objective reaction ID and sense. The reaction does
// not need to exist yet; Objective() validates existence on read.
func WithObjective(reactionID string, sense ObjectiveSense) ModelOption {
	return func(m *Model) {
		m.objective = reactionID
		m.sense = sense
	}
}

// New creates an empty Model with the given ID and options.
// Complexity: O(1)
func New(id string, opts ...ModelOption) *Model {
	m := &Model{
		id:          id,
		metabolites: make(map[string]*Metabolite),
		reactions:   make(map[string]*Reaction),
		genes:       make(map[string]*Gene),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}
