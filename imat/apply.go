// Applying an iMAT result back onto a model as hard bounds.
package imat

import (
	"errors"
	"math"

	"github.com/Braden-Griebel/hippotools/model"
)

// ErrBadEnforce indicates an unknown Enforce value.
var ErrBadEnforce = errors.New("imat: unknown enforce method")

// Enforce selects which part of an iMAT result becomes hard bounds on the
// derived context-specific model.
type Enforce int

const (
	// EnforceActive pins every active high-weight reaction to carry at
	// least ε flux in its solution direction.
	EnforceActive Enforce = iota

	// EnforceInactive pins every inactive low-weight reaction within the
	// activity threshold band.
	EnforceInactive

	// EnforceOff pins every inactive low-weight reaction to exactly zero.
	EnforceOff

	// EnforceInactiveOff pins inactive low-weight reactions to exactly
	// zero and every other low-weight reaction within the threshold band.
	EnforceInactiveOff

	// EnforceBoth combines EnforceActive and EnforceInactive. This is the
	// integer-free restriction of the iMAT solution: the resulting model
	// has a purely continuous feasible set and can be sampled.
	EnforceBoth
)

// ApplyResult derives a context-specific model from an iMAT result by
// converting indicator states into flux bounds. The input model is cloned,
// never mutated.
//
// Returns ErrBadEnforce for an unknown method and model.ErrInvalidBounds
// when an enforcement collides with existing bounds (for example forcing
// forward flux through a reaction bounded negative).
// Complexity: O(R) plus the clone.
func ApplyResult(m *model.Model, res *Result, method Enforce, opts ...Option) (*model.Model, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctxModel := m.Clone()
	switch method {
	case EnforceActive:
		if err := enforceActive(ctxModel, res, cfg); err != nil {
			return nil, err
		}
	case EnforceInactive:
		if err := enforceInactive(ctxModel, res, cfg.Threshold, -1); err != nil {
			return nil, err
		}
	case EnforceOff:
		if err := enforceInactive(ctxModel, res, 0, -1); err != nil {
			return nil, err
		}
	case EnforceInactiveOff:
		if err := enforceInactive(ctxModel, res, 0, cfg.Threshold); err != nil {
			return nil, err
		}
	case EnforceBoth:
		if err := enforceActive(ctxModel, res, cfg); err != nil {
			return nil, err
		}
		if err := enforceInactive(ctxModel, res, cfg.Threshold, -1); err != nil {
			return nil, err
		}
	default:
		return nil, ErrBadEnforce
	}

	return ctxModel, nil
}

// enforceActive pins active high-weight reactions on, in the direction the
// solution carried them.
func enforceActive(m *model.Model, res *Result, cfg Options) error {
	for rxnID, active := range res.Active {
		if !active {
			continue
		}
		r, err := m.Reaction(rxnID)
		if err != nil {
			return err
		}
		if res.Fluxes[rxnID] >= 0 {
			if err := m.SetBounds(rxnID, math.Max(r.LowerBound, cfg.Epsilon), r.UpperBound); err != nil {
				return err
			}
		} else {
			if err := m.SetBounds(rxnID, r.LowerBound, math.Min(r.UpperBound, -cfg.Epsilon)); err != nil {
				return err
			}
		}
	}

	return nil
}

// enforceInactive clamps inactive low-weight reactions into [−band, band].
// With restBand ≥ 0, low-weight reactions the solution left unsatisfied are
// clamped into [−restBand, restBand] as well.
func enforceInactive(m *model.Model, res *Result, band, restBand float64) error {
	for rxnID, inactive := range res.Inactive {
		r, err := m.Reaction(rxnID)
		if err != nil {
			return err
		}
		switch {
		case inactive:
			if err := m.SetBounds(rxnID, math.Max(r.LowerBound, -band), math.Min(r.UpperBound, band)); err != nil {
				return err
			}
		case restBand >= 0:
			if err := m.SetBounds(rxnID, math.Max(r.LowerBound, -restBand), math.Min(r.UpperBound, restBand)); err != nil {
				return err
			}
		}
	}

	return nil
}
