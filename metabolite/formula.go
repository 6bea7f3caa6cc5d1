// Package metabolite handles chemical formulas: parsing, composition
// arithmetic, molecular weight, and mass/charge balance checks over a
// model's reactions.
package metabolite

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for formula handling.
var (
	// ErrBadFormula indicates a formula string that did not parse.
	ErrBadFormula = errors.New("metabolite: could not parse formula")

	// ErrUnknownElement indicates an element missing from the atomic mass
	// table.
	ErrUnknownElement = errors.New("metabolite: unknown element")
)

// elementRe matches one element symbol with an optional count, integral or
// fractional ("C6", "H", "Fe0.5").
var elementRe = regexp.MustCompile(`([A-Z][a-z]?)([0-9]*\.?[0-9]*)`)

// Composition maps element symbols to atom counts. Counts may be
// fractional: lumped biomass species use averaged formulas.
type Composition map[string]float64

// ParseFormula parses a linear chemical formula like "C6H12O6" into a
// Composition. The empty string parses to an empty Composition; grouping
// parentheses are not supported.
func ParseFormula(formula string) (Composition, error) {
	formula = strings.TrimSpace(formula)
	comp := make(Composition)
	if formula == "" {
		return comp, nil
	}

	consumed := 0
	for _, match := range elementRe.FindAllStringSubmatchIndex(formula, -1) {
		if match[0] != consumed {
			return nil, fmt.Errorf("%w: %q", ErrBadFormula, formula)
		}
		consumed = match[1]

		symbol := formula[match[2]:match[3]]
		count := 1.0
		if match[4] != match[5] {
			var err error
			count, err = strconv.ParseFloat(formula[match[4]:match[5]], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadFormula, formula)
			}
		}
		comp[symbol] += count
	}
	if consumed != len(formula) {
		return nil, fmt.Errorf("%w: %q", ErrBadFormula, formula)
	}

	return comp, nil
}

// Clone returns an independent copy.
func (c Composition) Clone() Composition {
	out := make(Composition, len(c))
	for el, n := range c {
		out[el] = n
	}

	return out
}

// AddScaled accumulates k times another composition into c.
func (c Composition) AddScaled(other Composition, k float64) {
	for el, n := range other {
		c[el] += k * n
	}
}

// IsZero reports whether every count is zero within tol.
func (c Composition) IsZero(tol float64) bool {
	for _, n := range c {
		if math.Abs(n) > tol {
			return false
		}
	}

	return true
}

// String renders the composition in Hill-adjacent order: C first, H
// second, remaining elements alphabetically. Zero counts are dropped.
func (c Composition) String() string {
	elements := make([]string, 0, len(c))
	for el, n := range c {
		if n != 0 && el != "C" && el != "H" {
			elements = append(elements, el)
		}
	}
	sort.Strings(elements)
	if c["H"] != 0 {
		elements = append([]string{"H"}, elements...)
	}
	if c["C"] != 0 {
		elements = append([]string{"C"}, elements...)
	}

	var b strings.Builder
	for _, el := range elements {
		b.WriteString(el)
		n := c[el]
		if n != 1 {
			b.WriteString(strconv.FormatFloat(n, 'f', -1, 64))
		}
	}

	return b.String()
}

// Weight returns the molecular weight in g/mol.
// Returns ErrUnknownElement for elements outside the mass table.
func (c Composition) Weight() (float64, error) {
	var w float64
	for el, n := range c {
		mass, ok := atomicMass[el]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownElement, el)
		}
		w += mass * n
	}

	return w, nil
}

// atomicMass lists standard atomic weights (g/mol) for the elements that
// occur in metabolic models.
var atomicMass = map[string]float64{
	"H": 1.008, "He": 4.0026,
	"Li": 6.94, "Be": 9.0122, "B": 10.81, "C": 12.011, "N": 14.007,
	"O": 15.999, "F": 18.998, "Ne": 20.180,
	"Na": 22.990, "Mg": 24.305, "Al": 26.982, "Si": 28.085, "P": 30.974,
	"S": 32.06, "Cl": 35.45, "Ar": 39.948,
	"K": 39.098, "Ca": 40.078, "Cr": 51.996, "Mn": 54.938, "Fe": 55.845,
	"Co": 58.933, "Ni": 58.693, "Cu": 63.546, "Zn": 65.38,
	"As": 74.922, "Se": 78.971, "Br": 79.904, "Mo": 95.95, "Cd": 112.41,
	"I": 126.90, "W": 183.84, "Hg": 200.59,
}
