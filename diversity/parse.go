// Method-name parsing for the enumeration and bound-enforcement surfaces.
package diversity

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Braden-Griebel/hippotools/imat"
)

// Sentinel errors for method parsing.
var (
	// ErrBadEnumMethod indicates an enumeration method name that did not parse.
	ErrBadEnumMethod = errors.New("diversity: could not parse enumeration method")

	// ErrBadModelMethod indicates a bound-enforcement name that did not parse.
	ErrBadModelMethod = errors.New("diversity: could not parse model method")

	// ErrMethodConflict indicates contradictory enforcement terms.
	ErrMethodConflict = errors.New("diversity: cannot enforce active and inactive simultaneously")

	// ErrUnsupportedMethod indicates an enforcement combination that is
	// recognized but not implemented.
	ErrUnsupportedMethod = errors.New("diversity: enforcement combination not implemented")
)

// Method selects the enumeration strategy.
type Method int

const (
	// Diversity maximizes the summed distance to all previous patterns.
	Diversity Method = iota

	// MaxDist maximizes the distance to the most recent pattern.
	MaxDist

	// Icut re-optimizes the iMAT score under integer cuts.
	Icut
)

// ParseEnumMethod resolves an enumeration method name by prefix:
// "div..." selects Diversity, "icut..." Icut, "max..." MaxDist.
func ParseEnumMethod(name string) (Method, error) {
	switch lower := strings.ToLower(strings.TrimSpace(name)); {
	case strings.HasPrefix(lower, "div"):
		return Diversity, nil
	case strings.HasPrefix(lower, "icut"):
		return Icut, nil
	case strings.HasPrefix(lower, "max"):
		return MaxDist, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadEnumMethod, name)
	}
}

var (
	inactiveRe = regexp.MustCompile(`(?i)inact[ive]*`)
	activeRe   = regexp.MustCompile(`(?i)act[ive]*`)
	offRe      = regexp.MustCompile(`(?i)off`)
	enforceRe  = regexp.MustCompile(`(?i)enf[orce]*`)
	bothRe     = regexp.MustCompile(`(?i)both`)
)

// ParseModelMethod resolves a free-form bound-enforcement description like
// "enforce active" or "enforce-inactive-off" into an imat.Enforce mode.
//
// Returns ErrMethodConflict for active plus inactive, ErrUnsupportedMethod
// for the off combinations that have no enforcement mode, and
// ErrBadModelMethod otherwise.
func ParseModelMethod(name string) (imat.Enforce, error) {
	inactive := inactiveRe.MatchString(name)
	// Strip the inactive terms first so their "act" substring cannot
	// masquerade as an active flag.
	active := activeRe.MatchString(inactiveRe.ReplaceAllString(name, ""))
	off := offRe.MatchString(name)
	both := bothRe.MatchString(name)

	if !enforceRe.MatchString(name) {
		return 0, fmt.Errorf("%w: %q", ErrBadModelMethod, name)
	}
	switch {
	case both && off:
		return 0, fmt.Errorf("%w: both and off (%q)", ErrUnsupportedMethod, name)
	case both:
		return imat.EnforceBoth, nil
	case active && inactive:
		return 0, fmt.Errorf("%w: %q", ErrMethodConflict, name)
	case active && off:
		return 0, fmt.Errorf("%w: active and off (%q)", ErrUnsupportedMethod, name)
	case active:
		return imat.EnforceActive, nil
	case inactive && off:
		return imat.EnforceInactiveOff, nil
	case inactive:
		return imat.EnforceInactive, nil
	case off:
		return imat.EnforceOff, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadModelMethod, name)
	}
}
