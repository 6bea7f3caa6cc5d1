// Three-valued logic for consensus essentiality calls.
package diversity

// Tri is a three-valued truth value. The zero value is TriFalse.
type Tri int8

const (
	// TriFalse marks a definite negative call.
	TriFalse Tri = iota

	// TriTrue marks a definite positive call.
	TriTrue

	// TriNA marks an undetermined call, typically a failed solve.
	TriNA
)

// String implements fmt.Stringer.
func (t Tri) String() string {
	switch t {
	case TriTrue:
		return "true"
	case TriNA:
		return "NA"
	default:
		return "false"
	}
}

// AggFunc folds a column of three-valued calls into one.
type AggFunc func(vals []Tri, ignoreNA bool) Tri

// AggAll is three-valued conjunction: any false wins, otherwise any NA
// taints the result. With ignoreNA, NA entries are dropped first.
func AggAll(vals []Tri, ignoreNA bool) Tri {
	sawNA := false
	for _, v := range vals {
		switch v {
		case TriFalse:
			return TriFalse
		case TriNA:
			sawNA = true
		}
	}
	if sawNA && !ignoreNA {
		return TriNA
	}

	return TriTrue
}

// AggAny is three-valued disjunction: any true wins, otherwise any NA
// taints the result. With ignoreNA, NA entries are dropped first.
func AggAny(vals []Tri, ignoreNA bool) Tri {
	sawNA := false
	for _, v := range vals {
		switch v {
		case TriTrue:
			return TriTrue
		case TriNA:
			sawNA = true
		}
	}
	if sawNA && !ignoreNA {
		return TriNA
	}

	return TriFalse
}

// AggMajority returns true when definite trues outnumber everything else,
// false when definite falses match or outnumber everything else, and NA
// when the NA entries could swing the vote either way. With ignoreNA, NA
// entries are dropped first and ties resolve to false.
func AggMajority(vals []Tri, ignoreNA bool) Tri {
	var nTrue, nFalse, nNA int
	for _, v := range vals {
		switch v {
		case TriTrue:
			nTrue++
		case TriFalse:
			nFalse++
		default:
			nNA++
		}
	}
	if ignoreNA {
		nNA = 0
	}
	switch {
	case nTrue > nFalse+nNA:
		return TriTrue
	case nFalse >= nTrue+nNA:
		return TriFalse
	default:
		return TriNA
	}
}
