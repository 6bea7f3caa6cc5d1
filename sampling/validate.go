package sampling

import (
	"gonum.org/v1/gonum/mat"
)

// validate drops samples violating the box bounds or mass balance beyond
// tol and returns the surviving rows plus the drop count.
func validate(w *warmup, raw *mat.Dense, tol float64) (*mat.Dense, int) {
	n, dim := raw.Dims()
	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if feasible(w, raw.RawRowView(i), tol) {
			keep = append(keep, i)
		}
	}
	if len(keep) == n {
		return raw, 0
	}

	out := mat.NewDense(len(keep), dim, nil)
	for r, i := range keep {
		out.SetRow(r, raw.RawRowView(i))
	}

	return out, n - len(keep)
}

// feasible checks one flux vector against bounds and S·v = 0.
func feasible(w *warmup, v []float64, tol float64) bool {
	for i := range v {
		if v[i] < w.lower[i]-tol || v[i] > w.upper[i]+tol {
			return false
		}
	}
	if w.stoich == nil {
		return true
	}

	rows, _ := w.stoich.Dims()
	for r := 0; r < rows; r++ {
		var sum float64
		for c := range v {
			sum += w.stoich.At(r, c) * v[c]
		}
		if sum > tol || sum < -tol {
			return false
		}
	}

	return true
}
