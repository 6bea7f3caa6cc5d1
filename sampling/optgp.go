package sampling

import (
	"context"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// parallel runs cfg.Processes independent ACHR chains and interleaves
// their output row by row. Each chain gets its own seed derived from the
// configured one, so a fixed seed yields a fixed sample set regardless
// of goroutine scheduling.
func (w *warmup) parallel(ctx context.Context, n int, cfg Options) (*mat.Dense, error) {
	chains := cfg.Processes
	if chains > n {
		chains = n
	}

	// Per-chain sample counts, the remainder spread over the first chains.
	counts := make([]int, chains)
	for i := range counts {
		counts[i] = n / chains
		if i < n%chains {
			counts[i]++
		}
	}

	results := make([]*mat.Dense, chains)
	errs := make([]error, chains)

	var wg sync.WaitGroup
	for i := 0; i < chains; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			results[i], errs[i] = w.chain(ctx, counts[i], cfg.Thinning, rng)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	// Interleave: chain 0 row 0, chain 1 row 0, ..., chain 0 row 1, ...
	dim := len(w.rxnIDs)
	out := mat.NewDense(n, dim, nil)
	row := 0
	for r := 0; row < n; r++ {
		for i := 0; i < chains && row < n; i++ {
			if r < counts[i] {
				out.SetRow(row, results[i].RawRowView(r))
				row++
			}
		}
	}

	return out, nil
}
