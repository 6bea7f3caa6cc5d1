// Flux variability analysis with a bounded worker pool.
package fba

import (
	"context"
	"runtime"
	"sync"

	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/solver"
)

// FluxVariability computes, for every reaction, the minimum and maximum
// flux it can carry while the objective stays within cfg.Fraction of its
// optimum. The 2·R solves are spread over a bounded pool of workers, each
// operating on its own clone of the constrained problem.
//
// Complexity: one FBA solve plus 2·R LP solves across min(Workers, R)
// goroutines.
func FluxVariability(ctx context.Context, m *model.Model, opts ...Option) (map[string]Range, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Locate the optimum, then pin the objective near it.
	base, rxnIDs, err := BuildProblem(m)
	if err != nil {
		return nil, err
	}
	objID, sense, err := m.Objective()
	if err != nil {
		return nil, err
	}
	objIdx, err := base.Index(objID)
	if err != nil {
		return nil, err
	}

	fbaSol, err := Optimize(ctx, m, opts...)
	if err != nil {
		return nil, err
	}
	if sense == model.Maximize {
		base.AddGreaterEqual(map[int]float64{objIdx: 1}, cfg.Fraction*fbaSol.Objective)
	} else {
		base.AddLessEqual(map[int]float64{objIdx: 1}, cfg.Fraction*fbaSol.Objective)
	}

	// 2) Fan the per-reaction min/max solves across workers.
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(rxnIDs) {
		workers = len(rxnIDs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	ranges := make([]Range, len(rxnIDs))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker owns one clone; objective coefficients are
			// reset between reactions.
			p := base.Clone()
			for j := range jobs {
				lo, hi, err := minMaxFlux(ctx, p, j, cfg)
				if err != nil {
					fail(err)
					return
				}
				ranges[j] = Range{Min: lo, Max: hi}
			}
		}()
	}

dispatch:
	for j := range rxnIDs {
		select {
		case jobs <- j:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(map[string]Range, len(rxnIDs))
	for j, id := range rxnIDs {
		out[id] = ranges[j]
	}

	return out, nil
}

// minMaxFlux minimizes then maximizes variable j on the shared clone.
func minMaxFlux(ctx context.Context, p *solver.Problem, j int, cfg Options) (lo, hi float64, err error) {
	p.ClearObjective()
	p.SetObjectiveCoeff(j, 1)

	p.SetSense(solver.Minimize)
	minSol, err := solver.Solve(ctx, p, solver.WithTolerance(cfg.Tolerance))
	if err != nil {
		return 0, 0, err
	}

	p.SetSense(solver.Maximize)
	maxSol, err := solver.Solve(ctx, p, solver.WithTolerance(cfg.Tolerance))
	if err != nil {
		return 0, 0, err
	}

	return minSol.X[j], maxSol.X[j], nil
}
