// Package sampling_test provides benchmarks for the hit-and-run samplers.
package sampling_test

import (
	"context"
	"testing"

	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/sampling"
)

func benchModel() *model.Model {
	m := model.New("branched")
	m.AddReaction(&model.Reaction{
		ID: "R_in", Stoichiometry: map[string]float64{"a": 1}, LowerBound: 0, UpperBound: 10,
	})
	m.AddReaction(&model.Reaction{
		ID: "R1", Stoichiometry: map[string]float64{"a": -1, "b": 1}, LowerBound: 0, UpperBound: 10,
	})
	m.AddReaction(&model.Reaction{
		ID: "R2", Stoichiometry: map[string]float64{"a": -1, "b": 1}, LowerBound: 0, UpperBound: 10,
	})
	m.AddReaction(&model.Reaction{
		ID: "R_out", Stoichiometry: map[string]float64{"b": -1}, LowerBound: 0, UpperBound: 10,
	})

	return m
}

// BenchmarkACHR measures warmup plus a thinned 100-sample ACHR walk over
// the branched four-reaction polytope.
func BenchmarkACHR(b *testing.B) {
	ctx := context.Background()
	m := benchModel()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := sampling.Sample(ctx, m, 100, sampling.ACHR,
			sampling.WithSeed(1), sampling.WithThinning(10))
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkOptGP measures the parallel sampler with two chains.
func BenchmarkOptGP(b *testing.B) {
	ctx := context.Background()
	m := benchModel()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := sampling.Sample(ctx, m, 100, sampling.OptGP,
			sampling.WithSeed(1), sampling.WithThinning(10), sampling.WithProcesses(2))
		if err != nil {
			b.Fatal(err)
		}
	}
}
