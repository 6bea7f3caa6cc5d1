package diversity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Braden-Griebel/hippotools/diversity"
)

const (
	T  = diversity.TriTrue
	F  = diversity.TriFalse
	NA = diversity.TriNA
)

var (
	allTrue     = []diversity.Tri{T, T, T, T}
	allTrueNA   = []diversity.Tri{T, T, T, T, NA}
	allFalse    = []diversity.Tri{F, F, F, F}
	allFalseNA  = []diversity.Tri{F, F, F, F, NA}
	mostTrue    = []diversity.Tri{T, T, T, F}
	mostTrueNA  = []diversity.Tri{T, T, T, F, NA}
	mostFalse   = []diversity.Tri{F, F, F, F, T}
	mostFalseNA = []diversity.Tri{F, F, F, F, T, NA}
	halfTrue    = []diversity.Tri{T, T, T, F, F, F}
	halfTrueNA  = []diversity.Tri{T, T, T, F, F, F, NA}
)

func TestAggAll(t *testing.T) {
	require.Equal(t, T, diversity.AggAll(allTrue, false))
	require.Equal(t, NA, diversity.AggAll(allTrueNA, false))
	require.Equal(t, F, diversity.AggAll(allFalse, false))
	require.Equal(t, F, diversity.AggAll(mostTrue, false))
	require.Equal(t, F, diversity.AggAll(mostTrueNA, false))
	require.Equal(t, T, diversity.AggAll(allTrueNA, true))
	require.Equal(t, F, diversity.AggAll(mostTrueNA, true))
}

func TestAggAny(t *testing.T) {
	require.Equal(t, T, diversity.AggAny(mostTrue, false))
	require.Equal(t, T, diversity.AggAny(mostTrueNA, false))
	require.Equal(t, T, diversity.AggAny(mostFalse, false))
	require.Equal(t, T, diversity.AggAny(mostFalseNA, false))
	require.Equal(t, F, diversity.AggAny(allFalse, false))
	require.Equal(t, NA, diversity.AggAny(allFalseNA, false))
	require.Equal(t, F, diversity.AggAny(allFalseNA, true))
}

func TestAggMajority(t *testing.T) {
	require.Equal(t, T, diversity.AggMajority(allTrue, false))
	require.Equal(t, T, diversity.AggMajority(allTrueNA, false))
	require.Equal(t, T, diversity.AggMajority(mostTrue, false))
	require.Equal(t, T, diversity.AggMajority(mostTrueNA, false))
	require.Equal(t, F, diversity.AggMajority(allFalse, false))
	require.Equal(t, F, diversity.AggMajority(allFalseNA, false))
	require.Equal(t, F, diversity.AggMajority(mostFalse, false))
	require.Equal(t, F, diversity.AggMajority(mostFalseNA, false))
	require.Equal(t, F, diversity.AggMajority(halfTrue, false))
	require.Equal(t, NA, diversity.AggMajority(halfTrueNA, false))
	require.Equal(t, F, diversity.AggMajority(halfTrueNA, true))
}

// TestAggregateFrame folds a fixed frame with every strategy and checks
// each gene's consensus call.
func TestAggregateFrame(t *testing.T) {
	genes := []string{"gene_1", "gene_2", "gene_3", "gene_4", "gene_5", "gene_6", "gene_7"}
	frame := diversity.NewConsensus(genes)
	iters := [][]diversity.Tri{
		{T, F, T, T, T, F, T},
		{T, F, T, F, T, F, T},
		{T, F, T, F, F, F, T},
		{T, F, T, T, F, F, T},
		{T, F, F, T, F, F, T},
		{T, F, F, NA, NA, NA, T},
		{T, F, F, T, NA, F, NA},
		{T, F, F, NA, NA, F, T},
	}
	for _, col := range iters {
		vals := make(map[string]diversity.Tri, len(genes))
		for i, g := range genes {
			vals[g] = col[i]
		}
		frame.AddIteration(vals)
	}
	require.Equal(t, 8, frame.Iterations())

	cases := []struct {
		name     string
		agg      diversity.AggFunc
		ignoreNA bool
		want     []diversity.Tri
	}{
		{name: "any", agg: diversity.AggAny, want: []diversity.Tri{T, F, T, T, T, NA, T}},
		{name: "any ignore NA", agg: diversity.AggAny, ignoreNA: true, want: []diversity.Tri{T, F, T, T, T, F, T}},
		{name: "all", agg: diversity.AggAll, want: []diversity.Tri{T, F, F, F, F, F, NA}},
		{name: "all ignore NA", agg: diversity.AggAll, ignoreNA: true, want: []diversity.Tri{T, F, F, F, F, F, T}},
		{name: "majority", agg: diversity.AggMajority, want: []diversity.Tri{T, F, F, NA, NA, F, T}},
		{name: "majority ignore NA", agg: diversity.AggMajority, ignoreNA: true, want: []diversity.Tri{T, F, F, T, F, F, T}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.agg
			out := frame.Aggregate(got, tc.ignoreNA)
			for i, g := range genes {
				require.Equal(t, tc.want[i], out[g], "gene %s", g)
			}
		})
	}
}

func TestTriString(t *testing.T) {
	require.Equal(t, "true", T.String())
	require.Equal(t, "false", F.String())
	require.Equal(t, "NA", NA.String())
}
