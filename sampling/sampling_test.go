package sampling_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Braden-Griebel/hippotools/imat"
	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/sampling"
)

// branchedModel offers two parallel a→b routes so the flux polytope has
// room to walk in:
//
//	∅ → a → {R1 | R2} → b → ∅
func branchedModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.New("branched")
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "R_in", Stoichiometry: map[string]float64{"a": 1}, LowerBound: 0, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "R1", Stoichiometry: map[string]float64{"a": -1, "b": 1}, LowerBound: 0, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "R2", Stoichiometry: map[string]float64{"a": -1, "b": 1}, LowerBound: 0, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "R_out", Stoichiometry: map[string]float64{"b": -1}, LowerBound: 0, UpperBound: 10,
	}))

	return m
}

// requireFeasible checks bounds and mass balance for every sample.
func requireFeasible(t *testing.T, m *model.Model, samples *sampling.Samples) {
	t.Helper()
	for i := 0; i < samples.Len(); i++ {
		fluxes := samples.Flux(i)
		for id, v := range fluxes {
			rxn, err := m.Reaction(id)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, rxn.LowerBound-1e-4, "sample %d reaction %s below bound", i, id)
			require.LessOrEqual(t, v, rxn.UpperBound+1e-4, "sample %d reaction %s above bound", i, id)
		}
		require.InDelta(t, fluxes["R1"]+fluxes["R2"], fluxes["R_in"], 1e-4)
		require.InDelta(t, fluxes["R_out"], fluxes["R_in"], 1e-4)
	}
}

type SamplingSuite struct {
	suite.Suite
}

func (s *SamplingSuite) TestACHRSamplesAreFeasible() {
	m := branchedModel(s.T())
	samples, err := sampling.Sample(context.Background(), m, 20, sampling.ACHR,
		sampling.WithSeed(1), sampling.WithThinning(10))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 20, samples.Len())
	require.Equal(s.T(), []string{"R1", "R2", "R_in", "R_out"}, samples.RxnIDs)
	requireFeasible(s.T(), m, samples)
}

func (s *SamplingSuite) TestACHRIsReproducible() {
	m := branchedModel(s.T())
	first, err := sampling.Sample(context.Background(), m, 5, sampling.ACHR,
		sampling.WithSeed(7), sampling.WithThinning(5))
	require.NoError(s.T(), err)
	second, err := sampling.Sample(context.Background(), m, 5, sampling.ACHR,
		sampling.WithSeed(7), sampling.WithThinning(5))
	require.NoError(s.T(), err)

	for i := 0; i < first.Len(); i++ {
		for j := range first.RxnIDs {
			require.Equal(s.T(), first.Data.At(i, j), second.Data.At(i, j))
		}
	}
}

func (s *SamplingSuite) TestOptGPSamplesAreFeasible() {
	m := branchedModel(s.T())
	samples, err := sampling.Sample(context.Background(), m, 21, sampling.OptGP,
		sampling.WithSeed(3), sampling.WithThinning(10), sampling.WithProcesses(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 21, samples.Len())
	requireFeasible(s.T(), m, samples)
}

func (s *SamplingSuite) TestSamplesVary() {
	m := branchedModel(s.T())
	samples, err := sampling.Sample(context.Background(), m, 30, sampling.ACHR,
		sampling.WithSeed(11), sampling.WithThinning(10))
	require.NoError(s.T(), err)

	col, err := samples.Column("R1")
	require.NoError(s.T(), err)
	lo, hi := col[0], col[0]
	for _, v := range col {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	require.Greater(s.T(), hi-lo, 1e-3, "chain never moved along R1")
}

func (s *SamplingSuite) TestBadSampleCount() {
	_, err := sampling.Sample(context.Background(), branchedModel(s.T()), 0, sampling.ACHR)
	require.ErrorIs(s.T(), err, sampling.ErrBadSampleCount)
}

func (s *SamplingSuite) TestDegeneratePolytope() {
	m := model.New("point")
	require.NoError(s.T(), m.AddReaction(&model.Reaction{
		ID: "R_in", Stoichiometry: map[string]float64{"a": 1}, LowerBound: 5, UpperBound: 5,
	}))
	require.NoError(s.T(), m.AddReaction(&model.Reaction{
		ID: "R_out", Stoichiometry: map[string]float64{"a": -1}, LowerBound: 0, UpperBound: 10,
	}))

	_, err := sampling.Sample(context.Background(), m, 5, sampling.ACHR, sampling.WithSeed(1))
	require.ErrorIs(s.T(), err, sampling.ErrDegenerate)
}

func (s *SamplingSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sampling.Sample(ctx, branchedModel(s.T()), 5, sampling.ACHR)
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestSamplingSuite(t *testing.T) {
	suite.Run(t, new(SamplingSuite))
}

func TestParseMethod(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want sampling.Method
		ok   bool
	}{
		{name: "short achr", in: "a", want: sampling.ACHR, ok: true},
		{name: "achr", in: "ACHR", want: sampling.ACHR, ok: true},
		{name: "long achr", in: "artificial centering hit-and-run", want: sampling.ACHR, ok: true},
		{name: "long achr sampler", in: "Artificial Centering Hit-and-Run Sampler", want: sampling.ACHR, ok: true},
		{name: "short optgp", in: "o", want: sampling.OptGP, ok: true},
		{name: "opt", in: "opt", want: sampling.OptGP, ok: true},
		{name: "optgp", in: "optgp", want: sampling.OptGP, ok: true},
		{name: "padded", in: "  achr  ", want: sampling.ACHR, ok: true},
		{name: "unknown", in: "gibbs", ok: false},
		{name: "empty", in: "", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sampling.ParseMethod(tc.in)
			if !tc.ok {
				require.ErrorIs(t, err, sampling.ErrBadMethod)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestColumnUnknownReaction(t *testing.T) {
	m := branchedModel(t)
	samples, err := sampling.Sample(context.Background(), m, 3, sampling.ACHR,
		sampling.WithSeed(2), sampling.WithThinning(5))
	require.NoError(t, err)

	_, err = samples.Column("R_missing")
	require.ErrorIs(t, err, sampling.ErrUnknownReaction)
}

// TestSampleIMAT checks that sampling a context-specific model keeps the
// suppressed branch near zero while the favored branch stays active.
func TestSampleIMAT(t *testing.T) {
	m := model.New("fork")
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "R_in", Stoichiometry: map[string]float64{"a": 1}, LowerBound: 0, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "R_hi", Stoichiometry: map[string]float64{"a": -1, "b": 1}, LowerBound: 0, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "R_lo", Stoichiometry: map[string]float64{"a": -1, "b": 1}, LowerBound: 0, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "R_out", Stoichiometry: map[string]float64{"b": -1}, LowerBound: 0, UpperBound: 10,
	}))
	weights := map[string]float64{"R_hi": 1, "R_lo": -1}

	samples, err := sampling.SampleIMAT(context.Background(), m, weights, 10, sampling.ACHR, nil,
		sampling.WithSeed(5), sampling.WithThinning(10))
	require.NoError(t, err)
	require.Equal(t, 10, samples.Len())

	hi, err := samples.Column("R_hi")
	require.NoError(t, err)
	lo, err := samples.Column("R_lo")
	require.NoError(t, err)
	for i := range hi {
		require.GreaterOrEqual(t, hi[i], imat.DefaultEpsilon-1e-6)
		require.LessOrEqual(t, math.Abs(lo[i]), imat.DefaultThreshold+1e-6)
	}
}
