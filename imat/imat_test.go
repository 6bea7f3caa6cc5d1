package imat_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Braden-Griebel/hippotools/imat"
	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/solver"
)

// forkModel offers two parallel a→b conversions so expression weights can
// pick a winner:
//
//	∅ → a → {R_hi | R_lo} → b → ∅
func forkModel(t *testing.T) *model.Model {
	t.Helper()
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
		ID: "R_out", Stoichiometry: map[string]float64{"b": -1}, LowerBound: 0, UpperBound: 1000,
	}))

	return m
}

func forkWeights() map[string]float64 {
	return map[string]float64{"R_hi": 1, "R_lo": -1}
}

// IMATSuite exercises the full MILP pipeline on the fork model.
type IMATSuite struct {
	suite.Suite
}

func (s *IMATSuite) TestOptimizeSatisfiesBothWeights() {
	res, err := imat.Optimize(context.Background(), forkModel(s.T()), forkWeights())
	require.NoError(s.T(), err)

	require.InDelta(s.T(), 2.0, res.Objective, 1e-6)
	require.True(s.T(), res.Active["R_hi"])
	require.True(s.T(), res.Inactive["R_lo"])
	require.GreaterOrEqual(s.T(), res.Fluxes["R_hi"], imat.DefaultEpsilon-1e-9)
	require.LessOrEqual(s.T(), math.Abs(res.Fluxes["R_lo"]), imat.DefaultThreshold+1e-9)
}

func (s *IMATSuite) TestResultConsistentWithObjective() {
	res, err := imat.Optimize(context.Background(), forkModel(s.T()), forkWeights())
	require.NoError(s.T(), err)
	recomputed := imat.Objective(res.Fluxes, forkWeights(), imat.DefaultEpsilon)
	require.InDelta(s.T(), res.Objective, recomputed, 1e-9)
	require.True(s.T(), imat.ValidateFlux(res.Fluxes, forkWeights(), res.Objective, imat.DefaultEpsilon, imat.DefaultObjTol))
}

func (s *IMATSuite) TestHighWeightOnly() {
	res, err := imat.Optimize(context.Background(), forkModel(s.T()), map[string]float64{"R_hi": 1})
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 1.0, res.Objective, 1e-6)
	require.True(s.T(), res.Active["R_hi"])
}

func (s *IMATSuite) TestNoWeights() {
	_, err := imat.Optimize(context.Background(), forkModel(s.T()), map[string]float64{})
	require.ErrorIs(s.T(), err, imat.ErrNoWeights)

	// All-zero weights are as empty as no weights.
	_, err = imat.Optimize(context.Background(), forkModel(s.T()), map[string]float64{"R_hi": 0})
	require.ErrorIs(s.T(), err, imat.ErrNoWeights)
}

func (s *IMATSuite) TestUnknownReactionWeight() {
	_, err := imat.Optimize(context.Background(), forkModel(s.T()), map[string]float64{
		"R_hi": 1, "R_ghost": -1,
	})
	require.ErrorIs(s.T(), err, imat.ErrUnknownReaction)
}

func (s *IMATSuite) TestThresholdTooTight() {
	_, err := imat.Optimize(context.Background(), forkModel(s.T()), forkWeights(),
		imat.WithTolerance(1e-4))
	require.ErrorIs(s.T(), err, solver.ErrThresholdTooTight)
}

func TestIMATSuite(t *testing.T) {
	suite.Run(t, new(IMATSuite))
}

func TestConstrainModel(t *testing.T) {
	ctx := context.Background()
	m := forkModel(t)

	c, err := imat.ConstrainModel(ctx, m, forkWeights(), nil)
	require.NoError(t, err)
	require.InDelta(t, 2.0, c.ImatObjective, 1e-6)

	// Within the optimality cut R_lo cannot escape its suppression band.
	sol, err := c.Optimize(ctx, "R_lo", model.Maximize)
	require.NoError(t, err)
	require.LessOrEqual(t, sol.Objective, imat.DefaultThreshold+1e-9)

	// R_hi keeps its full room upward.
	sol, err = c.Optimize(ctx, "R_hi", model.Maximize)
	require.NoError(t, err)
	require.InDelta(t, 10.0, sol.Objective, 1e-6)
}

func TestConstrainModelWithPreviousResult(t *testing.T) {
	ctx := context.Background()
	m := forkModel(t)

	prev, err := imat.Optimize(ctx, m, forkWeights())
	require.NoError(t, err)

	// Anchoring on prev skips the initial solve but yields the same cut.
	c, err := imat.ConstrainModel(ctx, m, forkWeights(), prev)
	require.NoError(t, err)
	require.Equal(t, prev.Objective, c.ImatObjective)

	sol, err := c.Optimize(ctx, "R_lo", model.Maximize)
	require.NoError(t, err)
	require.LessOrEqual(t, sol.Objective, imat.DefaultThreshold+1e-9)
}

func TestObjectiveScoring(t *testing.T) {
	weights := map[string]float64{"R1": 1, "R2": 1, "R3": -1, "R4": -1}
	fluxes := map[string]float64{
		"R1": 5,       // high, active
		"R2": 0.001,   // high, below epsilon: not active
		"R3": 0,       // low, inactive
		"R4": -0.5,    // low, carrying flux: not inactive
		"R5": 100,     // unweighted, ignored
	}
	require.Equal(t, 2.0, imat.Objective(fluxes, weights, imat.DefaultEpsilon))

	// Reverse flux counts for high-weight reactions.
	fluxes["R2"] = -3
	require.Equal(t, 3.0, imat.Objective(fluxes, weights, imat.DefaultEpsilon))
}

func TestValidateFlux(t *testing.T) {
	weights := map[string]float64{"R1": 1}
	fluxes := map[string]float64{"R1": 1.0}
	require.True(t, imat.ValidateFlux(fluxes, weights, 1.0, imat.DefaultEpsilon, imat.DefaultObjTol))

	// A flux vector scoring 0 against an optimum of 1 fails.
	require.False(t, imat.ValidateFlux(map[string]float64{"R1": 0}, weights, 1.0, imat.DefaultEpsilon, imat.DefaultObjTol))
}
