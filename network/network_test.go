package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/network"
)

// glycolysisStub is a five-reaction toy pathway with ATP/ADP as currency
// metabolites and one dead-end product:
//
//	EX_glc: ∅ → glc
//	HEX:    glc + atp → g6p + adp
//	PGI:    g6p ⇌ f6p
//	DEAD:   f6p → x
//	SINK:   f6p → ∅
func glycolysisStub(t *testing.T) *model.Model {
	t.Helper()
	m := model.New("glycolysis-stub")
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "EX_glc", Stoichiometry: map[string]float64{"glc": 1}, LowerBound: 0, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "HEX", Stoichiometry: map[string]float64{"glc": -1, "atp": -1, "g6p": 1, "adp": 1},
		LowerBound: 0, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "PGI", Stoichiometry: map[string]float64{"g6p": -1, "f6p": 1}, LowerBound: -10, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "DEAD", Stoichiometry: map[string]float64{"f6p": -1, "x": 1}, LowerBound: 0, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "SINK", Stoichiometry: map[string]float64{"f6p": -1}, LowerBound: 0, UpperBound: 10,
	}))

	return m
}

func TestBipartite(t *testing.T) {
	m := glycolysisStub(t)
	b, err := network.NewBipartite(m)
	require.NoError(t, err)

	// 5 reactions + 6 metabolites.
	require.Equal(t, 11, b.Order())
	require.True(t, b.IsReaction("HEX"))
	require.False(t, b.IsReaction("glc"))

	d, err := b.Degree("HEX")
	require.NoError(t, err)
	require.Equal(t, 4, d)

	neighbors, err := b.Neighbors("f6p")
	require.NoError(t, err)
	require.Equal(t, []string{"DEAD", "PGI", "SINK"}, neighbors)
}

func TestBipartiteExcludesCofactors(t *testing.T) {
	b, err := network.NewBipartite(glycolysisStub(t), network.WithExcludedMetabolites("atp", "adp"))
	require.NoError(t, err)

	require.Equal(t, 9, b.Order())
	require.False(t, b.Has("atp"))

	d, err := b.Degree("HEX")
	require.NoError(t, err)
	require.Equal(t, 2, d)
}

func TestMetaboliteGraph(t *testing.T) {
	g, err := network.NewMetaboliteGraph(glycolysisStub(t), network.WithExcludedMetabolites("atp", "adp"))
	require.NoError(t, err)

	neighbors, err := g.Neighbors("glc")
	require.NoError(t, err)
	require.Equal(t, []string{"g6p"}, neighbors)

	neighbors, err = g.Neighbors("f6p")
	require.NoError(t, err)
	require.Equal(t, []string{"g6p", "x"}, neighbors)

	_, err = g.Neighbors("atp")
	require.ErrorIs(t, err, network.ErrUnknownNode)
}

func TestReactionGraph(t *testing.T) {
	g, err := network.NewReactionGraph(glycolysisStub(t), network.WithExcludedMetabolites("atp", "adp"))
	require.NoError(t, err)

	neighbors, err := g.Neighbors("PGI")
	require.NoError(t, err)
	require.Equal(t, []string{"DEAD", "HEX", "SINK"}, neighbors)

	neighbors, err = g.Neighbors("EX_glc")
	require.NoError(t, err)
	require.Equal(t, []string{"HEX"}, neighbors)
}

func TestComponents(t *testing.T) {
	m := glycolysisStub(t)
	// An isolated conversion disconnected from the main pathway.
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "ISO", Stoichiometry: map[string]float64{"y": -1, "z": 1}, LowerBound: 0, UpperBound: 10,
	}))

	g, err := network.NewMetaboliteGraph(m, network.WithExcludedMetabolites("atp", "adp"))
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
	require.Equal(t, []string{"f6p", "g6p", "glc", "x"}, comps[0])
	require.Equal(t, []string{"y", "z"}, comps[1])
}

func TestDegreeStats(t *testing.T) {
	g, err := network.NewMetaboliteGraph(glycolysisStub(t), network.WithExcludedMetabolites("atp", "adp"))
	require.NoError(t, err)

	degrees := g.Degrees()
	require.Equal(t, 1, degrees["glc"])
	require.Equal(t, 2, degrees["g6p"])

	stats := g.Stats()
	require.Equal(t, 1, stats.Min)
	require.Equal(t, 2, stats.Max)
	require.InDelta(t, 1.5, stats.Mean, 1e-9)
}

func TestDeadEndMetabolites(t *testing.T) {
	m := glycolysisStub(t)

	dead, err := network.DeadEndMetabolites(m)
	require.NoError(t, err)
	require.Equal(t, []string{"adp", "atp", "x"}, dead)

	dead, err = network.DeadEndMetabolites(m, network.WithExcludedMetabolites("atp", "adp"))
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, dead)
}

func TestChokePointReactions(t *testing.T) {
	choke, err := network.ChokePointReactions(glycolysisStub(t), network.WithExcludedMetabolites("atp", "adp"))
	require.NoError(t, err)
	require.Equal(t, []string{"DEAD", "EX_glc", "HEX", "PGI"}, choke)
}

func TestNilModel(t *testing.T) {
	_, err := network.NewBipartite(nil)
	require.ErrorIs(t, err, network.ErrNilModel)
	_, err = network.NewMetaboliteGraph(nil)
	require.ErrorIs(t, err, network.ErrNilModel)
	_, err = network.DeadEndMetabolites(nil)
	require.ErrorIs(t, err, network.ErrNilModel)
}
