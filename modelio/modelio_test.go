package modelio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/modelio"
)

// sampleModel is a three-reaction chain with annotated metabolites, a GPR
// rule, an objective, and one deliberately blocked reaction.
func sampleModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.New("toy", model.WithName("Toy Model"))
	require.NoError(t, m.AddMetabolite(&model.Metabolite{
		ID: "glc_c", Name: "Glucose", Formula: "C6H12O6", Charge: 0, Compartment: "c",
	}))
	require.NoError(t, m.AddMetabolite(&model.Metabolite{
		ID: "g6p_c", Name: "Glucose 6-phosphate", Formula: "C6H11O9P", Charge: -2, Compartment: "c",
	}))
	gpr, err := model.ParseGPR("(g1 and g2) or g3")
	require.NoError(t, err)
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "EX_glc", Stoichiometry: map[string]float64{"glc_c": 1}, LowerBound: 0, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "HEX", Name: "Hexokinase", Subsystem: "Glycolysis",
		Stoichiometry: map[string]float64{"glc_c": -1, "g6p_c": 1},
		LowerBound:    0, UpperBound: 10, GPR: gpr,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "SINK", Stoichiometry: map[string]float64{"g6p_c": -1}, LowerBound: 0, UpperBound: 10,
	}))
	require.NoError(t, m.AddReaction(&model.Reaction{
		ID: "BLOCKED", Stoichiometry: map[string]float64{"g6p_c": -1, "glc_c": 1},
	}))
	require.NoError(t, m.SetBounds("BLOCKED", 0, 0))
	require.NoError(t, m.SetObjective("SINK", model.Maximize))

	return m
}

// requireSameModel compares the fields the codecs must preserve.
func requireSameModel(t *testing.T, want, got *model.Model) {
	t.Helper()
	require.Equal(t, want.ID(), got.ID())
	require.Equal(t, want.Name(), got.Name())

	require.Len(t, got.Metabolites(), len(want.Metabolites()))
	for _, wm := range want.Metabolites() {
		gm, err := got.Metabolite(wm.ID)
		require.NoError(t, err)
		require.Equal(t, wm.Formula, gm.Formula)
		require.Equal(t, wm.Charge, gm.Charge)
		require.Equal(t, wm.Compartment, gm.Compartment)
	}

	require.Len(t, got.Reactions(), len(want.Reactions()))
	for _, wr := range want.Reactions() {
		gr, err := got.Reaction(wr.ID)
		require.NoError(t, err)
		require.Equal(t, wr.Stoichiometry, gr.Stoichiometry)
		require.Equal(t, wr.LowerBound, gr.LowerBound)
		require.Equal(t, wr.UpperBound, gr.UpperBound)
		require.Equal(t, wr.GPR.String(), gr.GPR.String())
	}

	wantObj, wantSense, err := want.Objective()
	require.NoError(t, err)
	gotObj, gotSense, err := got.Objective()
	require.NoError(t, err)
	require.Equal(t, wantObj, gotObj)
	require.Equal(t, wantSense, gotSense)
}

func TestRoundTrips(t *testing.T) {
	for _, ft := range []modelio.FileType{modelio.JSON, modelio.YAML, modelio.SBML, modelio.Gob} {
		t.Run(ftName(ft), func(t *testing.T) {
			m := sampleModel(t)
			var buf bytes.Buffer
			require.NoError(t, modelio.Write(&buf, m, ft))

			got, err := modelio.Read(&buf, ft)
			require.NoError(t, err)
			requireSameModel(t, m, got)
		})
	}
}

func ftName(ft modelio.FileType) string {
	switch ft {
	case modelio.JSON:
		return "json"
	case modelio.YAML:
		return "yaml"
	case modelio.SBML:
		return "sbml"
	default:
		return "gob"
	}
}

func TestParseFileType(t *testing.T) {
	cases := []struct {
		in   string
		want modelio.FileType
		ok   bool
	}{
		{in: "json", want: modelio.JSON, ok: true},
		{in: "jsn", want: modelio.JSON, ok: true},
		{in: ".json", want: modelio.JSON, ok: true},
		{in: "YAML", want: modelio.YAML, ok: true},
		{in: "yml", want: modelio.YAML, ok: true},
		{in: "sbml", want: modelio.SBML, ok: true},
		{in: "xml", want: modelio.SBML, ok: true},
		{in: "gob", want: modelio.Gob, ok: true},
		{in: "bin", want: modelio.Gob, ok: true},
		{in: "mat", ok: false},
		{in: "", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := modelio.ParseFileType(tc.in)
			if !tc.ok {
				require.ErrorIs(t, err, modelio.ErrUnsupportedFileType)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestReadWriteModelFiles(t *testing.T) {
	dir := t.TempDir()
	m := sampleModel(t)

	for _, ext := range []string{"json", "yaml", "xml", "gob"} {
		path := filepath.Join(dir, "toy."+ext)
		require.NoError(t, modelio.WriteModel(path, m, ""))

		got, err := modelio.ReadModel(path, "")
		require.NoError(t, err)
		requireSameModel(t, m, got)
	}
}

func TestReadModelExplicitTypeWinsOverExtension(t *testing.T) {
	dir := t.TempDir()
	m := sampleModel(t)

	path := filepath.Join(dir, "toy.dat")
	require.NoError(t, modelio.WriteModel(path, m, "json"))

	_, err := modelio.ReadModel(path, "")
	require.ErrorIs(t, err, modelio.ErrUnsupportedFileType)

	got, err := modelio.ReadModel(path, "json")
	require.NoError(t, err)
	requireSameModel(t, m, got)
}

func TestReadBadContent(t *testing.T) {
	_, err := modelio.Read(strings.NewReader("{not json"), modelio.JSON)
	require.ErrorIs(t, err, modelio.ErrBadModel)

	_, err = modelio.Read(strings.NewReader("<sbml"), modelio.SBML)
	require.ErrorIs(t, err, modelio.ErrBadModel)
}

func TestReadBadGPR(t *testing.T) {
	payload := `{"id":"x","reactions":[{"id":"R","metabolites":{"a":1},"lower_bound":0,"upper_bound":1,"gene_reaction_rule":"g1 and"}]}`
	_, err := modelio.Read(strings.NewReader(payload), modelio.JSON)
	require.ErrorIs(t, err, modelio.ErrBadModel)
}

func TestBlockedReactionSurvivesRoundTrip(t *testing.T) {
	m := sampleModel(t)
	var buf bytes.Buffer
	require.NoError(t, modelio.Write(&buf, m, modelio.JSON))
	got, err := modelio.Read(&buf, modelio.JSON)
	require.NoError(t, err)

	rxn, err := got.Reaction("BLOCKED")
	require.NoError(t, err)
	require.Zero(t, rxn.LowerBound)
	require.Zero(t, rxn.UpperBound)
}
