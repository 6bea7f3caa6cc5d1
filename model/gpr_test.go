package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Braden-Griebel/hippotools/model"
)

func TestParseGPR(t *testing.T) {
	tests := []struct {
		name    string
		rule    string
		genes   []string
		wantErr bool
	}{
		{name: "single gene", rule: "b0001", genes: []string{"b0001"}},
		{name: "simple or", rule: "g1 or g2", genes: []string{"g1", "g2"}},
		{name: "simple and", rule: "g1 and g2", genes: []string{"g1", "g2"}},
		{name: "mixed precedence", rule: "g1 and g2 or g3", genes: []string{"g1", "g2", "g3"}},
		{name: "parenthesized", rule: "(g1 or g2) and g3", genes: []string{"g1", "g2", "g3"}},
		{name: "case insensitive keywords", rule: "g1 AND g2 OR g3", genes: []string{"g1", "g2", "g3"}},
		{name: "repeated gene deduplicated", rule: "g1 or (g1 and g2)", genes: []string{"g1", "g2"}},
		{name: "unbalanced paren", rule: "(g1 or g2", wantErr: true},
		{name: "dangling operator", rule: "g1 and", wantErr: true},
		{name: "leading operator", rule: "or g1", wantErr: true},
		{name: "trailing garbage", rule: "g1 g2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gpr, err := model.ParseGPR(tt.rule)
			if tt.wantErr {
				require.ErrorIs(t, err, model.ErrBadGPR)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.genes, gpr.Genes())
			require.Equal(t, tt.rule, gpr.String())
		})
	}
}

func TestParseGPREmptyRuleIsNil(t *testing.T) {
	gpr, err := model.ParseGPR("   ")
	require.NoError(t, err)
	require.Nil(t, gpr)
	// A nil GPR means no gene association: never knocked out.
	require.True(t, gpr.Evaluate(map[string]bool{"g1": true}))
	require.Equal(t, 0.0, gpr.EvalWeights(nil, 0))
}

func TestGPREvaluate(t *testing.T) {
	tests := []struct {
		name      string
		rule      string
		knockouts []string
		want      bool
	}{
		{name: "or survives single knockout", rule: "g1 or g2", knockouts: []string{"g1"}, want: true},
		{name: "or lost on double knockout", rule: "g1 or g2", knockouts: []string{"g1", "g2"}, want: false},
		{name: "and lost on single knockout", rule: "g1 and g2", knockouts: []string{"g2"}, want: false},
		{name: "and intact without knockout", rule: "g1 and g2", knockouts: nil, want: true},
		{name: "isozyme complex", rule: "(g1 and g2) or (g3 and g4)", knockouts: []string{"g1"}, want: true},
		{name: "isozyme complex lost", rule: "(g1 and g2) or (g3 and g4)", knockouts: []string{"g1", "g4"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gpr, err := model.ParseGPR(tt.rule)
			require.NoError(t, err)
			ko := make(map[string]bool, len(tt.knockouts))
			for _, g := range tt.knockouts {
				ko[g] = true
			}
			require.Equal(t, tt.want, gpr.Evaluate(ko))
		})
	}
}

func TestGPREvalWeights(t *testing.T) {
	weights := map[string]float64{"g1": 1, "g2": -1, "g3": 0}

	tests := []struct {
		name string
		rule string
		want float64
	}{
		{name: "and takes min", rule: "g1 and g2", want: -1},
		{name: "or takes max", rule: "g1 or g2", want: 1},
		{name: "nested", rule: "(g1 and g2) or g3", want: 0},
		{name: "missing gene uses default", rule: "g1 and g9", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gpr, err := model.ParseGPR(tt.rule)
			require.NoError(t, err)
			require.Equal(t, tt.want, gpr.EvalWeights(weights, 0))
		})
	}
}
