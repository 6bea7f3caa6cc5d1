package fba_test

import (
	"context"
	"fmt"

	"github.com/Braden-Griebel/hippotools/fba"
	"github.com/Braden-Griebel/hippotools/model"
)

// ExampleOptimize maximizes growth on a three-reaction toy pathway.
// Uptake is capped at 10, so the optimal growth flux is exactly 10.
func ExampleOptimize() {
	// Build ∅ → glc → biomass → ∅ with uptake limited to 10
	m := model.New("toy", model.WithObjective("GROW", model.Maximize))
	m.AddMetabolite(&model.Metabolite{ID: "glc"})
	m.AddMetabolite(&model.Metabolite{ID: "bio"})
	m.AddReaction(&model.Reaction{
		ID:            "UPTAKE",
		Stoichiometry: map[string]float64{"glc": 1},
		UpperBound:    10,
	})
	m.AddReaction(&model.Reaction{
		ID:            "CONVERT",
		Stoichiometry: map[string]float64{"glc": -1, "bio": 1},
		UpperBound:    1000,
	})
	m.AddReaction(&model.Reaction{
		ID:            "GROW",
		Stoichiometry: map[string]float64{"bio": -1},
		UpperBound:    1000,
	})

	sol, err := fba.Optimize(context.Background(), m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Every reaction must carry the uptake-limited flux
	fmt.Printf("objective: %.0f\n", sol.Objective)
	fmt.Printf("UPTAKE: %.0f\n", sol.Fluxes["UPTAKE"])
	// Output:
	// objective: 10
	// UPTAKE: 10
}

// ExampleKnockoutGene shows a gene knockout closing its only reaction.
// CONVERT requires gene g1; with g1 gone no flux can reach biomass.
func ExampleKnockoutGene() {
	m := model.New("toy", model.WithObjective("GROW", model.Maximize))
	m.AddMetabolite(&model.Metabolite{ID: "glc"})
	m.AddMetabolite(&model.Metabolite{ID: "bio"})
	gpr, _ := model.ParseGPR("g1")
	m.AddReaction(&model.Reaction{
		ID:            "UPTAKE",
		Stoichiometry: map[string]float64{"glc": 1},
		UpperBound:    10,
	})
	m.AddReaction(&model.Reaction{
		ID:            "CONVERT",
		Stoichiometry: map[string]float64{"glc": -1, "bio": 1},
		UpperBound:    1000,
		GPR:           gpr,
	})
	m.AddReaction(&model.Reaction{
		ID:            "GROW",
		Stoichiometry: map[string]float64{"bio": -1},
		UpperBound:    1000,
	})

	sol, err := fba.KnockoutGene(context.Background(), m, "g1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("objective after knockout: %.0f\n", sol.Objective)
	// Output:
	// objective after knockout: 0
}
