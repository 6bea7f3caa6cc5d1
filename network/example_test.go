package network_test

import (
	"fmt"

	"github.com/Braden-Griebel/hippotools/model"
	"github.com/Braden-Griebel/hippotools/network"
)

// ExampleDeadEndMetabolites flags species a model can make but never use.
// Metabolite "waste" is produced by LEAK and consumed by nothing.
func ExampleDeadEndMetabolites() {
	m := model.New("demo")
	for _, id := range []string{"a", "b", "waste"} {
		m.AddMetabolite(&model.Metabolite{ID: id})
	}
	m.AddReaction(&model.Reaction{
		ID:            "IN",
		Stoichiometry: map[string]float64{"a": 1},
		UpperBound:    10,
	})
	m.AddReaction(&model.Reaction{
		ID:            "MAIN",
		Stoichiometry: map[string]float64{"a": -1, "b": 1},
		UpperBound:    10,
	})
	m.AddReaction(&model.Reaction{
		ID:            "LEAK",
		Stoichiometry: map[string]float64{"a": -1, "waste": 1},
		UpperBound:    10,
	})
	m.AddReaction(&model.Reaction{
		ID:            "OUT",
		Stoichiometry: map[string]float64{"b": -1},
		UpperBound:    10,
	})

	dead, err := network.DeadEndMetabolites(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(dead)
	// Output:
	// [waste]
}

// ExampleGraph_Neighbors projects a model onto its metabolite graph and
// lists the species one conversion away from "a".
func ExampleGraph_Neighbors() {
	m := model.New("demo")
	for _, id := range []string{"a", "b", "c"} {
		m.AddMetabolite(&model.Metabolite{ID: id})
	}
	m.AddReaction(&model.Reaction{
		ID:            "AB",
		Stoichiometry: map[string]float64{"a": -1, "b": 1},
		UpperBound:    10,
	})
	m.AddReaction(&model.Reaction{
		ID:            "AC",
		Stoichiometry: map[string]float64{"a": -1, "c": 1},
		UpperBound:    10,
	})

	g, err := network.NewMetaboliteGraph(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	neighbors, _ := g.Neighbors("a")
	fmt.Println(neighbors)
	// Output:
	// [b c]
}
