package rulegraph_test

import (
	"fmt"

	"github.com/matzehuels/linden/pkg/presets"
	"github.com/matzehuels/linden/pkg/render/rulegraph"
)

func ExampleEdges() {
	rules := presets.KochCurve()
	for _, e := range rulegraph.Edges(rules) {
		fmt.Printf("%s -> %s\n", rules[e.From].Name, rules[e.To].Name)
	}
	// Output:
	// Axiom -> Elaboration
	// Elaboration -> Elaboration
}
