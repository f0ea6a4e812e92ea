// Package presets ships a few ready-made graphs so a session can start
// from something more interesting than an empty canvas.
package presets

import (
	"fmt"
	"sort"

	"github.com/dd0wney/mstviz/pkg/graph"
)

// Preset is one named example graph.
type Preset struct {
	Name        string
	Description string
	Graph       graph.Graph
}

var registry = map[string]Preset{
	"triangle": {
		Name:        "triangle",
		Description: "Three vertices, one redundant edge",
		Graph: graph.Graph{
			Vertices: []string{"A", "B", "C"},
			Edges: []graph.Edge{
				{U: "A", V: "B", W: 3},
				{U: "B", V: "C", W: 4},
				{U: "A", V: "C", W: 5},
			},
		},
	},
	"bridge": {
		Name:        "bridge",
		Description: "Two clusters joined by a single load-bearing edge",
		Graph: graph.Graph{
			Vertices: []string{"A", "B", "C", "D", "E", "F"},
			Edges: []graph.Edge{
				{U: "A", V: "B", W: 1},
				{U: "B", V: "C", W: 2},
				{U: "A", V: "C", W: 3},
				{U: "C", V: "D", W: 10},
				{U: "D", V: "E", W: 1},
				{U: "E", V: "F", W: 2},
				{U: "D", V: "F", W: 3},
			},
		},
	},
	"ring": {
		Name:        "ring",
		Description: "A cycle: exactly one edge is redundant",
		Graph: graph.Graph{
			Vertices: []string{"A", "B", "C", "D", "E"},
			Edges: []graph.Edge{
				{U: "A", V: "B", W: 2},
				{U: "B", V: "C", W: 4},
				{U: "C", V: "D", W: 1},
				{U: "D", V: "E", W: 3},
				{U: "E", V: "A", W: 5},
			},
		},
	},
	"classic": {
		Name:        "classic",
		Description: "Dense 6-vertex graph with several equal weights",
		Graph: graph.Graph{
			Vertices: []string{"A", "B", "C", "D", "E", "F"},
			Edges: []graph.Edge{
				{U: "A", V: "B", W: 4},
				{U: "A", V: "C", W: 4},
				{U: "B", V: "C", W: 2},
				{U: "C", V: "D", W: 3},
				{U: "C", V: "E", W: 2},
				{U: "C", V: "F", W: 4},
				{U: "D", V: "F", W: 3},
				{U: "E", V: "F", W: 3},
			},
		},
	},
}

// Names lists the available presets in stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns a deep copy of the named preset, so callers can mutate
// the result freely.
func Load(name string) (Preset, error) {
	p, ok := registry[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	}
	p.Graph = graph.Clone(p.Graph)
	return p, nil
}
