// Package interchange round-trips session state through the JSON
// exchange format. Format problems are hard errors, distinct from graph
// validation: a document that parses but describes a malformed graph is
// imported as-is and left for the validation engine to report.
package interchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/mstviz/pkg/graph"
)

// validate is a singleton validator instance
var validate = validator.New()

// edgeDoc is the wire form of one edge. U and V are pointers so an
// absent endpoint is distinguishable from an empty one; a nil W maps to
// the NaN "missing weight" sentinel on import and back on export.
type edgeDoc struct {
	U *string  `json:"u" validate:"required"`
	V *string  `json:"v" validate:"required"`
	W *float64 `json:"w"`
}

type graphDoc struct {
	Vertices []string  `json:"vertices"`
	Edges    []edgeDoc `json:"edges"`
}

// document covers both accepted layouts: the wrapped form with a
// "graph" object, and the legacy form with vertices/edges at the top
// level. Export always emits the wrapped form.
type document struct {
	Graph     *graphDoc                 `json:"graph,omitempty"`
	Vertices  []string                  `json:"vertices,omitempty"`
	Edges     []edgeDoc                 `json:"edges,omitempty"`
	Positions map[string]graph.Position `json:"positions,omitempty"`
}

// Import parses a JSON document in either the wrapped or the legacy
// layout. On any format error the returned graph and positions are
// zero values and must not be used.
func Import(data []byte) (graph.Graph, map[string]graph.Position, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return graph.Graph{}, nil, fmt.Errorf("malformed JSON: %w", err)
	}

	var src graphDoc
	switch {
	case doc.Graph != nil:
		src = *doc.Graph
	case doc.Vertices != nil || doc.Edges != nil:
		src = graphDoc{Vertices: doc.Vertices, Edges: doc.Edges}
	default:
		return graph.Graph{}, nil, errors.New("document has neither a graph object nor top-level vertices/edges")
	}

	if src.Vertices == nil {
		return graph.Graph{}, nil, errors.New("graph is missing the required vertices field")
	}

	g := graph.Graph{
		Vertices: make([]string, len(src.Vertices)),
		Edges:    make([]graph.Edge, 0, len(src.Edges)),
	}
	copy(g.Vertices, src.Vertices)

	for i, e := range src.Edges {
		if err := validate.Struct(e); err != nil {
			return graph.Graph{}, nil, fmt.Errorf("edge %d is missing an endpoint: %w", i, err)
		}
		w := math.NaN()
		if e.W != nil {
			w = *e.W
		}
		g.Edges = append(g.Edges, graph.Edge{U: *e.U, V: *e.V, W: w})
	}

	positions := make(map[string]graph.Position, len(doc.Positions))
	for label, pos := range doc.Positions {
		positions[label] = pos
	}

	return g, positions, nil
}

// Export serializes a graph and its positions in the wrapped layout.
func Export(g graph.Graph, positions map[string]graph.Position) ([]byte, error) {
	edges := make([]edgeDoc, 0, len(g.Edges))
	for i := range g.Edges {
		e := g.Edges[i]
		doc := edgeDoc{U: &g.Edges[i].U, V: &g.Edges[i].V}
		if e.HasWeight() {
			w := e.W
			doc.W = &w
		}
		edges = append(edges, doc)
	}

	vertices := g.Vertices
	if vertices == nil {
		vertices = make([]string, 0)
	}

	doc := document{
		Graph: &graphDoc{
			Vertices: vertices,
			Edges:    edges,
		},
		Positions: positions,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}
