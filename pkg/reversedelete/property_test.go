package reversedelete

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/mstviz/pkg/graph"
	"github.com/dd0wney/mstviz/pkg/validation"
)

// randomConnectedGraph builds a graph that is connected by construction:
// a spanning path over n vertices plus a few random extra edges, all
// with positive weights. Deterministic for a given seed.
func randomConnectedGraph(n int, seed int64) graph.Graph {
	rng := rand.New(rand.NewSource(seed))

	g := graph.New()
	for i := 0; i < n; i++ {
		g.Vertices = append(g.Vertices, fmt.Sprintf("V%d", i))
	}

	// Spanning path guarantees connectivity.
	for i := 1; i < n; i++ {
		g.Edges = append(g.Edges, graph.Edge{
			U: g.Vertices[i-1],
			V: g.Vertices[i],
			W: float64(rng.Intn(20) + 1),
		})
	}

	// Sprinkle extra edges, skipping pairs already joined.
	extras := rng.Intn(n * 2)
	for i := 0; i < extras; i++ {
		u := g.Vertices[rng.Intn(n)]
		v := g.Vertices[rng.Intn(n)]
		if u == v || graph.HasEdge(g, u, v) {
			continue
		}
		g.Edges = append(g.Edges, graph.Edge{U: u, V: v, W: float64(rng.Intn(20) + 1)})
	}

	return g
}

// TestRunProperties verifies the universal trace invariants over
// randomly generated connected graphs.
func TestRunProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("final snapshot is a spanning tree", prop.ForAll(
		func(n int, seed int64) bool {
			g := randomConnectedGraph(n, seed)
			if len(validation.Validate(g)) != 0 {
				return true // generator bug guard, not the property under test
			}

			steps := Run(g)
			if len(steps) < 2 {
				return false
			}
			final := steps[len(steps)-2].Snapshot
			return len(final.Edges) == len(final.Vertices)-1 && graph.IsConnected(final)
		},
		gen.IntRange(2, 10),
		gen.Int64(),
	))

	properties.Property("trace edges are a subset of input edges", prop.ForAll(
		func(n int, seed int64) bool {
			g := randomConnectedGraph(n, seed)
			steps := Run(g)
			for _, s := range steps {
				for _, e := range s.Snapshot.Edges {
					if !graph.HasEdge(g, e.U, e.V) {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(2, 10),
		gen.Int64(),
	))

	properties.Property("trace ends with exactly one complete step", prop.ForAll(
		func(n int, seed int64) bool {
			g := randomConnectedGraph(n, seed)
			steps := Run(g)
			completes := 0
			for _, s := range steps {
				if s.Kind == Complete {
					completes++
				}
			}
			return completes == 1 && steps[len(steps)-1].Kind == Complete
		},
		gen.IntRange(2, 10),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
