// Package layout computes default vertex positions. The session core
// treats positions as opaque auxiliary state; this package is how the
// UI fills them in when an imported document or a new vertex has none.
package layout

import (
	"math"

	"github.com/dd0wney/mstviz/pkg/config"
	"github.com/dd0wney/mstviz/pkg/graph"
)

const defaultPadding = 50.0

// Circular arranges the graph's vertices evenly on a circle, in
// insertion order starting at three o'clock. Deterministic: the same
// vertex list and canvas always produce the same positions.
func Circular(g graph.Graph, canvas config.CanvasConf) map[string]graph.Position {
	positions := make(map[string]graph.Position, len(g.Vertices))
	if len(g.Vertices) == 0 {
		return positions
	}

	centerX := canvas.Width / 2
	centerY := canvas.Height / 2

	if len(g.Vertices) == 1 {
		positions[g.Vertices[0]] = graph.Position{X: centerX, Y: centerY}
		return positions
	}

	radius := math.Min(centerX, centerY) - defaultPadding
	angleStep := 2 * math.Pi / float64(len(g.Vertices))

	for i, label := range g.Vertices {
		angle := float64(i) * angleStep
		positions[label] = graph.Position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}

	return positions
}

// PlaceNew picks a position for one new vertex: the next slot on the
// circle after the existing vertices.
func PlaceNew(g graph.Graph, canvas config.CanvasConf) graph.Position {
	centerX := canvas.Width / 2
	centerY := canvas.Height / 2
	radius := math.Min(centerX, centerY) - defaultPadding

	angle := float64(len(g.Vertices)) * math.Pi / 6
	return graph.Position{
		X: centerX + radius*math.Cos(angle),
		Y: centerY + radius*math.Sin(angle),
	}
}
