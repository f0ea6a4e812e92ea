package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dd0wney/mstviz/pkg/config"
	"github.com/dd0wney/mstviz/pkg/graph"
	"github.com/dd0wney/mstviz/pkg/interchange"
	"github.com/dd0wney/mstviz/pkg/layout"
	"github.com/dd0wney/mstviz/pkg/presets"
	"github.com/dd0wney/mstviz/pkg/session"
)

// applyPreset replaces the session contents with a preset, laid out on
// a circle.
func applyPreset(sess *session.Session, cfg *config.Config, p presets.Preset) {
	sess.Replace(p.Graph, layout.Circular(p.Graph, cfg.Canvas))
}

func (m *model) ok(format string, args ...any) {
	m.message = fmt.Sprintf(format, args...)
	m.messageErr = false
}

func (m *model) fail(format string, args ...any) {
	m.message = fmt.Sprintf(format, args...)
	m.messageErr = true
}

// executeCommand parses and runs one line from the command input.
func (m *model) executeCommand(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "vertex", "v":
		m.addVertex(args)
	case "rmvertex", "rmv":
		m.removeVertex(args)
	case "edge", "e":
		m.addEdge(args)
	case "rmedge", "rme":
		m.removeEdge(args)
	case "weight", "w":
		m.updateWeight(args)
	case "move":
		m.moveVertex(args)
	case "layout":
		g := m.sess.Graph()
		m.sess.Replace(g, layout.Circular(g, m.cfg.Canvas))
		m.ok("re-laid out %d vertices", len(g.Vertices))
	case "preset":
		m.loadPreset(args)
	case "presets":
		m.ok("available: %s", strings.Join(presets.Names(), ", "))
	case "save":
		m.save(args)
	case "load":
		m.load(args)
	case "clear":
		m.sess.Replace(graph.New(), nil)
		m.ok("graph cleared")
	case "run":
		if _, ok := m.sess.Run(); ok {
			m.message = ""
		} else {
			m.fail("cannot run: fix the validation errors first")
		}
	default:
		m.fail("unknown command %q", cmd)
	}
}

func (m *model) addVertex(args []string) {
	label := ""
	if len(args) > 0 {
		label = args[0]
	}
	before := len(m.sess.Graph().Vertices)
	m.sess.AddVertex(label, layout.PlaceNew(m.sess.Graph(), m.cfg.Canvas))
	if len(m.sess.Graph().Vertices) == before {
		m.fail("vertex %q already exists", label)
		return
	}
	g := m.sess.Graph()
	m.ok("added vertex %s", g.Vertices[len(g.Vertices)-1])
}

func (m *model) removeVertex(args []string) {
	if len(args) != 1 {
		m.fail("usage: rmvertex <label>")
		return
	}
	before := len(m.sess.Graph().Vertices)
	m.sess.RemoveVertex(args[0])
	if len(m.sess.Graph().Vertices) == before {
		m.fail("no vertex %q", args[0])
		return
	}
	m.ok("removed vertex %s and its edges", args[0])
}

func (m *model) addEdge(args []string) {
	if len(args) < 2 || len(args) > 3 {
		m.fail("usage: edge <u> <v> [weight]")
		return
	}
	// A missing weight is allowed through so validation can flag it.
	w := math.NaN()
	if len(args) == 3 {
		parsed, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			m.fail("bad weight %q", args[2])
			return
		}
		w = parsed
	}
	before := len(m.sess.Graph().Edges)
	m.sess.AddEdge(args[0], args[1], w)
	if len(m.sess.Graph().Edges) == before {
		m.fail("edge %s-%s rejected (self-loop or duplicate)", args[0], args[1])
		return
	}
	m.ok("added edge %s-%s", args[0], args[1])
}

func (m *model) removeEdge(args []string) {
	if len(args) != 2 {
		m.fail("usage: rmedge <u> <v>")
		return
	}
	before := len(m.sess.Graph().Edges)
	m.sess.RemoveEdge(args[0], args[1])
	if len(m.sess.Graph().Edges) == before {
		m.fail("no edge %s-%s", args[0], args[1])
		return
	}
	m.ok("removed edge %s-%s", args[0], args[1])
}

func (m *model) updateWeight(args []string) {
	if len(args) != 3 {
		m.fail("usage: weight <u> <v> <weight>")
		return
	}
	w, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		m.fail("bad weight %q", args[2])
		return
	}
	if !graph.HasEdge(m.sess.Graph(), args[0], args[1]) {
		m.fail("no edge %s-%s", args[0], args[1])
		return
	}
	m.sess.UpdateEdgeWeight(args[0], args[1], w)
	m.ok("edge %s-%s now weighs %v", args[0], args[1], w)
}

func (m *model) moveVertex(args []string) {
	if len(args) != 3 {
		m.fail("usage: move <label> <x> <y>")
		return
	}
	x, errX := strconv.ParseFloat(args[1], 64)
	y, errY := strconv.ParseFloat(args[2], 64)
	if errX != nil || errY != nil {
		m.fail("bad coordinates %q %q", args[1], args[2])
		return
	}
	if !graph.HasVertex(m.sess.Graph(), args[0]) {
		m.fail("no vertex %q", args[0])
		return
	}
	m.sess.MoveVertex(args[0], graph.Position{X: x, Y: y})
	m.ok("moved %s to (%v, %v)", args[0], x, y)
}

func (m *model) loadPreset(args []string) {
	if len(args) != 1 {
		m.fail("usage: preset <name> (try: %s)", strings.Join(presets.Names(), ", "))
		return
	}
	p, err := presets.Load(args[0])
	if err != nil {
		m.fail("%v (available: %s)", err, strings.Join(presets.Names(), ", "))
		return
	}
	applyPreset(m.sess, m.cfg, p)
	m.ok("loaded preset %s: %s", p.Name, p.Description)
}

func (m *model) save(args []string) {
	if len(args) != 1 {
		m.fail("usage: save <path> (.mstz saves compressed)")
		return
	}
	path := args[0]

	var data []byte
	var err error
	if strings.HasSuffix(path, ".mstz") {
		data, err = interchange.EncodeCompressed(m.sess.Graph(), m.sess.Positions())
	} else {
		data, err = interchange.Export(m.sess.Graph(), m.sess.Positions())
	}
	if err != nil {
		m.fail("export failed: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		m.fail("write %s: %v", path, err)
		return
	}
	m.ok("saved to %s", path)
}

func (m *model) load(args []string) {
	if len(args) != 1 {
		m.fail("usage: load <path>")
		return
	}
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		m.fail("read %s: %v", path, err)
		return
	}

	var g graph.Graph
	var positions map[string]graph.Position
	if strings.HasSuffix(path, ".mstz") {
		g, positions, err = interchange.DecodeCompressed(data)
	} else {
		g, positions, err = interchange.Import(data)
	}
	if err != nil {
		// Format failure: current session state stays untouched.
		m.fail("import failed: %v", err)
		return
	}

	if len(positions) == 0 {
		positions = layout.Circular(g, m.cfg.Canvas)
	}
	m.sess.Replace(g, positions)
	m.ok("loaded %s: %d vertices, %d edges", path, len(g.Vertices), len(g.Edges))
}
