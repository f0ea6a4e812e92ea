package presets

import (
	"testing"

	"github.com/dd0wney/mstviz/pkg/validation"
)

func TestAllPresetsValidate(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", name, err)
			}
			if errors := validation.Validate(p.Graph); len(errors) != 0 {
				t.Errorf("preset %q must be runnable as shipped, got %v", name, errors)
			}
		})
	}
}

func TestLoad_ReturnsCopy(t *testing.T) {
	first, _ := Load("triangle")
	first.Graph.Edges[0].W = 999

	second, _ := Load("triangle")
	if second.Graph.Edges[0].W == 999 {
		t.Error("Load must return an isolated copy")
	}
}

func TestLoad_UnknownName(t *testing.T) {
	if _, err := Load("nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
