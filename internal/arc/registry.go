// Package arc plays pre-scripted guided walkthroughs across the demo's
// pages, driving navigation and narration intents through the state bus.
package arc

import (
	"embed"
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nexuslabs/showrunner/pkg/domain"
)

//go:embed scripts/*.yaml
var scriptFS embed.FS

// stepFile is the on-disk step shape. Durations are written as strings
// ("4s") and parsed here so scripts stay readable.
type stepFile struct {
	TargetPage       string `yaml:"target_page"`
	Narration        string `yaml:"narration"`
	HighlightTarget  string `yaml:"highlight_target"`
	AutoAdvanceAfter string `yaml:"auto_advance_after"`
}

type arcFile struct {
	ID       string     `yaml:"id"`
	Title    string     `yaml:"title"`
	Audience string     `yaml:"audience"`
	Steps    []stepFile `yaml:"steps"`
}

// Registry holds the arcs parsed from the embedded scripts.
type Registry struct {
	byID  map[domain.ArcID]*domain.Arc
	order []domain.ArcID
}

// NewRegistry parses every embedded arc script.
func NewRegistry() (*Registry, error) {
	r := &Registry{byID: make(map[domain.ArcID]*domain.Arc)}

	entries, err := fs.Glob(scriptFS, "scripts/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to glob arc scripts: %w", err)
	}

	for _, name := range entries {
		raw, err := scriptFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read arc script %s: %w", name, err)
		}

		var af arcFile
		if err := yaml.Unmarshal(raw, &af); err != nil {
			return nil, fmt.Errorf("failed to parse arc script %s: %w", name, err)
		}
		if af.ID == "" || len(af.Steps) == 0 {
			return nil, fmt.Errorf("arc script %s needs an id and at least one step", name)
		}

		a := &domain.Arc{
			ID:       domain.ArcID(af.ID),
			Title:    af.Title,
			Audience: domain.Persona(af.Audience),
			Steps:    make([]domain.Step, 0, len(af.Steps)),
		}
		for i, sf := range af.Steps {
			step := domain.Step{
				TargetPage:      domain.Page(sf.TargetPage),
				Narration:       sf.Narration,
				HighlightTarget: sf.HighlightTarget,
			}
			if sf.AutoAdvanceAfter != "" {
				d, err := time.ParseDuration(sf.AutoAdvanceAfter)
				if err != nil {
					return nil, fmt.Errorf("arc %s step %d: bad auto_advance_after: %w", af.ID, i, err)
				}
				step.AutoAdvanceAfter = d
			}
			a.Steps = append(a.Steps, step)
		}

		r.byID[a.ID] = a
		r.order = append(r.order, a.ID)
	}

	return r, nil
}

// Load returns the arc for an id, or absent when unregistered.
func (r *Registry) Load(id domain.ArcID) (*domain.Arc, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// Arcs lists the registered arcs in file order.
func (r *Registry) Arcs() []*domain.Arc {
	out := make([]*domain.Arc, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
