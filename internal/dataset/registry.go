// Package dataset resolves an industry selection into its sample data
// bundle and installs it as the active dataset.
package dataset

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/nexuslabs/showrunner/pkg/domain"
)

//go:embed data/*.yaml
var dataFS embed.FS

// datasetFile is the on-disk shape. Metrics arrive as a loose map and are
// decoded into the typed struct so templates never touch raw YAML values.
type datasetFile struct {
	domain.Dataset `yaml:",inline"`
	RawMetrics     map[string]any `yaml:"metrics"`
}

// Registry holds the datasets parsed from the embedded script data.
type Registry struct {
	byIndustry map[domain.Industry]*domain.Dataset
}

// NewRegistry parses every embedded dataset file.
func NewRegistry() (*Registry, error) {
	r := &Registry{byIndustry: make(map[domain.Industry]*domain.Dataset)}

	entries, err := fs.Glob(dataFS, "data/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to glob datasets: %w", err)
	}

	for _, name := range entries {
		raw, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset %s: %w", name, err)
		}

		var df datasetFile
		if err := yaml.Unmarshal(raw, &df); err != nil {
			return nil, fmt.Errorf("failed to parse dataset %s: %w", name, err)
		}
		if !df.Industry.Valid() {
			return nil, fmt.Errorf("dataset %s declares unknown industry %q", name, df.Industry)
		}
		if err := mapstructure.Decode(df.RawMetrics, &df.Dataset.Metrics); err != nil {
			return nil, fmt.Errorf("failed to decode metrics for %s: %w", name, err)
		}

		ds := df.Dataset
		r.byIndustry[ds.Industry] = &ds
	}

	return r, nil
}

// Load returns the dataset for an industry, or absent when the id is
// unregistered. Callers decide how to handle the absent case; the registry
// never falls back to a default.
func (r *Registry) Load(id domain.Industry) (*domain.Dataset, bool) {
	ds, ok := r.byIndustry[id]
	return ds, ok
}

// Industries lists the registered industries.
func (r *Registry) Industries() []domain.Industry {
	out := make([]domain.Industry, 0, len(r.byIndustry))
	for _, id := range domain.Industries() {
		if _, ok := r.byIndustry[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
