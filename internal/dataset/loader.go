package dataset

import (
	"io"
	"log/slog"

	"github.com/nexuslabs/showrunner/internal/state"
	"github.com/nexuslabs/showrunner/pkg/domain"
)

// Loader maps the industry selection onto a dataset and installs it on the
// store. Selection precedence: explicit request, then the persisted value
// the store hydrated with, then the default.
type Loader struct {
	registry *Registry
	store    *state.Store
	logger   *slog.Logger
}

// NewLoader wires a loader to the registry and the state store.
func NewLoader(registry *Registry, store *state.Store, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Loader{registry: registry, store: store, logger: logger}
}

// Resolve installs the dataset for the given industry. An empty explicit
// id falls through to the store's current selection (persisted value or
// default). An explicit id that is unregistered returns absent and changes
// nothing: once the caller asked for something specific, silently serving
// a default instead would lie to the presenter.
func (l *Loader) Resolve(explicit domain.Industry) (*domain.Dataset, bool) {
	id := explicit
	if id == "" {
		id = l.store.Industry()
	}

	ds, ok := l.registry.Load(id)
	if !ok {
		l.logger.Debug("no dataset registered", "industry", string(id))
		return nil, false
	}

	if explicit != "" {
		l.store.SwitchIndustry(id)
	}
	l.store.SetActiveDataset(ds)
	l.logger.Debug("dataset installed", "industry", string(id), "company", ds.Company.Name)
	return ds, true
}
