// Package respond resolves free-text queries into scripted responses
// through a three-tier matching strategy: authored showcase answers,
// keyword-scored categories, and a deterministic structural fallback.
package respond

import (
	"io"
	"log/slog"
	"strings"

	"github.com/nexuslabs/showrunner/pkg/domain"
)

// ResolveContext is the read-only context a resolution runs against.
// The engine never mutates it.
type ResolveContext struct {
	Dataset *domain.Dataset
	Persona domain.Persona
}

// Engine is a pure resolver. Its only state is the static registry of
// templates; identical (query, context) pairs always produce identical
// responses.
type Engine struct {
	showcase   []showcaseEntry
	categories []category
	logger     *slog.Logger
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine builds the resolver with the authored registries.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		showcase:   showcaseRegistry(),
		categories: categoryRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return e
}

// normalize prepares a query for matching: trimmed and case-folded.
func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Resolve runs the tiers in precedence order and always returns a
// well-formed response tagged with the tier that produced it.
func (e *Engine) Resolve(query string, ctx ResolveContext) domain.Response {
	q := normalize(query)

	// Tier 1: exact match against authored trigger phrases.
	for _, entry := range e.showcase {
		if q == entry.trigger {
			e.logger.Debug("resolved query", "tier", 1, "trigger", entry.trigger)
			return domain.Response{
				Content:   interpolate(entry.template, ctx),
				Tier:      domain.TierShowcase,
				ToolChips: append([]string(nil), entry.toolChips...),
				FollowUps: append([]string(nil), entry.followUps...),
			}
		}
	}

	// Tier 2: keyword scoring. Highest score wins; ties break toward the
	// earliest registered category, so iteration only replaces on a
	// strictly greater score.
	var best *category
	bestScore := 0
	for i := range e.categories {
		score := e.categories[i].score(q)
		if score > bestScore {
			best = &e.categories[i]
			bestScore = score
		}
	}
	if best != nil {
		e.logger.Debug("resolved query", "tier", 2, "category", best.id, "score", bestScore)
		return domain.Response{
			Content:   interpolate(best.template, ctx),
			Tier:      domain.TierCategory,
			ToolChips: append([]string(nil), best.toolChips...),
			FollowUps: append([]string(nil), best.followUps...),
		}
	}

	// Tier 3: structural fallback, picked by a fixed rule over the query
	// shape. Never random; reproducibility is the point.
	shape := chooseShape(q)
	e.logger.Debug("resolved query", "tier", 3, "shape", string(shape))
	return domain.Response{
		Content: interpolate(fallbackTemplate(shape), ctx),
		Tier:    domain.TierFallback,
		Shape:   shape,
	}
}
