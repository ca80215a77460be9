// Package ports defines the driven-side interfaces of the engine: durable
// preference storage and deferred-callback scheduling. Adapters implement
// these; the core never imports an adapter.
package ports
