// Package domain contains the core types shared across the Showrunner
// orchestration engine: demo state enums, arc scripts, datasets, responses
// and the typed event payloads published on the state bus.
//
// The package is dependency-free on purpose. Components in internal/ and
// adapters depend on domain, never the other way around.
package domain
