/*
Package showrunner is the orchestration core of a scripted product demo.

It keeps cross-page demo state consistent, resolves free-text questions into
pre-authored answers through a tiered matching strategy, simulates external
authorization flows as timed state machines, and plays scripted guided tours
across pages. There is no real backend behind any of it: "AI" answers are
deterministic lookups and "connections" are timed visual simulations.

# Architecture

The engine separates the mutable demo state (one Store, one bus) from the
read-only script data (datasets, arc scripts, response templates) and from
the rendering layer, which subscribes to the bus and is entirely out of
scope here. A presenter's mis-click must never crash the view, so invalid
input degrades to "no visible change" instead of raising.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/nexuslabs/showrunner"
		"github.com/nexuslabs/showrunner/pkg/domain"
	)

	func main() {
		eng, err := showrunner.New()
		if err != nil {
			log.Fatal(err)
		}

		// Subscribe the rendering layer.
		eng.Store().Bus().Subscribe(domain.EventNarrate, func(p any) {
			fmt.Println(p.(domain.Narrate).Narration)
		})

		// Free mode: resolve a query.
		resp := eng.Ask("prep me for this meeting")
		fmt.Println(resp.Content)

		// Guided mode: play an arc.
		eng.Player().Start("executive-overview")
		eng.Player().PageReady("dashboard")
	}
*/
package showrunner
