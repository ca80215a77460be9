package cli

import (
	"fmt"
	"strings"

	"github.com/nexuslabs/showrunner/pkg/domain"
)

// dispatch routes one input line. Lines starting with "/" are console
// commands; anything else goes to the response engine. Returns false when
// the session should end.
func (s *session) dispatch(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	if !strings.HasPrefix(line, "/") {
		s.ask(line)
		return true
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, "/"), " ")
	cmd = strings.ToLower(cmd)
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "quit", "q":
		return false

	case "help":
		s.printHelp()

	case "status":
		s.printStatus()

	case "industry":
		if arg == "" {
			printSystemMessage("Usage: /industry <%s>", joinIndustries())
			return true
		}
		if !s.eng.SwitchIndustry(domain.Industry(arg)) {
			s.unknownID(arg, industryIDs())
		}

	case "persona":
		if arg == "" {
			printSystemMessage("Usage: /persona <%s>", joinPersonas())
			return true
		}
		p := domain.Persona(arg)
		if !p.Valid() {
			s.unknownID(arg, personaIDs())
			return true
		}
		s.eng.SwitchPersona(p)

	case "theme":
		s.eng.Store().ToggleTheme()

	case "ai":
		mode := s.eng.Store().ToggleAIMode()
		printSystemMessage("AI mode: %s.", mode)

	case "connect":
		if arg == "" {
			printSystemMessage("Usage: /connect <%s>", joinPlatforms())
			return true
		}
		if _, ok := s.eng.Simulator().Show(domain.Platform(arg)); !ok {
			s.unknownID(arg, platformIDs())
		}

	case "authorize":
		s.eng.Simulator().Authorize()

	case "close", "cancel":
		s.eng.Simulator().Close()

	case "arcs":
		for _, a := range s.eng.Arcs() {
			fmt.Printf("  %-20s %s (for %s, %d steps)\n", a.ID, a.Title, a.Audience, len(a.Steps))
		}

	case "arc":
		if arg == "" {
			printSystemMessage("Usage: /arc <id>. See /arcs for the list.")
			return true
		}
		if !s.eng.Player().Start(domain.ArcID(arg)) {
			s.unknownArc(arg)
		}

	case "next", "n":
		s.eng.Player().Next()

	case "prev", "p":
		s.eng.Player().Prev()

	case "exit":
		s.eng.Player().Exit()

	default:
		printSystemMessage("Unknown command /%s. Try /help.", cmd)
	}
	return true
}

func (s *session) printHelp() {
	fmt.Print(`  /industry <id>   switch the sample dataset
  /persona <id>    switch the role view
  /theme           toggle dark/light
  /ai              toggle scripted/live badge
  /connect <id>    simulate connecting a platform
  /authorize       approve the consent screen
  /close           dismiss the connect overlay
  /arcs            list guided arcs
  /arc <id>        start a guided arc
  /next, /prev     move through the arc
  /exit            leave guided mode
  /status          show the current demo state
  /quit            end the session

  Anything else is sent to the assistant.
`)
}

func (s *session) printStatus() {
	snap := s.eng.Store().Snapshot()
	fmt.Printf("  industry: %s  persona: %s  theme: %s  ai: %s  mode: %s\n",
		snap.Industry, snap.Persona, snap.Theme, snap.AIMode, snap.DemoMode)
	if snap.DemoMode == domain.ModeGuided {
		fmt.Printf("  arc: %s  step: %d\n", snap.CurrentArc, snap.CurrentStep+1)
	}
	if len(snap.Connections) == 0 {
		fmt.Println("  connections: none")
		return
	}
	for _, p := range domain.Platforms() {
		if status, ok := snap.Connections[p]; ok {
			fmt.Printf("  %s: %s\n", p, status)
		}
	}
}

// unknownID reports an invalid enum id, with a "did you mean" nudge when a
// candidate is close enough.
func (s *session) unknownID(input string, candidates []string) {
	if near, ok := suggest(input, candidates); ok {
		printSystemMessage("Unknown id %q. Did you mean %q?", input, near)
		return
	}
	printSystemMessage("Unknown id %q. Valid: %s.", input, strings.Join(candidates, ", "))
}

func (s *session) unknownArc(input string) {
	ids := make([]string, 0, len(s.eng.Arcs()))
	for _, a := range s.eng.Arcs() {
		ids = append(ids, string(a.ID))
	}
	s.unknownID(input, ids)
}

func industryIDs() []string {
	out := make([]string, 0, len(domain.Industries()))
	for _, id := range domain.Industries() {
		out = append(out, string(id))
	}
	return out
}

func personaIDs() []string {
	out := make([]string, 0, len(domain.Personas()))
	for _, id := range domain.Personas() {
		out = append(out, string(id))
	}
	return out
}

func platformIDs() []string {
	out := make([]string, 0, len(domain.Platforms()))
	for _, id := range domain.Platforms() {
		out = append(out, string(id))
	}
	return out
}

func joinIndustries() string { return strings.Join(industryIDs(), "|") }
func joinPersonas() string   { return strings.Join(personaIDs(), "|") }
func joinPlatforms() string  { return strings.Join(platformIDs(), "|") }
