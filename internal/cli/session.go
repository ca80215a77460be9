package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	"github.com/nexuslabs/showrunner"
	"github.com/nexuslabs/showrunner/internal/presentation/tui"
	"github.com/nexuslabs/showrunner/pkg/domain"
)

// SessionOptions contains all the configuration for the run command.
type SessionOptions struct {
	Debug       bool
	JSON        bool
	MetricsAddr string // overrides config when set
	Arc         string // start a guided arc immediately
}

// session is one interactive console run: the engine plus the rendering
// subscriptions that turn bus events into terminal output.
type session struct {
	eng    *showrunner.Engine
	render func(string) (string, error)
	json   bool
}

// RunSession starts the interactive demo console and blocks until the
// presenter exits or the process is signalled.
func RunSession(opts SessionOptions) error {
	logger := createLogger(opts.Debug)

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	prefs, err := buildPrefsStore(cfg)
	if err != nil {
		return err
	}

	engineOpts := []showrunner.Option{
		showrunner.WithLogger(logger),
		showrunner.WithPrefsStore(prefs),
	}

	metricsAddr := opts.MetricsAddr
	if metricsAddr == "" {
		metricsAddr = cfg.Metrics.Addr
	}
	var shutdownMetrics func(context.Context) error
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		engineOpts = append(engineOpts, showrunner.WithMetrics(reg))
		shutdownMetrics = startMetricsServer(metricsAddr, reg, logger)
	}

	eng, err := showrunner.New(engineOpts...)
	if err != nil {
		return fmt.Errorf("error initializing engine: %w", err)
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !opts.JSON {
		tui.PrintBanner(showrunner.Version)
	}

	s := &session{
		eng:    eng,
		render: tui.NewRenderer(eng.Store().Theme()),
		json:   opts.JSON,
	}
	s.subscribe()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Arc != "" {
		if !eng.Player().Start(domain.ArcID(opts.Arc)) {
			s.unknownArc(opts.Arc)
		}
	} else if !opts.JSON {
		printSystemMessage("Demo ready. Type a question, or /help for commands.")
	}

	s.loop(ctx)

	if shutdownMetrics != nil {
		if err := shutdownMetrics(context.Background()); err != nil {
			logger.Warn("metrics shutdown failed", "err", err)
		}
	}
	return nil
}

// subscribe wires the console as the rendering layer. The console has no
// page mount latency, so navigation intents are acked immediately.
func (s *session) subscribe() {
	bus := s.eng.Store().Bus()

	bus.Subscribe(domain.EventNavigate, func(p any) {
		nav := p.(domain.Navigate)
		printSystemMessage("Opening the %s page...", nav.Page)
		s.eng.Player().PageReady(nav.Page)
	})
	bus.Subscribe(domain.EventNarrate, func(p any) {
		n := p.(domain.Narrate)
		s.print(fmt.Sprintf("**Step %d** · %s", n.Step+1, n.Narration))
	})
	bus.Subscribe(domain.EventHighlight, func(p any) {
		h := p.(domain.Highlight)
		printSystemMessage("Spotlight on %s.", h.Target)
	})
	bus.Subscribe(domain.EventConnectionChanged, func(p any) {
		c := p.(domain.ConnectionChanged)
		printSystemMessage("%s: %s", c.Platform, c.Status)
		if c.Status == domain.StatusConsent {
			printSystemMessage("Waiting for consent. /authorize to approve, /close to dismiss.")
		}
	})
	bus.Subscribe(domain.EventIndustryChanged, func(p any) {
		ic := p.(domain.IndustryChanged)
		printSystemMessage("Industry switched to %s.", ic.Industry)
	})
	bus.Subscribe(domain.EventPersonaChanged, func(p any) {
		pc := p.(domain.PersonaChanged)
		printSystemMessage("Now viewing as %s.", pc.Persona)
	})
	bus.Subscribe(domain.EventThemeChanged, func(p any) {
		tc := p.(domain.ThemeChanged)
		s.render = tui.NewRenderer(tc.Theme)
		printSystemMessage("Theme: %s.", tc.Theme)
	})
	bus.Subscribe(domain.EventArcChanged, func(p any) {
		ac := p.(domain.ArcChanged)
		if ac.Mode == domain.ModeGuided {
			printSystemMessage("Guided arc '%s' started. /next and /prev to move, /exit to leave.", ac.Arc)
		} else {
			printSystemMessage("Back in free exploration.")
		}
	})
}

func (s *session) loop(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Print("> ")
		select {
		case <-ctx.Done():
			fmt.Println()
			printSystemMessage("Interrupted.")
			return
		case line, ok := <-lines:
			if !ok {
				fmt.Println()
				return
			}
			if !s.dispatch(line) {
				return
			}
		}
	}
}

// ask resolves a free-text query and prints the response.
func (s *session) ask(query string) {
	resp := s.eng.Ask(query)

	if s.json {
		out, err := json.Marshal(struct {
			Query string `json:"query"`
			domain.Response
		}{Query: query, Response: resp})
		if err == nil {
			fmt.Println(string(out))
		}
		return
	}
	s.print(tui.FormatResponse(resp))
}

// print renders markdown to the terminal, falling back to the raw text.
func (s *session) print(markdown string) {
	if s.json {
		return
	}
	out, err := s.render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
