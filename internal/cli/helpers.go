package cli

import (
	"fmt"
	"log/slog"

	"github.com/agnivade/levenshtein"
	goredis "github.com/redis/go-redis/v9"

	"github.com/nexuslabs/showrunner/internal/logging"
	prefsfile "github.com/nexuslabs/showrunner/pkg/adapters/prefs/file"
	prefsmem "github.com/nexuslabs/showrunner/pkg/adapters/prefs/memory"
	prefsredis "github.com/nexuslabs/showrunner/pkg/adapters/prefs/redis"
	"github.com/nexuslabs/showrunner/pkg/ports"
)

// createLogger configures the application logger.
// In debug mode it writes to Stderr, separate from the Stdout demo flow.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

// buildPrefsStore selects the preference backend from config.
func buildPrefsStore(cfg Config) (ports.PrefsStore, error) {
	switch cfg.Prefs.Backend {
	case "memory":
		return prefsmem.NewStore(), nil
	case "file", "":
		return prefsfile.NewStore(cfg.Prefs.Path), nil
	case "redis":
		opt, err := goredis.ParseURL(cfg.Prefs.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return prefsredis.NewFromClient(goredis.NewClient(opt)), nil
	default:
		return nil, fmt.Errorf("unknown prefs backend %q", cfg.Prefs.Backend)
	}
}

// suggest finds the closest candidate to a mistyped id. Candidates further
// than two edits away are not worth proposing.
func suggest(input string, candidates []string) (string, bool) {
	best := ""
	bestDist := 3
	for _, c := range candidates {
		if dist := levenshtein.ComputeDistance(input, c); dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	return best, best != ""
}
