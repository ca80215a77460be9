// Package tui renders engine output for the terminal host.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/nexuslabs/showrunner/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour,
// styled for the given theme. Falls back to plain text when the renderer
// cannot be built (e.g. no TTY capabilities).
func NewRenderer(theme domain.Theme) func(string) (string, error) {
	style := glamour.WithStandardStyle("dark")
	if theme == domain.ThemeLight {
		style = glamour.WithStandardStyle("light")
	}

	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// FormatResponse lays out a resolved response as markdown: the answer body,
// then the tool chips and follow-up suggestions when present.
func FormatResponse(resp domain.Response) string {
	var b strings.Builder
	b.WriteString(resp.Content)

	if len(resp.ToolChips) > 0 {
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("*Sources: %s*", strings.Join(resp.ToolChips, ", ")))
	}
	if len(resp.FollowUps) > 0 {
		b.WriteString("\n\n**You could also ask:**\n")
		for _, f := range resp.FollowUps {
			b.WriteString(fmt.Sprintf("- %s\n", f))
		}
	}
	return b.String()
}
