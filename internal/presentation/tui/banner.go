package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Showrunner.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Amber-to-rose gradient, one color per line.
	lines := []struct {
		text  string
		color string
	}{
		{`  ___ _                                              `, "#fbbf24"},
		{` / __| |_  _____ __ ___ _ _  _ _ _ _  ___ _ _        `, "#f59e0b"},
		{` \__ \ ' \/ _ \ V  V / '_| || | ' \| '_ \/ -_) '_|   `, "#f97316"},
		{` |___/_||_\___/\_/\_/|_|  \_,_|_||_|_||_|_||_\___|_| `, "#fb7185"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println(termenv.String(fmt.Sprintf("  v%s", version)).Faint())
	fmt.Println()
}
