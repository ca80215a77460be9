package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "showrunner",
	Short: "Showrunner drives a scripted, deterministic product demo",
	Long: `Showrunner is the orchestration engine behind a live product demo:
a pre-scripted assistant, simulated platform connections, and guided
tours, all deterministic and all safe to drive in front of an audience.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}
