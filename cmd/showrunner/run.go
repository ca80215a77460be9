package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexuslabs/showrunner/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive demo console",
	Long: `Starts the demo console: type questions for the assistant, or use
slash commands to switch industry and persona, simulate connections, and
play guided arcs. See /help inside the session.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		jsonMode, _ := cmd.Flags().GetBool("json")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
		arc, _ := cmd.Flags().GetString("arc")

		err := cli.RunSession(cli.SessionOptions{
			Debug:       debug,
			JSON:        jsonMode,
			MetricsAddr: metricsAddr,
			Arc:         arc,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Emit assistant responses as JSON lines")
	runCmd.Flags().String("metrics-addr", "", "Expose prometheus metrics on this address (e.g. :9090)")
	runCmd.Flags().String("arc", "", "Start a guided arc immediately")

	// Make 'run' the default when no subcommand is given.
	rootCmd.Run = runCmd.Run
}
