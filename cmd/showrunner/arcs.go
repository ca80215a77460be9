package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexuslabs/showrunner"
)

var arcsCmd = &cobra.Command{
	Use:   "arcs",
	Short: "List the guided arcs",
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := showrunner.New()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		for _, a := range eng.Arcs() {
			fmt.Printf("%-20s %s (for %s, %d steps)\n", a.ID, a.Title, a.Audience, len(a.Steps))
		}
	},
}

func init() {
	rootCmd.AddCommand(arcsCmd)
}
