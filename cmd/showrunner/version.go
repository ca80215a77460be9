package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexuslabs/showrunner"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of showrunner",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("showrunner version %s\n", showrunner.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
