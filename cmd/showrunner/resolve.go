package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexuslabs/showrunner"
	"github.com/nexuslabs/showrunner/pkg/domain"
)

// resolveCmd answers a single query without starting a session. Useful for
// checking what the assistant will say before going on stage.
var resolveCmd = &cobra.Command{
	Use:   "resolve [query]",
	Short: "Resolve one query and print the response",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		industry, _ := cmd.Flags().GetString("industry")
		jsonMode, _ := cmd.Flags().GetBool("json")
		query := strings.Join(args, " ")

		eng, err := showrunner.New()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if industry != "" && !eng.SwitchIndustry(domain.Industry(industry)) {
			fmt.Printf("Error: unknown industry %q\n", industry)
			os.Exit(1)
		}

		resp := eng.Ask(query)
		if jsonMode {
			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(out))
			return
		}

		fmt.Println(resp.Content)
		fmt.Printf("\n(tier %d", resp.Tier)
		if resp.Shape != "" {
			fmt.Printf(", shape %s", resp.Shape)
		}
		fmt.Println(")")
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().String("industry", "", "Resolve against this industry's dataset")
	resolveCmd.Flags().Bool("json", false, "Print the full response as JSON")
}
