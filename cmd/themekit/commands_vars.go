package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/themekit/internal/cssvars"
	"github.com/AvengeMedia/themekit/internal/log"
	"github.com/AvengeMedia/themekit/internal/report"
)

var varsCmd = &cobra.Command{
	Use:   "vars <file.css>",
	Short: "List custom properties in a theme stylesheet",
	Long:  "Parse a stylesheet's CSS custom properties and show each one with its category, semantic role and parsed color",
	Args:  cobra.ExactArgs(1),
	Run:   runVars,
}

func init() {
	varsCmd.Flags().Bool("json", false, "Output as JSON")
	varsCmd.Flags().Bool("colors-only", false, "Only show variables that parsed as colors")
}

func runVars(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")
	colorsOnly, _ := cmd.Flags().GetBool("colors-only")

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("Error reading file: %v", err)
	}

	vars := cssvars.Parse(string(data))
	if colorsOnly {
		vars = cssvars.Colors(vars)
	}

	if asJSON {
		out, err := json.MarshalIndent(vars, "", "  ")
		if err != nil {
			log.Fatalf("Error encoding JSON: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Print(report.Variables(vars))
}
