package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/themekit/internal/blindness"
	"github.com/AvengeMedia/themekit/internal/cssvars"
	"github.com/AvengeMedia/themekit/internal/log"
	"github.com/AvengeMedia/themekit/internal/report"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <file.css>",
	Short: "Simulate color vision deficiencies",
	Long:  "Transform a theme's colors through simulated color vision deficiencies and report how far each color shifts perceptually",
	Args:  cobra.ExactArgs(1),
	Run:   runSimulate,
}

func init() {
	simulateCmd.Flags().String("type", "", "Deficiency type: protanopia, deuteranopia, tritanopia or achromatopsia (default all)")
	simulateCmd.Flags().Bool("json", false, "Output as JSON")
}

func runSimulate(cmd *cobra.Command, args []string) {
	typeFlag, _ := cmd.Flags().GetString("type")
	asJSON, _ := cmd.Flags().GetBool("json")

	types := blindness.Types()
	if typeFlag != "" {
		t := blindness.Type(typeFlag)
		if !t.Valid() {
			log.Fatalf("Invalid deficiency type: %s", typeFlag)
		}
		types = []blindness.Type{t}
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("Error reading file: %v", err)
	}
	vars := cssvars.Parse(string(data))

	if asJSON {
		out := make(map[blindness.Type][]blindness.Result, len(types))
		for _, t := range types {
			out[t] = blindness.Simulate(vars, t)
		}
		enc, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			log.Fatalf("Error encoding JSON: %v", err)
		}
		fmt.Println(string(enc))
		return
	}

	for i, t := range types {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(report.Simulation(blindness.Simulate(vars, t), t))
	}
}
