package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/themekit/internal/contrast"
	"github.com/AvengeMedia/themekit/internal/cssvars"
	"github.com/AvengeMedia/themekit/internal/log"
	"github.com/AvengeMedia/themekit/internal/report"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <file.css>",
	Short: "Check WCAG contrast of a theme's color pairs",
	Long:  "Compare foreground-role variables against background-role variables and grade each pair against the WCAG AA/AAA thresholds",
	Args:  cobra.ExactArgs(1),
	Run:   runContrast,
}

func init() {
	contrastCmd.Flags().Bool("json", false, "Output as JSON")
	contrastCmd.Flags().Bool("strict", false, "Exit non-zero when any pair fails AA")
}

func runContrast(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")
	strict, _ := cmd.Flags().GetBool("strict")

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("Error reading file: %v", err)
	}

	pairs := contrast.AnalyzePairs(cssvars.Parse(string(data)))

	if asJSON {
		out, err := json.MarshalIndent(pairs, "", "  ")
		if err != nil {
			log.Fatalf("Error encoding JSON: %v", err)
		}
		fmt.Println(string(out))
	} else {
		fmt.Print(report.Contrast(pairs))
	}

	if strict {
		for _, p := range pairs {
			if !p.WCAG.AA {
				log.Errorf("%s on %s fails AA (%.2f)", p.Foreground.Name, p.Background.Name, p.Ratio)
				os.Exit(1)
			}
		}
	}
}
