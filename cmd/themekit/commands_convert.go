package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/themekit/internal/color"
	"github.com/AvengeMedia/themekit/internal/log"
	"github.com/AvengeMedia/themekit/internal/report"
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color between spaces",
	Long:  "Parse a CSS color literal (oklch, hex, rgb or hsl) and print every representation",
	Args:  cobra.ExactArgs(1),
	Run:   runConvert,
}

func runConvert(cmd *cobra.Command, args []string) {
	c := color.Parse(args[0])
	if c == nil {
		log.Fatalf("Not a recognized color: %s", args[0])
	}
	fmt.Print(report.Color(c))
}
