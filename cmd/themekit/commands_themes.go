package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/themekit/internal/log"
	"github.com/AvengeMedia/themekit/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes [dir]",
	Short: "List registered themes",
	Long:  "List built-in themes plus any *.css themes found in the given directory",
	Args:  cobra.MaximumNArgs(1),
	Run:   runThemes,
}

func themeDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func runThemes(cmd *cobra.Command, args []string) {
	reg, err := registry.NewManager(themeDir(args))
	if err != nil {
		log.Fatalf("Error loading themes: %v", err)
	}

	for _, t := range reg.List() {
		origin := "user"
		if t.BuiltIn {
			origin = "built-in"
		}
		fmt.Printf("%-20s %-8s %-8s %s\n", t.Name, t.Variant, origin, t.Display)
	}
}
