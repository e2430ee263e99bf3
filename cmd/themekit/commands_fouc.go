package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/themekit/internal/fouc"
	"github.com/AvengeMedia/themekit/internal/log"
)

var foucCmd = &cobra.Command{
	Use:   "fouc",
	Short: "Generate the pre-paint theme-restore script",
	Long:  "Emit the synchronous script that restores the persisted theme before first paint; embed the output in a <script> tag in <head>",
	Args:  cobra.NoArgs,
	Run:   runFouc,
}

func init() {
	foucCmd.Flags().String("config", "", "YAML config file (flags override it)")
	foucCmd.Flags().String("storage", "", "Storage backend: localStorage or cookie")
	foucCmd.Flags().String("default-theme", "", "Theme applied when nothing is persisted")
	foucCmd.Flags().String("default-mode", "", "Mode applied when nothing is persisted: auto, light or dark")
	foucCmd.Flags().Bool("body-reveal", false, "Hide <body> until the theme applies")
	foucCmd.Flags().Int("reveal-timeout", -1, "Reveal safety timeout in milliseconds")
	foucCmd.Flags().Bool("debug-script", false, "Emit a console.debug line in the generated script")
}

func runFouc(cmd *cobra.Command, args []string) {
	cfg := fouc.DefaultConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Error reading config: %v", err)
		}
		cfg, err = fouc.LoadConfig(data)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}

	if v, _ := cmd.Flags().GetString("storage"); v != "" {
		cfg.StorageType = fouc.StorageType(v)
	}
	if v, _ := cmd.Flags().GetString("default-theme"); v != "" {
		cfg.DefaultTheme = v
	}
	if v, _ := cmd.Flags().GetString("default-mode"); v != "" {
		cfg.DefaultMode = fouc.Mode(v)
	}
	if v, _ := cmd.Flags().GetBool("body-reveal"); v {
		cfg.BodyReveal = true
	}
	if v, _ := cmd.Flags().GetInt("reveal-timeout"); v >= 0 {
		cfg.RevealTimeout = v
	}
	if v, _ := cmd.Flags().GetBool("debug-script"); v {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	fmt.Print(fouc.Generate(cfg))
}
