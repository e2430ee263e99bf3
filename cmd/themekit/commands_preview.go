package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/themekit/internal/log"
	"github.com/AvengeMedia/themekit/internal/registry"
	"github.com/AvengeMedia/themekit/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview [dir]",
	Short: "Browse themes interactively",
	Long:  "Open an interactive browser with color swatches and contrast grades; themes in the given directory reload live on change",
	Args:  cobra.MaximumNArgs(1),
	Run:   runPreview,
}

func runPreview(cmd *cobra.Command, args []string) {
	reg, err := registry.NewManager(themeDir(args))
	if err != nil {
		log.Fatalf("Error loading themes: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan struct{}, 1)
	go func() {
		if err := reg.Watch(ctx, func() {
			select {
			case reloads <- struct{}{}:
			default:
			}
		}); err != nil {
			log.Warnf("Theme watcher unavailable: %v", err)
		}
	}()

	p := tea.NewProgram(tui.NewModel(reg, reloads), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Preview failed: %v", err)
	}
}
