package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/segedit/internal/config"
	"github.com/jask/segedit/internal/tui"
)

const version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		themeFlag   string
		minFlag     string
		maxFlag     string
		compassFlag string
	)

	cmd := &cobra.Command{
		Use:     "segedit",
		Short:   "Segmented value editors for the terminal",
		Long:    "segedit hosts a bank of segmented editors for timestamps, clock times and angles: per-digit rolling with carry, typed digit entry, gesture previews and partially specified bounds.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if themeFlag != "" {
				cfg.UI.Theme = themeFlag
			}
			if minFlag != "" {
				cfg.Time.Min = minFlag
			}
			if maxFlag != "" {
				cfg.Time.Max = maxFlag
			}
			if compassFlag != "" {
				cfg.Angle.Compass = compassFlag
			}

			app, err := tui.New(cfg)
			if err != nil {
				log.Fatalf("editor setup: %v", err)
			}
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&themeFlag, "theme", "", "theme variant: dark or light")
	cmd.Flags().StringVar(&minFlag, "min", "", "timestamp lower bound, full or partial (e.g. 2020 or 2020-06)")
	cmd.Flags().StringVar(&maxFlag, "max", "", "timestamp upper bound, full or partial")
	cmd.Flags().StringVar(&compassFlag, "compass", "", "angle hemisphere vocabulary: none, ns or ew")
	return cmd
}
