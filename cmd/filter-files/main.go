// Package main is the entry point for the filter-files application.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/filter-files/internal/config"
	"github.com/joe/filter-files/internal/filterengine"
	"github.com/joe/filter-files/internal/report"
	"github.com/joe/filter-files/internal/tui"
)

func main() {
	// Parse configuration
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	// Without a terminal there is nothing to interact with, so pipes and
	// redirects get the plain table automatically.
	if cfg.Plain || !isTTY {
		if err := runPlain(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	// Create and run TUI
	model := tui.NewAppModel(cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runPlain performs one scan-filter-print cycle without the TUI.
func runPlain(cfg *config.Config) error {
	engine := filterengine.NewEngine()
	engine.Kind = cfg.Provider
	engine.Excludes = cfg.Excludes

	if cfg.LogPath != "" {
		if err := engine.EnableFileLogging(cfg.LogPath); err != nil {
			return err
		}
		defer engine.CloseLog()
	}

	return report.Run(os.Stdout, engine, cfg.RootPath, cfg.FilterInput())
}
