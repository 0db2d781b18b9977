// Package main is the entry point for the ccdash terminal dashboard.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoss/ccdash/internal/app"
	"github.com/nvoss/ccdash/internal/config"
	"github.com/nvoss/ccdash/internal/services"
	"github.com/nvoss/ccdash/internal/ui/tabs/info"
	"github.com/nvoss/ccdash/internal/ui/tabs/overview"
	"github.com/nvoss/ccdash/internal/ui/tabs/projects"
	"github.com/nvoss/ccdash/internal/ui/tabs/sessions"
	"github.com/nvoss/ccdash/internal/version"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Handle help flag
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	// 1. Load configuration from .env files and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize the service manager
	// This starts the usage loader and the transcript file watcher
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Ensure cleanup on exit
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	// 3. Create the shared state and the root Bubble Tea model
	state := app.NewState(cfg.DefaultRange)
	model := app.NewModel(svcManager, state)

	// 4. Initialize tabs with shared state
	tabs := []app.Tab{
		overview.New(state),  // Tab 0: Overview - totals and per-model breakdown
		projects.New(state),  // Tab 1: Projects - per-project cost ranking
		sessions.New(state),  // Tab 2: Sessions - per-session history
		info.New(state, cfg), // Tab 3: Info - configuration and app info
	}
	model.SetTabs(tabs)

	// 5. Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	// Blocks until the user quits or an error occurs
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`ccdash - Claude Code usage dashboard

Usage:
  ccdash [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-4             Switch between tabs (Overview, Projects, Sessions, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  r               Refresh data
  t               Cycle time range (7 days, 30 days, all time)
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  CCDASH_LOG_ROOT          Transcript root (default: ~/.claude/projects)
  CCDASH_DEFAULT_RANGE     Initial time range: 7d, 30d or all (default: 30d)
  CCDASH_DAILY_COST_ALERT  Desktop notification threshold in USD (0 disables)
  CCDASH_WATCH_DEBOUNCE    File watcher debounce (default: 2s)
  CCDASH_LOG_LEVEL         Log level: debug, info, warn, error (default: warn)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/ccdash/.env
  - ~/.ccdash/.env`)
}
