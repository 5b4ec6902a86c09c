package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive agenda.

The agenda reloads when the account file changes.

Controls:
  ↑/k, ↓/j  - Move
  c, Tab    - Next calendar
  s         - Pick a calendar
  g         - Toggle grouped by department
  r         - Reload
  ?         - Toggle help
  q         - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// runProgram runs a bubbletea program; replaced in tests.
var runProgram = func(p *tea.Program) error {
	_, err := p.Run()
	return err
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(agendaService, viewStateService)
	ports.Location = displayLocation

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if err := runProgram(p); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
