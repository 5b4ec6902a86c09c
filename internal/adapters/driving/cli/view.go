package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/agenda-cli/internal/core/agenda"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Manage the saved calendar selection and view mode",
	Long: `The view state is the calendar selection and view mode used by
'agenda list' and the TUI. It is saved between runs.`,
	RunE: runViewShow,
}

var viewShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved view state",
	Args:  cobra.NoArgs,
	RunE:  runViewShow,
}

var viewToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between flat and grouped",
	Args:  cobra.NoArgs,
	RunE:  runViewToggle,
}

var viewSelectCmd = &cobra.Command{
	Use:   "select [calendar-id|all]",
	Short: "Select the calendar to show",
	Args:  cobra.ExactArgs(1),
	RunE:  runViewSelect,
}

var viewModeCmd = &cobra.Command{
	Use:   "mode [flat|grouped]",
	Short: "Set the view mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runViewMode,
}

var viewResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the configured defaults",
	Args:  cobra.NoArgs,
	RunE:  runViewReset,
}

func init() {
	viewCmd.AddCommand(viewShowCmd)
	viewCmd.AddCommand(viewToggleCmd)
	viewCmd.AddCommand(viewSelectCmd)
	viewCmd.AddCommand(viewModeCmd)
	viewCmd.AddCommand(viewResetCmd)
	rootCmd.AddCommand(viewCmd)
}

func runViewShow(cmd *cobra.Command, _ []string) error {
	if viewStateService == nil {
		return errNotConfigured("view state")
	}
	state, err := viewStateService.Current(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load view state: %w", err)
	}
	return printViewState(cmd, state)
}

func runViewToggle(cmd *cobra.Command, _ []string) error {
	if viewStateService == nil {
		return errNotConfigured("view state")
	}
	state, err := viewStateService.ToggleView(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to toggle view: %w", err)
	}
	return printViewState(cmd, state)
}

func runViewSelect(cmd *cobra.Command, args []string) error {
	if viewStateService == nil {
		return errNotConfigured("view state")
	}

	selector := domain.CalendarSelector(args[0])
	if agendaService != nil {
		account, err := agendaService.Account(cmd.Context())
		if err == nil && account != nil && !agenda.HasCalendar(account.Calendars, selector) {
			cmd.PrintErrf("Warning: calendar %q not found; the agenda will be empty\n", selector)
		}
	}

	state, err := viewStateService.SelectCalendar(cmd.Context(), selector)
	if err != nil {
		return fmt.Errorf("failed to select calendar: %w", err)
	}
	return printViewState(cmd, state)
}

func runViewMode(cmd *cobra.Command, args []string) error {
	if viewStateService == nil {
		return errNotConfigured("view state")
	}
	mode, err := domain.ParseViewMode(args[0])
	if err != nil {
		return err
	}
	state, err := viewStateService.SetMode(cmd.Context(), mode)
	if err != nil {
		return fmt.Errorf("failed to set view mode: %w", err)
	}
	return printViewState(cmd, state)
}

func runViewReset(cmd *cobra.Command, _ []string) error {
	if viewStateService == nil {
		return errNotConfigured("view state")
	}
	state, err := viewStateService.Reset(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to reset view: %w", err)
	}
	return printViewState(cmd, state)
}

func printViewState(cmd *cobra.Command, state domain.ViewState) error {
	label := string(state.Selector)
	if agendaService != nil {
		if options, err := agendaService.Options(cmd.Context()); err == nil {
			label = agenda.LabelFor(options, state.Selector)
		}
	}
	cmd.Printf("Calendar: %s (%s)\n", label, state.Selector)
	cmd.Printf("Mode:     %s\n", state.Mode.Description())
	return nil
}
