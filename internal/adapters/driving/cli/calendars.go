package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

var calendarsJSON bool

var calendarsCmd = &cobra.Command{
	Use:   "calendars",
	Short: "List calendar selector options",
	Long: `Lists the calendars of the account as selector options, followed by the
"All Calendars" wildcard. The saved selection is marked with *.`,
	Args: cobra.NoArgs,
	RunE: runCalendars,
}

func init() {
	calendarsCmd.Flags().BoolVar(&calendarsJSON, "json", false, "output options as JSON")
	rootCmd.AddCommand(calendarsCmd)
}

type jsonOption struct {
	Value    domain.CalendarSelector `json:"value"`
	Label    string                  `json:"label"`
	Color    string                  `json:"color"`
	Selected bool                    `json:"selected"`
}

func runCalendars(cmd *cobra.Command, _ []string) error {
	if agendaService == nil {
		return errNotConfigured("agenda")
	}

	ctx := cmd.Context()
	options, err := agendaService.Options(ctx)
	if err != nil {
		return fmt.Errorf("failed to list calendars: %w", err)
	}

	current := domain.SelectAll
	if viewStateService != nil {
		state, err := viewStateService.Current(ctx)
		if err != nil {
			return fmt.Errorf("failed to load view state: %w", err)
		}
		current = state.Selector
	}

	if calendarsJSON {
		out := make([]jsonOption, len(options))
		for i, opt := range options {
			out[i] = jsonOption{
				Value:    opt.Value,
				Label:    opt.Label,
				Color:    opt.Color,
				Selected: opt.Value == current,
			}
		}
		return writeJSON(cmd, out)
	}

	for _, opt := range options {
		marker := " "
		if opt.Value == current {
			marker = "*"
		}
		cmd.Printf("%s %-16s %-12s %s\n", marker, opt.Label, opt.Value, opt.Color)
	}
	return nil
}
