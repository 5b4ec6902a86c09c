package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/agenda-cli/internal/core/agenda"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/logger"
)

var (
	listCalendar string
	listGroup    bool
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the agenda",
	Long: `Shows every event of the account in date order.

Without flags the saved calendar selection and view mode are used.
--calendar narrows the list to one calendar for this run; --group shows all
events grouped by department regardless of the calendar selection.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCalendar, "calendar", "c", "", "calendar id to show, or all")
	listCmd.Flags().BoolVarP(&listGroup, "group", "g", false, "group events by department")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output the agenda as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if agendaService == nil {
		return errNotConfigured("agenda")
	}
	if viewStateService == nil {
		return errNotConfigured("view state")
	}

	ctx := cmd.Context()
	state, err := viewStateService.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to load view state: %w", err)
	}
	if listCalendar != "" {
		state = state.WithSelector(domain.CalendarSelector(listCalendar))
	}
	if listGroup {
		state.Mode = domain.ViewGrouped
	}
	logger.Debug("list: selector=%s mode=%s", state.Selector, state.Mode)

	view, err := agendaService.Project(ctx, state)
	if err != nil {
		return fmt.Errorf("failed to build agenda: %w", err)
	}

	if listJSON {
		return writeJSON(cmd, toJSONAgenda(view))
	}

	options, err := agendaService.Options(ctx)
	if err != nil {
		return fmt.Errorf("failed to list calendars: %w", err)
	}
	return outputAgenda(cmd, view, options)
}

func outputAgenda(cmd *cobra.Command, view *domain.AgendaView, options []domain.SelectOption) error {
	width := outputWidth(cmd)

	cmd.Println(agendaService.Greeting())
	if view.Mode == domain.ViewGrouped {
		cmd.Printf("%s\n\n", view.Mode.Description())
	} else {
		cmd.Printf("%s · %s\n\n", agenda.LabelFor(options, view.Selector), view.Mode.Description())
	}

	if view.IsEmpty() {
		cmd.Println("No events.")
		return nil
	}

	if view.Mode == domain.ViewGrouped {
		for i := range view.Buckets {
			bucket := view.Buckets[i]
			cmd.Printf("%s (%d)\n", bucket.Department, len(bucket.Items))
			for _, item := range bucket.Items {
				cmd.Println(formatItem(item, width))
			}
			cmd.Println()
		}
		return nil
	}

	for _, item := range view.Items {
		cmd.Println(formatItem(item, width))
	}
	return nil
}
