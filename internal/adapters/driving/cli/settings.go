package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the account file location, display timezone and the
view defaults used when no view state has been saved.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting. An empty value restores the default.

Keys:
  account.path           account snapshot file
  display.timezone       IANA timezone for timestamps and the greeting
  view.default_calendar  calendar id or all
  view.default_mode      flat or grouped`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Account]")
	cmd.Printf("  Path: %s\n", orDefault(settings.Account.Path))
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Timezone: %s\n", orDefault(settings.Display.Timezone))
	cmd.Println()

	cmd.Println("[View]")
	cmd.Printf("  Default mode: %s\n", settings.View.DefaultMode.Description())
	cmd.Printf("  Default calendar: %s\n", settings.View.DefaultCalendar)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'agenda settings set <key> <value>' to fix it.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	key, value := args[0], strings.TrimSpace(args[1])
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w\nvalid keys: %s",
			key, err, strings.Join(settingsService.Keys(), ", "))
	}

	cmd.Printf("%s = %s\n", key, orDefault(value))
	return nil
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
