// Package cli provides the command-line interface for the agenda.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/agenda-cli/internal/core/ports/driving"
	"github.com/custodia-labs/agenda-cli/internal/logger"
)

var (
	// version is set at build time via ldflags.
	version = "dev"

	verbose     bool
	accountPath string
)

// Services wired by the composition root.
var (
	agendaService    driving.AgendaService
	viewStateService driving.ViewStateService
	settingsService  driving.SettingsService

	// displayLocation renders event timestamps. Nil means local time.
	displayLocation *time.Location
)

// GlobalOptions carries the persistent flags a ServiceBuilder needs.
type GlobalOptions struct {
	Verbose     bool
	AccountPath string
}

// Services is the set of driving ports a ServiceBuilder produces.
type Services struct {
	Agenda    driving.AgendaService
	ViewState driving.ViewStateService
	Settings  driving.SettingsService
	Location  *time.Location

	// Cleanup releases resources held by the services. May be nil.
	Cleanup func()
}

// ServiceBuilder constructs services once flags are parsed.
type ServiceBuilder func(opts GlobalOptions) (*Services, error)

var (
	serviceBuilder  ServiceBuilder
	cleanupServices func()
)

// skipServices marks commands that run without services.
const skipServices = "skip-services"

var rootCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Date-ordered agenda across all your calendars",
	Long: `Agenda merges the events of every calendar in your account into one
date-ordered list. Filter it by calendar or group it by department.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
	PersistentPostRun: postRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&accountPath, "account", "", "account snapshot file (default ~/.agenda/account.toml)")
}

// Execute runs the root command. Command output goes to stdout.
func Execute() error {
	defer postRun(nil, nil)
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServiceBuilder sets the function that constructs services after flag parsing.
func SetServiceBuilder(builder ServiceBuilder) {
	serviceBuilder = builder
}

// SetServices injects ready-made services.
func SetServices(agenda driving.AgendaService, viewState driving.ViewStateService, settings driving.SettingsService) {
	agendaService = agenda
	viewStateService = viewState
	settingsService = settings
}

// SetLocation sets the timezone used to render event timestamps.
func SetLocation(loc *time.Location) {
	displayLocation = loc
}

func preRun(cmd *cobra.Command, _ []string) error {
	if verbose {
		logger.SetVerbose(true)
	}

	if cmd.Annotations[skipServices] == "true" || serviceBuilder == nil || agendaService != nil {
		return nil
	}

	logger.Section("Services")
	svc, err := serviceBuilder(GlobalOptions{Verbose: logger.IsVerbose(), AccountPath: accountPath})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(svc.Agenda, svc.ViewState, svc.Settings)
	if svc.Location != nil {
		SetLocation(svc.Location)
	}
	cleanupServices = svc.Cleanup
	return nil
}

func postRun(_ *cobra.Command, _ []string) {
	if cleanupServices != nil {
		cleanupServices()
		cleanupServices = nil
	}
}

// errNotConfigured reports a missing service.
func errNotConfigured(name string) error {
	return errors.New(name + " service not configured")
}
