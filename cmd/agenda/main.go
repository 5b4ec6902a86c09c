// Command agenda shows a date-ordered agenda across all calendars of an account.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/agenda-cli/internal/adapters/driven/account/file"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driven/config/env"
	configfile "github.com/custodia-labs/agenda-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/agenda-cli/internal/core/services"
	"github.com/custodia-labs/agenda-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = ""

func main() {
	overrides, err := env.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if overrides.Verbose {
		logger.SetVerbose(true)
	}

	cli.SetVersion(version)
	cli.SetServiceBuilder(func(opts cli.GlobalOptions) (*cli.Services, error) {
		return buildServices(overrides, opts)
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services.
func buildServices(overrides env.Overrides, opts cli.GlobalOptions) (*cli.Services, error) {
	configStore, err := configfile.NewConfigStore(overrides.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("config store: %w", err)
	}
	logger.Debug("config: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	loc, err := resolveLocation(overrides.Timezone, settingsService)
	if err != nil {
		return nil, err
	}

	path := resolveAccountPath(opts.AccountPath, overrides.AccountFile, settings.Account.Path)
	source, err := file.NewSource(path)
	if err != nil {
		return nil, fmt.Errorf("account source: %w", err)
	}
	logger.Debug("account: %s", source.Path())

	watcher := file.NewWatcher(source.Path())
	agendaService := services.NewAgendaService(source)
	agendaService.SetWatcher(watcher)
	agendaService.SetLocation(loc)

	store, err := sqlite.NewStore(overrides.DataDir)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("state store: %w", err)
	}
	logger.Debug("state: %s", store.Path())

	viewStateService := services.NewViewStateService(store.ViewStateStore(), settings.DefaultViewState())

	return &cli.Services{
		Agenda:    agendaService,
		ViewState: viewStateService,
		Settings:  settingsService,
		Location:  loc,
		Cleanup: func() {
			if err := watcher.Close(); err != nil {
				logger.Warn("closing watcher: %v", err)
			}
			if err := store.Close(); err != nil {
				logger.Warn("closing state store: %v", err)
			}
		},
	}, nil
}

// resolveAccountPath picks the account file: flag, then environment, then
// settings. Empty means the source's default location.
func resolveAccountPath(flag, envPath, configured string) string {
	for _, p := range []string{flag, envPath, configured} {
		if p != "" {
			return p
		}
	}
	return ""
}

// resolveLocation prefers AGENDA_TIMEZONE over the display.timezone setting.
func resolveLocation(envTZ string, settingsService *services.SettingsService) (*time.Location, error) {
	if envTZ != "" {
		loc, err := time.LoadLocation(envTZ)
		if err != nil {
			return nil, fmt.Errorf("AGENDA_TIMEZONE: %w", err)
		}
		return loc, nil
	}
	loc, err := settingsService.Location()
	if err != nil {
		return nil, fmt.Errorf("display.timezone: %w", err)
	}
	return loc, nil
}
