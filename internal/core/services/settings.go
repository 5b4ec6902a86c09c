package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driven"
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyAccountPath         = "account.path"
	KeyDisplayTimezone     = "display.timezone"
	KeyViewDefaultMode     = "view.default_mode"
	KeyViewDefaultCalendar = "view.default_calendar"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}

	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Account: domain.AccountSettings{
			Path: s.configStore.GetString(KeyAccountPath), // Empty means default location
		},
		Display: domain.DisplaySettings{
			Timezone: s.configStore.GetString(KeyDisplayTimezone),
		},
		View: domain.ViewSettings{
			DefaultMode:     s.getViewMode(defaults.View.DefaultMode),
			DefaultCalendar: domain.CalendarSelector(s.getString(KeyViewDefaultCalendar, string(defaults.View.DefaultCalendar))),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return domain.ErrInvalidInput
	}

	if err := s.configStore.Set(KeyAccountPath, settings.Account.Path); err != nil {
		return fmt.Errorf("save account path: %w", err)
	}
	if err := s.configStore.Set(KeyDisplayTimezone, settings.Display.Timezone); err != nil {
		return fmt.Errorf("save display timezone: %w", err)
	}
	if err := s.configStore.Set(KeyViewDefaultMode, settings.View.DefaultMode.String()); err != nil {
		return fmt.Errorf("save default view mode: %w", err)
	}
	if err := s.configStore.Set(KeyViewDefaultCalendar, settings.View.DefaultCalendar.String()); err != nil {
		return fmt.Errorf("save default calendar: %w", err)
	}

	return nil
}

// Set updates a single setting by key after validating the value.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyAccountPath:
		settings.Account.Path = value
	case KeyDisplayTimezone:
		if _, err := loadLocation(value); err != nil {
			return err
		}
		settings.Display.Timezone = value
	case KeyViewDefaultMode:
		mode, err := domain.ParseViewMode(value)
		if err != nil {
			return err
		}
		settings.View.DefaultMode = mode
	case KeyViewDefaultCalendar:
		if value == "" {
			value = string(domain.SelectAll)
		}
		settings.View.DefaultCalendar = domain.CalendarSelector(value)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns the settable keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := []string{KeyAccountPath, KeyDisplayTimezone, KeyViewDefaultMode, KeyViewDefaultCalendar}
	sort.Strings(keys)
	return keys
}

// Location returns the display timezone.
func (s *SettingsService) Location() (*time.Location, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	return loadLocation(settings.Display.Timezone)
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	if _, err := loadLocation(settings.Display.Timezone); err != nil {
		return err
	}
	if raw := s.configStore.GetString(KeyViewDefaultMode); raw != "" {
		if _, err := domain.ParseViewMode(raw); err != nil {
			return err
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// loadLocation resolves a timezone name; empty means local time.
func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, name)
	}
	return loc, nil
}

// getString returns a config string or the default when unset.
func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

// getViewMode returns the stored default view mode, falling back when invalid.
func (s *SettingsService) getViewMode(defaultVal domain.ViewMode) domain.ViewMode {
	mode := domain.ViewMode(s.configStore.GetString(KeyViewDefaultMode))
	if mode.IsValid() {
		return mode
	}
	return defaultVal
}
