package driving

import (
	"time"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by key.
	Set(key, value string) error

	// Keys returns the settable keys.
	Keys() []string

	// Location returns the display timezone.
	Location() (*time.Location, error)

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
