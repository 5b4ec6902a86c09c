package domain

// DisplaySettings holds presentation configuration.
type DisplaySettings struct {
	// Timezone is the IANA location used to derive the greeting hour.
	// Empty means the local timezone.
	Timezone string
}

// ViewSettings holds the defaults applied when no view state is stored.
type ViewSettings struct {
	// DefaultMode is the initial presentation mode.
	DefaultMode ViewMode

	// DefaultCalendar is the initial calendar selector.
	DefaultCalendar CalendarSelector
}

// AccountSettings holds account snapshot configuration.
type AccountSettings struct {
	// Path is the account snapshot file. Empty means the default location.
	Path string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Account holds account snapshot settings.
	Account AccountSettings

	// Display holds presentation settings.
	Display DisplaySettings

	// View holds view defaults.
	View ViewSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		View: ViewSettings{
			DefaultMode:     ViewFlat,
			DefaultCalendar: SelectAll,
		},
	}
}

// DefaultViewState returns the view state these settings start from.
func (s AppSettings) DefaultViewState() ViewState {
	state := DefaultViewState()
	if s.View.DefaultMode.IsValid() {
		state.Mode = s.View.DefaultMode
	}
	if s.View.DefaultCalendar != "" {
		state.Selector = s.View.DefaultCalendar
	}
	return state
}
