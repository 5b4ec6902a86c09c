package domain

import "time"

// DefaultColor is the colour used for the "all calendars" selector and for
// calendars that do not declare one.
const DefaultColor = "grey"

// Account is the snapshot of a user's calendars handed to the pipeline.
// It is treated as immutable once loaded.
type Account struct {
	// Name is the account holder's display name.
	Name string

	// Calendars is the ordered collection of calendars.
	Calendars []Calendar
}

// CalendarCount returns the number of calendars, tolerating a nil account.
func (a *Account) CalendarCount() int {
	if a == nil {
		return 0
	}
	return len(a.Calendars)
}

// EventCount returns the total number of events across all calendars.
func (a *Account) EventCount() int {
	if a == nil {
		return 0
	}
	n := 0
	for i := range a.Calendars {
		n += len(a.Calendars[i].Events)
	}
	return n
}

// Calendar is a named source of events with a display colour.
// A calendar owns its events.
type Calendar struct {
	// ID is the unique identifier for the calendar.
	ID string

	// Name is the human-readable calendar name.
	Name string

	// Color is the display colour (a name such as "blue" or a hex value).
	Color string

	// Events is the ordered collection of owned events.
	Events []Event
}

// DisplayName returns the calendar name, falling back to the ID.
func (c *Calendar) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// Event is a scheduled item with a timestamp and optional department.
type Event struct {
	// ID is the unique identifier for the event.
	ID string

	// Title is the event summary.
	Title string

	// Date is the point in time the event takes place.
	Date time.Time

	// Department is the optional department label. Empty means absent.
	Department string

	// Location is where the event takes place, if known.
	Location string
}
