package agenda

import (
	"fmt"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// AllCalendarsLabel is the selector label for the wildcard option.
const AllCalendarsLabel = "All Calendars"

// FindCalendar looks up a calendar by ID. A miss returns false, never panics.
func FindCalendar(calendars []domain.Calendar, id string) (*domain.Calendar, bool) {
	for i := range calendars {
		if calendars[i].ID == id {
			return &calendars[i], true
		}
	}
	return nil, false
}

// HasCalendar reports whether the selector is the wildcard or names a
// known calendar.
func HasCalendar(calendars []domain.Calendar, selector domain.CalendarSelector) bool {
	if selector.IsAll() {
		return true
	}
	_, ok := FindCalendar(calendars, string(selector))
	return ok
}

// ColorFor returns the display colour for a selector.
// The wildcard and unknown calendars use domain.DefaultColor.
func ColorFor(calendars []domain.Calendar, selector domain.CalendarSelector) string {
	if selector.IsAll() {
		return domain.DefaultColor
	}
	cal, ok := FindCalendar(calendars, string(selector))
	if !ok || cal.Color == "" {
		return domain.DefaultColor
	}
	return cal.Color
}

// Options builds the calendar selector entries: one per calendar labelled
// by position, followed by the wildcard.
func Options(calendars []domain.Calendar) []domain.SelectOption {
	options := make([]domain.SelectOption, 0, len(calendars)+1)
	for i := range calendars {
		options = append(options, domain.SelectOption{
			Label: fmt.Sprintf("Calendar #%d", i+1),
			Value: domain.CalendarSelector(calendars[i].ID),
			Color: ColorFor(calendars, domain.CalendarSelector(calendars[i].ID)),
		})
	}
	return append(options, domain.SelectOption{
		Label: AllCalendarsLabel,
		Value: domain.SelectAll,
		Color: domain.DefaultColor,
	})
}

// DefaultOption returns the wildcard option, which is selected initially.
func DefaultOption(options []domain.SelectOption) domain.SelectOption {
	for _, opt := range options {
		if opt.Value == domain.SelectAll {
			return opt
		}
	}
	return domain.SelectOption{Label: AllCalendarsLabel, Value: domain.SelectAll, Color: domain.DefaultColor}
}

// OptionIndex returns the position of selector within options, or -1.
func OptionIndex(options []domain.SelectOption, selector domain.CalendarSelector) int {
	if selector == "" {
		selector = domain.SelectAll
	}
	for i, opt := range options {
		if opt.Value == selector {
			return i
		}
	}
	return -1
}

// NextSelector returns the selector following current in option order,
// wrapping around. An unknown current selector moves to the first option.
func NextSelector(options []domain.SelectOption, current domain.CalendarSelector) domain.CalendarSelector {
	if len(options) == 0 {
		return domain.SelectAll
	}
	i := OptionIndex(options, current)
	return options[(i+1)%len(options)].Value
}

// LabelFor returns the option label for a selector, or the raw selector
// when it matches no option.
func LabelFor(options []domain.SelectOption, selector domain.CalendarSelector) string {
	if i := OptionIndex(options, selector); i >= 0 {
		return options[i].Label
	}
	return string(selector)
}
