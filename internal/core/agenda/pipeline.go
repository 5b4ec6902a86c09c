package agenda

import (
	"slices"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// Aggregate flattens an account's calendars into one agenda sequence in
// calendar-then-event order. Items borrow pointers into the account.
// A nil account yields an empty sequence.
func Aggregate(account *domain.Account) []domain.AgendaItem {
	items := make([]domain.AgendaItem, 0, account.EventCount())
	if account == nil {
		return items
	}
	for ci := range account.Calendars {
		cal := &account.Calendars[ci]
		for ei := range cal.Events {
			items = append(items, domain.AgendaItem{
				Calendar: cal,
				Event:    &cal.Events[ei],
			})
		}
	}
	return items
}

// compareByDate orders items by event timestamp.
func compareByDate(a, b domain.AgendaItem) int {
	return a.Event.Date.Compare(b.Event.Date)
}

// SortByDate returns a copy of items ordered by ascending event date.
// The sort is stable: items with equal timestamps keep their input order.
func SortByDate(items []domain.AgendaItem) []domain.AgendaItem {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []domain.AgendaItem{}
	}
	slices.SortStableFunc(sorted, compareByDate)
	return sorted
}

// FilterByCalendar returns the items belonging to the selected calendar,
// preserving order. The wildcard selector returns a copy of every item.
// A selector naming an unknown calendar yields an empty sequence.
func FilterByCalendar(items []domain.AgendaItem, selector domain.CalendarSelector) []domain.AgendaItem {
	if selector.IsAll() {
		all := slices.Clone(items)
		if all == nil {
			all = []domain.AgendaItem{}
		}
		return all
	}

	filtered := make([]domain.AgendaItem, 0, len(items))
	for _, item := range items {
		if item.Calendar.ID == string(selector) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Sorted aggregates and sorts an account in one step.
func Sorted(account *domain.Account) []domain.AgendaItem {
	return SortByDate(Aggregate(account))
}

// Project runs the full pipeline for a view state.
//
// In flat mode the sorted sequence is filtered by the state's selector. In
// grouped mode the filter is bypassed and the full sorted sequence is
// grouped by department; the selector is still reported on the view so a
// caller toggling back to flat restores it.
func Project(account *domain.Account, state domain.ViewState) domain.AgendaView {
	mode := state.Mode.Normalise()
	selector := state.Selector
	if selector == "" {
		selector = domain.SelectAll
	}

	view := domain.AgendaView{
		Mode:     mode,
		Selector: selector,
	}

	sorted := Sorted(account)
	if mode == domain.ViewGrouped {
		view.Buckets = GroupByDepartment(sorted)
		return view
	}
	view.Items = FilterByCalendar(sorted, selector)
	return view
}
