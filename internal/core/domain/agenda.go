package domain

// OtherDepartment is the sentinel bucket for events without a department.
// An event whose department is literally "Other" lands in the same bucket.
const OtherDepartment = "Other"

// AgendaItem pairs an event with its owning calendar.
// Both pointers are borrowed from an Account snapshot; an item owns neither
// and is only valid while that snapshot is.
type AgendaItem struct {
	Calendar *Calendar
	Event    *Event
}

// DepartmentBucket is a named group of agenda items.
type DepartmentBucket struct {
	// Department is the bucket key: a department label or OtherDepartment.
	Department string

	// Items are the bucket's items in input order.
	Items []AgendaItem
}

// AgendaView is the pipeline output handed to a renderer.
// Items is populated in flat mode, Buckets in grouped mode.
type AgendaView struct {
	// Mode is the presentation mode that produced this view.
	Mode ViewMode

	// Selector is the calendar selector in effect. It is carried through
	// unchanged in grouped mode so switching back restores the filter.
	Selector CalendarSelector

	// Items is the filtered, date-ordered flat list.
	Items []AgendaItem

	// Buckets is the department grouping of the full date-ordered list.
	Buckets []DepartmentBucket
}

// Len returns the number of items displayed by the view.
func (v *AgendaView) Len() int {
	if v.Mode == ViewGrouped {
		n := 0
		for i := range v.Buckets {
			n += len(v.Buckets[i].Items)
		}
		return n
	}
	return len(v.Items)
}

// IsEmpty returns true if the view displays nothing.
func (v *AgendaView) IsEmpty() bool {
	return v.Len() == 0
}

// SelectOption is an entry in the calendar selector.
type SelectOption struct {
	// Label is the display label (e.g. "Calendar #1").
	Label string

	// Value is the selector value: a calendar ID or SelectAll.
	Value CalendarSelector

	// Color is the option's display colour.
	Color string
}
