// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// DateLayout is the timestamp layout used for event rows.
const DateLayout = "Mon 02 Jan 15:04"

// row is either a department header or an agenda item.
type row struct {
	header string
	item   *domain.AgendaItem
}

// EventList displays agenda items, flat or in department sections.
// Headers are rendered but never selected.
type EventList struct {
	rows     []row
	items    []int // indexes into rows that hold items
	selected int   // index into items
	styles   *styles.Styles
	location *time.Location
	width    int
	height   int
}

// NewEventList creates a new event list component.
func NewEventList(s *styles.Styles) *EventList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &EventList{
		styles:   s,
		location: time.Local,
		width:    80,
		height:   10,
	}
}

// Init initialises the event list.
func (l *EventList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *EventList) Update(msg tea.Msg) (*EventList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// SetView loads the rows for a projected agenda.
func (l *EventList) SetView(view *domain.AgendaView) {
	l.rows = l.rows[:0]
	l.items = l.items[:0]
	l.selected = 0
	if view == nil {
		return
	}

	if view.Mode == domain.ViewGrouped {
		for b := range view.Buckets {
			bucket := &view.Buckets[b]
			l.rows = append(l.rows, row{header: fmt.Sprintf("%s (%d)", bucket.Department, len(bucket.Items))})
			for i := range bucket.Items {
				l.addItem(&bucket.Items[i])
			}
		}
		return
	}

	for i := range view.Items {
		l.addItem(&view.Items[i])
	}
}

func (l *EventList) addItem(item *domain.AgendaItem) {
	l.items = append(l.items, len(l.rows))
	l.rows = append(l.rows, row{item: item})
}

// View renders the event list.
func (l *EventList) View() string {
	if len(l.rows) == 0 {
		return l.styles.Muted.Render("No events")
	}

	visible := l.height
	if visible < 1 {
		visible = 1
	}

	// Keep the selected item in view.
	start := 0
	if len(l.items) > 0 {
		if pos := l.items[l.selected]; pos >= visible {
			start = pos - visible + 1
		}
	}
	end := min(start+visible, len(l.rows))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		r := l.rows[i]
		if r.item == nil {
			lines = append(lines, l.styles.Section.Render(r.header))
			continue
		}
		lines = append(lines, l.renderItem(r.item, l.isSelectedRow(i)))
	}
	return strings.Join(lines, "\n")
}

// renderItem formats a single agenda row:
// > Sun 18 Oct 10:00  ● Standup                Eng · Work
func (l *EventList) renderItem(item *domain.AgendaItem, selected bool) string {
	indicator := "  "
	if selected {
		indicator = "> "
	}

	when := item.Event.Date.In(l.location).Format(DateLayout)
	title := item.Event.Title
	if title == "" {
		title = "(Untitled)"
	}

	meta := item.Calendar.DisplayName()
	if item.Event.Department != "" {
		meta = item.Event.Department + " · " + meta
	}

	maxTitle := l.width - len(DateLayout) - lipgloss.Width(meta) - 10
	if maxTitle < 10 {
		maxTitle = 10
	}
	title = truncate(title, maxTitle)

	if selected {
		return l.styles.Selected.Render(fmt.Sprintf("%s%s  ● %-*s  %s", indicator, when, maxTitle, title, meta))
	}
	return l.styles.Normal.Render(indicator) +
		l.styles.Muted.Render(when) + "  " +
		l.styles.Swatch(item.Calendar.Color) + " " +
		l.styles.Normal.Render(fmt.Sprintf("%-*s", maxTitle, title)) + "  " +
		l.styles.Muted.Render(meta)
}

func (l *EventList) isSelectedRow(rowIndex int) bool {
	return len(l.items) > 0 && l.items[l.selected] == rowIndex
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// SelectedItem returns the currently selected item, or nil if none.
func (l *EventList) SelectedItem() *domain.AgendaItem {
	if len(l.items) == 0 {
		return nil
	}
	return l.rows[l.items[l.selected]].item
}

// Selected returns the index of the selected item.
func (l *EventList) Selected() int {
	return l.selected
}

// MoveUp moves selection up.
func (l *EventList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *EventList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SetLocation sets the timezone used to render timestamps.
func (l *EventList) SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	l.location = loc
}

// SetDimensions sets the component dimensions.
func (l *EventList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of items (headers excluded).
func (l *EventList) Count() int {
	return len(l.items)
}

// IsEmpty returns whether the list has no items.
func (l *EventList) IsEmpty() bool {
	return len(l.items) == 0
}
