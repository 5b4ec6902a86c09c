package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

const (
	// defaultWidth is used when stdout is not a terminal.
	defaultWidth = 80

	// dateLayout formats event timestamps in listings.
	dateLayout = "Mon 02 Jan 15:04"
)

// outputWidth returns the terminal width of the command's output.
func outputWidth(cmd *cobra.Command) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 3 {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-3]) + "..."
}

// formatItem renders one agenda line.
func formatItem(item domain.AgendaItem, width int) string {
	date := item.Event.Date
	if displayLocation != nil {
		date = date.In(displayLocation)
	}

	line := fmt.Sprintf("  %s  %s", date.Format(dateLayout), item.Event.Title)
	var tags []string
	tags = append(tags, item.Calendar.DisplayName())
	if item.Event.Department != "" {
		tags = append(tags, item.Event.Department)
	}
	line += "  [" + strings.Join(tags, ", ") + "]"
	return truncate(line, width)
}

// writeJSON prints v as indented JSON.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// jsonEvent is the JSON form of an agenda item.
type jsonEvent struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Date       time.Time `json:"date"`
	Department string    `json:"department,omitempty"`
	Location   string    `json:"location,omitempty"`
	CalendarID string    `json:"calendar_id"`
	Color      string    `json:"color"`
}

// jsonBucket is the JSON form of a department bucket.
type jsonBucket struct {
	Department string      `json:"department"`
	Events     []jsonEvent `json:"events"`
}

// jsonAgenda is the JSON form of an agenda view.
type jsonAgenda struct {
	Mode        domain.ViewMode         `json:"mode"`
	Selector    domain.CalendarSelector `json:"selector"`
	Events      []jsonEvent             `json:"events,omitzero"`
	Departments []jsonBucket            `json:"departments,omitzero"`
}

func toJSONEvents(items []domain.AgendaItem) []jsonEvent {
	events := make([]jsonEvent, len(items))
	for i, item := range items {
		events[i] = jsonEvent{
			ID:         item.Event.ID,
			Title:      item.Event.Title,
			Date:       item.Event.Date,
			Department: item.Event.Department,
			Location:   item.Event.Location,
			CalendarID: item.Calendar.ID,
			Color:      item.Calendar.Color,
		}
	}
	return events
}

func toJSONAgenda(view *domain.AgendaView) jsonAgenda {
	out := jsonAgenda{Mode: view.Mode, Selector: view.Selector}
	if view.Mode == domain.ViewGrouped {
		out.Departments = make([]jsonBucket, len(view.Buckets))
		for i := range view.Buckets {
			out.Departments[i] = jsonBucket{
				Department: view.Buckets[i].Department,
				Events:     toJSONEvents(view.Buckets[i].Items),
			}
		}
		return out
	}
	out.Events = toJSONEvents(view.Items)
	return out
}
