package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/agenda-cli/internal/core/agenda"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// AgendaInput is the input schema for the agenda tool.
type AgendaInput struct {
	Calendar string `json:"calendar,omitempty" jsonschema:"calendar id to show, or all (default: the saved selection)"`
	Grouped  *bool  `json:"grouped,omitempty" jsonschema:"group all events by department instead of filtering by calendar"`
}

// AgendaOutput is the output schema for the agenda tool.
type AgendaOutput struct {
	Mode        string             `json:"mode"`
	Selector    string             `json:"selector"`
	Label       string             `json:"label"`
	Count       int                `json:"count"`
	Events      []EventOutput      `json:"events,omitzero"`
	Departments []DepartmentOutput `json:"departments,omitzero"`
}

// EventOutput represents a single agenda entry.
type EventOutput struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Department string `json:"department,omitempty"`
	Location   string `json:"location,omitempty"`
	CalendarID string `json:"calendar_id"`
	Calendar   string `json:"calendar"`
	Color      string `json:"color"`
}

// DepartmentOutput is one department bucket of a grouped agenda.
type DepartmentOutput struct {
	Department string        `json:"department"`
	Count      int           `json:"count"`
	Events     []EventOutput `json:"events"`
}

// CalendarsInput is the input schema for the calendars tool.
type CalendarsInput struct{}

// CalendarsOutput is the output schema for the calendars tool.
type CalendarsOutput struct {
	Selected  string           `json:"selected"`
	Calendars []CalendarOutput `json:"calendars"`
}

// CalendarOutput is a calendar selector option.
type CalendarOutput struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "agenda",
		Description: "List upcoming events in date order, filtered by calendar or grouped by department",
	}, s.handleAgenda)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calendars",
		Description: "List the calendar selector options and the current selection",
	}, s.handleCalendars)
}

// handleAgenda handles the agenda tool invocation.
func (s *Server) handleAgenda(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AgendaInput,
) (*mcp.CallToolResult, AgendaOutput, error) {
	state, err := s.viewState(ctx)
	if err != nil {
		return nil, AgendaOutput{}, fmt.Errorf("loading view state: %w", err)
	}
	if input.Calendar != "" {
		state = state.WithSelector(domain.CalendarSelector(input.Calendar))
	}
	if input.Grouped != nil {
		state.Mode = domain.ViewFlat
		if *input.Grouped {
			state.Mode = domain.ViewGrouped
		}
	}

	view, err := s.ports.Agenda.Project(ctx, state)
	if err != nil {
		return nil, AgendaOutput{}, err
	}
	options, err := s.ports.Agenda.Options(ctx)
	if err != nil {
		return nil, AgendaOutput{}, err
	}

	return nil, toAgendaOutput(view, options), nil
}

// handleCalendars handles the calendars tool invocation.
func (s *Server) handleCalendars(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CalendarsInput,
) (*mcp.CallToolResult, CalendarsOutput, error) {
	state, err := s.viewState(ctx)
	if err != nil {
		return nil, CalendarsOutput{}, fmt.Errorf("loading view state: %w", err)
	}
	options, err := s.ports.Agenda.Options(ctx)
	if err != nil {
		return nil, CalendarsOutput{}, err
	}

	return nil, CalendarsOutput{
		Selected:  state.Selector.String(),
		Calendars: toCalendarOutputs(options),
	}, nil
}

func toAgendaOutput(view *domain.AgendaView, options []domain.SelectOption) AgendaOutput {
	output := AgendaOutput{
		Mode:     view.Mode.String(),
		Selector: view.Selector.String(),
		Label:    agenda.LabelFor(options, view.Selector),
		Count:    view.Len(),
	}

	if view.Mode == domain.ViewGrouped {
		output.Departments = make([]DepartmentOutput, len(view.Buckets))
		for i := range view.Buckets {
			output.Departments[i] = DepartmentOutput{
				Department: view.Buckets[i].Department,
				Count:      len(view.Buckets[i].Items),
				Events:     toEventOutputs(view.Buckets[i].Items),
			}
		}
		return output
	}

	output.Events = toEventOutputs(view.Items)
	return output
}

func toEventOutputs(items []domain.AgendaItem) []EventOutput {
	events := make([]EventOutput, len(items))
	for i, item := range items {
		events[i] = EventOutput{
			ID:         item.Event.ID,
			Title:      item.Event.Title,
			Date:       item.Event.Date.Format(time.RFC3339),
			Department: item.Event.Department,
			Location:   item.Event.Location,
			CalendarID: item.Calendar.ID,
			Calendar:   item.Calendar.DisplayName(),
			Color:      item.Calendar.Color,
		}
	}
	return events
}

func toCalendarOutputs(options []domain.SelectOption) []CalendarOutput {
	calendars := make([]CalendarOutput, len(options))
	for i, opt := range options {
		calendars[i] = CalendarOutput{
			Value: opt.Value.String(),
			Label: opt.Label,
			Color: opt.Color,
		}
	}
	return calendars
}
