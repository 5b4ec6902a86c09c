package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/agenda-cli/internal/core/agenda"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for agenda resources.
	uriScheme = "agenda://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "calendars",
		Name:        "calendars",
		Description: "Calendar selector options with their colours",
		MIMEType:    "application/json",
	}, s.handleCalendarsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "calendars/{calendarId}/events",
		Name:        "calendar-events",
		Description: "Date-ordered events of one calendar, or of all calendars",
		MIMEType:    "application/json",
	}, s.handleCalendarEventsResource)
}

// handleCalendarsResource returns the calendar selector options.
func (s *Server) handleCalendarsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	options, err := s.ports.Agenda.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing calendars: %w", err)
	}

	return jsonResource(req.Params.URI, toCalendarOutputs(options))
}

// handleCalendarEventsResource returns the flat agenda of one calendar.
func (s *Server) handleCalendarEventsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// agenda://calendars/{calendarId}/events
	selector := domain.CalendarSelector(extractCalendarID(req.Params.URI))
	if selector == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	account, err := s.ports.Agenda.Account(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}
	var calendars []domain.Calendar
	if account != nil {
		calendars = account.Calendars
	}
	if !agenda.HasCalendar(calendars, selector) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	state := domain.ViewState{Selector: selector, Mode: domain.ViewFlat}
	view, err := s.ports.Agenda.Project(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("projecting agenda: %w", err)
	}

	return jsonResource(req.Params.URI, toEventOutputs(view.Items))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCalendarID extracts the calendar ID from a URI like agenda://calendars/{calendarId}/events.
func extractCalendarID(uri string) string {
	const prefix = uriScheme + "calendars/"
	const suffix = "/events"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
