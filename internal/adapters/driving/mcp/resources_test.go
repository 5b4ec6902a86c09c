package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestExtractCalendarID(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"valid", "agenda://calendars/A/events", "A"},
		{"wildcard", "agenda://calendars/all/events", "all"},
		{"missing suffix", "agenda://calendars/A", ""},
		{"wrong scheme", "other://calendars/A/events", ""},
		{"empty id", "agenda://calendars//events", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractCalendarID(tt.uri))
		})
	}
}

func TestServer_handleCalendarsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns options as json", func(t *testing.T) {
		server, err := NewServer(&Ports{Agenda: &mockAgendaService{account: testAccount()}})
		require.NoError(t, err)

		result, err := server.handleCalendarsResource(ctx, readRequest("agenda://calendars"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "agenda://calendars", result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var calendars []CalendarOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &calendars))
		require.Len(t, calendars, 3)
		assert.Equal(t, "Calendar #2", calendars[1].Label)
		assert.Equal(t, "grey", calendars[2].Color)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Agenda: &mockAgendaService{err: errors.New("account unreadable")}})
		require.NoError(t, err)

		_, err = server.handleCalendarsResource(ctx, readRequest("agenda://calendars"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing calendars")
	})
}

func TestServer_handleCalendarEventsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns events of one calendar", func(t *testing.T) {
		server, err := NewServer(&Ports{Agenda: &mockAgendaService{account: testAccount()}})
		require.NoError(t, err)

		result, err := server.handleCalendarEventsResource(ctx, readRequest("agenda://calendars/A/events"))

		require.NoError(t, err)
		var events []EventOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &events))
		require.Len(t, events, 2)
		assert.Equal(t, "Lunch", events[0].Title)
		assert.Equal(t, "Standup", events[1].Title)
	})

	t.Run("wildcard returns all events", func(t *testing.T) {
		server, err := NewServer(&Ports{Agenda: &mockAgendaService{account: testAccount()}})
		require.NoError(t, err)

		result, err := server.handleCalendarEventsResource(ctx, readRequest("agenda://calendars/all/events"))

		require.NoError(t, err)
		var events []EventOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &events))
		assert.Len(t, events, 3)
	})

	t.Run("unknown calendar is not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Agenda: &mockAgendaService{account: testAccount()}})
		require.NoError(t, err)

		_, err = server.handleCalendarEventsResource(ctx, readRequest("agenda://calendars/gone/events"))

		assert.Error(t, err)
	})

	t.Run("malformed uri is not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Agenda: &mockAgendaService{account: testAccount()}})
		require.NoError(t, err)

		_, err = server.handleCalendarEventsResource(ctx, readRequest("agenda://calendars/A"))

		assert.Error(t, err)
	})

	t.Run("returns error when account fails", func(t *testing.T) {
		server, err := NewServer(&Ports{Agenda: &mockAgendaService{err: errors.New("account unreadable")}})
		require.NoError(t, err)

		_, err = server.handleCalendarEventsResource(ctx, readRequest("agenda://calendars/A/events"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading account")
	})
}
